// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vidtube/pkg/pagination"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Service implements the like use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
Toggle flips the like state of (target, user).

An existing like is deleted. Otherwise one is inserted; if a concurrent
request inserted it first the result is still liked.

Returns:
  - *ToggleResult: State after the toggle
  - error: VALIDATION_ERROR or NOT_FOUND when the target is missing
*/
func (service *Service) Toggle(context context.Context, kind Kind, targetID, userID string) (*ToggleResult, error) {
	target, err := NewTarget(kind, targetID)
	if err != nil {
		return nil, err
	}

	removed, err := service.repo.Remove(context, target, userID)
	if err != nil {
		return nil, err
	}
	if removed {
		service.logger.Info("like_removed",
			slog.String("target_kind", string(kind)),
			slog.String("target_id", targetID),
		)
		return &ToggleResult{Target: target, IsLiked: false}, nil
	}

	if err := service.repo.Add(context, &Like{ID: uuid.New(), Target: target, LikedBy: userID}); err != nil {
		return nil, err
	}

	service.logger.Info("like_added",
		slog.String("target_kind", string(kind)),
		slog.String("target_id", targetID),
	)
	return &ToggleResult{Target: target, IsLiked: true}, nil
}

// LikedVideos returns a page of the user's liked videos.
func (service *Service) LikedVideos(context context.Context, userID string, params pagination.Params) ([]*LikedVideo, int, error) {
	return service.repo.ListLikedVideos(context, userID, params.Limit, params.Offset())
}
