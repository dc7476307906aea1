// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/pagination"
	"github.com/taibuivan/vidtube/pkg/text"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// # Service Layer

// Service implements the comment use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListComments returns a page of a video's comments, newest first.
func (service *Service) ListComments(context context.Context, videoID string, params pagination.Params) ([]*Comment, int, error) {
	if err := validate.ID(FieldVideoID, videoID); err != nil {
		return nil, 0, err
	}
	return service.repo.ListByVideo(context, videoID, params.Limit, params.Offset())
}

/*
AddComment creates a comment on a video.

Returns:
  - *Comment: Created entity
  - error: VALIDATION_ERROR, or NOT_FOUND when the video is missing
*/
func (service *Service) AddComment(context context.Context, videoID, actorID, content string) (*Comment, error) {
	if err := validate.ID(FieldVideoID, videoID); err != nil {
		return nil, err
	}

	content = text.Clean(content)
	validator := &validate.Validator{}
	validator.Required(FieldContent, content).MaxLen(FieldContent, content, ContentMaxLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	comment := &Comment{ID: uuid.New(), Content: content, VideoID: videoID, OwnerID: actorID}
	if err := service.repo.Create(context, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_added",
		slog.String("comment_id", comment.ID),
		slog.String("video_id", videoID),
	)
	return comment, nil
}

/*
UpdateComment replaces the content of an owned comment. A nil content keeps
the current one.
*/
func (service *Service) UpdateComment(context context.Context, id, actorID string, content *string) (*Comment, error) {
	if err := validate.ID(FieldCommentID, id); err != nil {
		return nil, err
	}

	comment, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if err := sec.EnsureOwner(comment.OwnerID, actorID, "You can only update your own comments"); err != nil {
		return nil, err
	}

	content = text.CleanPtr(content)
	validator := &validate.Validator{}
	validator.NotBlank(FieldContent, content)
	if content != nil {
		validator.MaxLen(FieldContent, *content, ContentMaxLen)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if content == nil {
		return comment, nil
	}

	comment.Content = *content
	if err := service.repo.Update(context, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_updated", slog.String("comment_id", id))
	return comment, nil
}

// DeleteComment removes an owned comment.
func (service *Service) DeleteComment(context context.Context, id, actorID string) error {
	if err := validate.ID(FieldCommentID, id); err != nil {
		return err
	}

	comment, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if err := sec.EnsureOwner(comment.OwnerID, actorID, "You can only delete your own comments"); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("comment_deleted", slog.String("comment_id", id))
	return nil
}
