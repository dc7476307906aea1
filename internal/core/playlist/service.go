// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

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

// Service implements the playlist use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreatePlaylist creates an empty playlist for the actor.
func (service *Service) CreatePlaylist(context context.Context, actorID, name, description string) (*Playlist, error) {
	name, description = text.Clean(name), text.Clean(description)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).
		MaxLen(FieldName, name, NameMaxLen).
		MaxLen(FieldDescription, description, DescriptionMaxLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	playlist := &Playlist{ID: uuid.New(), Name: name, Description: description, OwnerID: actorID, Videos: []string{}}
	if err := service.repo.Create(context, playlist); err != nil {
		return nil, err
	}

	service.logger.Info("playlist_created", slog.String("playlist_id", playlist.ID))
	return playlist, nil
}

// ListUserPlaylists returns a page of a user's playlists.
func (service *Service) ListUserPlaylists(context context.Context, userID string, params pagination.Params) ([]*Playlist, int, error) {
	if err := validate.ID(FieldUserID, userID); err != nil {
		return nil, 0, err
	}
	return service.repo.ListByOwner(context, userID, params.Limit, params.Offset())
}

/*
GetPlaylist returns a playlist with its videos resolved in order.

Returns:
  - *Playlist: With VideoItems, never nil
  - error: VALIDATION_ERROR or NOT_FOUND
*/
func (service *Service) GetPlaylist(context context.Context, id, viewerID string) (*Playlist, error) {
	if err := validate.ID(FieldPlaylistID, id); err != nil {
		return nil, err
	}

	playlist, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	return service.resolved(context, playlist, viewerID)
}

// resolved fills VideoItems with the member videos viewerID may see.
func (service *Service) resolved(context context.Context, playlist *Playlist, viewerID string) (*Playlist, error) {
	items, err := service.repo.ListVideos(context, playlist.ID, viewerID)
	if err != nil {
		return nil, err
	}
	playlist.VideoItems = items
	return playlist, nil
}

// UpdateInput holds a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
}

// UpdatePlaylist applies a partial update to an owned playlist.
func (service *Service) UpdatePlaylist(context context.Context, id, actorID string, input UpdateInput) (*Playlist, error) {
	playlist, err := service.owned(context, id, actorID)
	if err != nil {
		return nil, err
	}

	input.Name = text.CleanPtr(input.Name)
	input.Description = text.CleanPtr(input.Description)

	validator := &validate.Validator{}
	validator.NotBlank(FieldName, input.Name)
	if input.Name != nil {
		validator.MaxLen(FieldName, *input.Name, NameMaxLen)
	}
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, DescriptionMaxLen)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Name != nil {
		playlist.Name = *input.Name
	}
	if input.Description != nil {
		playlist.Description = *input.Description
	}

	if err := service.repo.Update(context, playlist); err != nil {
		return nil, err
	}

	service.logger.Info("playlist_updated", slog.String("playlist_id", id))
	return playlist, nil
}

// DeletePlaylist removes an owned playlist. The videos are untouched.
func (service *Service) DeletePlaylist(context context.Context, id, actorID string) error {
	if _, err := service.owned(context, id, actorID); err != nil {
		return err
	}
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("playlist_deleted", slog.String("playlist_id", id))
	return nil
}

/*
AddVideo appends a video to an owned playlist. Adding a video already in
the playlist leaves it unchanged.

Returns:
  - *Playlist: With VideoItems as the actor sees them
  - error: VALIDATION_ERROR, NOT_FOUND (playlist or video) or FORBIDDEN
*/
func (service *Service) AddVideo(context context.Context, playlistID, videoID, actorID string) (*Playlist, error) {
	if err := validate.ID(FieldVideoID, videoID); err != nil {
		return nil, err
	}
	if _, err := service.owned(context, playlistID, actorID); err != nil {
		return nil, err
	}

	playlist, err := service.repo.AddVideo(context, playlistID, videoID)
	if err != nil {
		return nil, err
	}

	service.logger.Info("playlist_video_added",
		slog.String("playlist_id", playlistID),
		slog.String("video_id", videoID),
	)
	return service.resolved(context, playlist, actorID)
}

// RemoveVideo removes a video from an owned playlist.
func (service *Service) RemoveVideo(context context.Context, playlistID, videoID, actorID string) (*Playlist, error) {
	if err := validate.ID(FieldVideoID, videoID); err != nil {
		return nil, err
	}
	if _, err := service.owned(context, playlistID, actorID); err != nil {
		return nil, err
	}

	playlist, err := service.repo.RemoveVideo(context, playlistID, videoID)
	if err != nil {
		return nil, err
	}

	service.logger.Info("playlist_video_removed",
		slog.String("playlist_id", playlistID),
		slog.String("video_id", videoID),
	)
	return service.resolved(context, playlist, actorID)
}

// owned validates id, loads the playlist and checks the actor owns it.
func (service *Service) owned(context context.Context, id, actorID string) (*Playlist, error) {
	if err := validate.ID(FieldPlaylistID, id); err != nil {
		return nil, err
	}

	playlist, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if err := sec.EnsureOwner(playlist.OwnerID, actorID, "You can only modify your own playlists"); err != nil {
		return nil, err
	}
	return playlist, nil
}
