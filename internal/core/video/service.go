// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/media"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/pagination"
	"github.com/taibuivan/vidtube/pkg/text"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// # Service Layer

// Service implements the video use cases.
type Service struct {
	repo   Repository
	store  media.Store
	prober media.Prober
	logger *slog.Logger
}

// NewService constructs a new [Service]. prober may be nil, in which case
// durations are recorded as 0.
func NewService(repo Repository, store media.Store, prober media.Prober, logger *slog.Logger) *Service {
	return &Service{repo: repo, store: store, prober: prober, logger: logger}
}

// # Listing

// ListInput carries the raw listing query.
type ListInput struct {
	Query    string
	UserID   string
	SortBy   string
	SortType string
}

/*
ListVideos returns a page of published videos.

Returns:
  - []*Video: Never nil
  - int: Total matches
  - error: VALIDATION_ERROR on a malformed userId or unknown sort key
*/
func (service *Service) ListVideos(context context.Context, input ListInput, params pagination.Params) ([]*Video, int, error) {
	filter := Filter{Query: text.Clean(input.Query), SortBy: input.SortBy}

	validator := &validate.Validator{}
	validator.MaxLen(FieldQuery, filter.Query, QueryMaxLen)
	if input.UserID != "" {
		validator.ID(FieldUserID, input.UserID)
		filter.OwnerID = input.UserID
	}
	if filter.SortBy == "" {
		filter.SortBy = SortCreatedAt
	}
	validator.OneOf(FieldSortBy, filter.SortBy, SortKeys...)

	switch input.SortType {
	case "", "desc":
	case "asc":
		filter.SortAsc = true
	default:
		validator.OneOf(FieldSortType, input.SortType, "asc", "desc")
	}

	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.List(context, filter, params.Limit, params.Offset())
}

/*
ListChannelVideos returns every video of a channel, newest first. Unpublished
videos are included only when the viewer owns the channel.
*/
func (service *Service) ListChannelVideos(context context.Context, channelID, viewerID string) ([]*Video, error) {
	if err := validate.ID("channelId", channelID); err != nil {
		return nil, err
	}
	return service.repo.ListByOwner(context, channelID, viewerID == channelID)
}

// # Publishing

// PublishInput holds the multipart fields of a new video.
type PublishInput struct {
	OwnerID     string
	Title       string
	Description string
	VideoFile   *media.File
	Thumbnail   *media.File
}

/*
Publish uploads both media files and persists the video.

Uploads run concurrently. When any step fails the objects already stored
are deleted so no orphaned media or half-written video remains.

Returns:
  - *Video: Created entity
  - error: VALIDATION_ERROR, or INTERNAL_ERROR on upload and storage failures
*/
func (service *Service) Publish(context context.Context, input PublishInput) (*Video, error) {
	input.Title = text.Clean(input.Title)
	input.Description = text.Clean(input.Description)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, TitleMaxLen).
		Required(FieldDescription, input.Description).
		MaxLen(FieldDescription, input.Description, DescriptionMaxLen)

	if input.VideoFile == nil {
		validator.Custom(FieldVideoFile, true, "Video file is required")
	} else {
		validator.Custom(FieldVideoFile, !media.Accepts(media.KindVideo, input.VideoFile.Name), "Unsupported video format")
	}
	if input.Thumbnail == nil {
		validator.Custom(FieldThumbnail, true, "Thumbnail is required")
	} else {
		validator.Custom(FieldThumbnail, !media.Accepts(media.KindImage, input.Thumbnail.Name), "Unsupported image format")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	duration := service.probe(context, input.VideoFile.Path)

	videoObject, thumbnailObject, err := service.uploadPair(context, *input.VideoFile, *input.Thumbnail)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	video := &Video{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		VideoFile:    videoObject.URL,
		VideoFileKey: videoObject.Key,
		Thumbnail:    thumbnailObject.URL,
		ThumbnailKey: thumbnailObject.Key,
		Duration:     duration,
		IsPublished:  true,
		OwnerID:      input.OwnerID,
	}

	if err := service.repo.Create(context, video); err != nil {
		service.discard(context, videoObject.Key, thumbnailObject.Key)
		return nil, err
	}

	service.logger.Info("video_published",
		slog.String("video_id", video.ID),
		slog.String("owner_id", video.OwnerID),
	)
	return video, nil
}

func (service *Service) probe(context context.Context, path string) float64 {
	if service.prober == nil {
		return 0
	}
	duration, err := service.prober.Duration(context, path)
	if err != nil {
		service.logger.Warn("video_probe_failed", slog.String("error", err.Error()))
		return 0
	}
	return duration
}

// uploadPair stores the video and thumbnail concurrently. On failure it
// removes whichever object was stored.
func (service *Service) uploadPair(parent context.Context, videoFile, thumbnail media.File) (*media.Object, *media.Object, error) {
	var videoObject, thumbnailObject *media.Object

	group, groupContext := errgroup.WithContext(parent)
	group.Go(func() error {
		object, err := service.store.Upload(groupContext, videoFile, media.KindVideo)
		videoObject = object
		return err
	})
	group.Go(func() error {
		object, err := service.store.Upload(groupContext, thumbnail, media.KindImage)
		thumbnailObject = object
		return err
	})

	if err := group.Wait(); err != nil {
		var keys []string
		for _, object := range []*media.Object{videoObject, thumbnailObject} {
			if object != nil {
				keys = append(keys, object.Key)
			}
		}
		service.discard(parent, keys...)
		return nil, nil, err
	}
	return videoObject, thumbnailObject, nil
}

// discard deletes media objects on a context detached from the request, so
// cleanup still runs after the client disconnects. Failures are only logged.
func (service *Service) discard(parent context.Context, keys ...string) {
	cleanupContext, cancel := context.WithTimeout(context.WithoutCancel(parent), constants.MediaCleanupTimeout)
	defer cancel()

	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := service.store.Delete(cleanupContext, key); err != nil {
			service.logger.Error("media_cleanup_failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}
}

// # Reading

/*
GetVideo returns a video and counts one view.

Unpublished videos are only visible to their owner. The view is counted
after authorisation so a rejected fetch never changes the counter.

Returns:
  - *Video: Entity with owner profile and the incremented views
  - error: VALIDATION_ERROR, NOT_FOUND or FORBIDDEN
*/
func (service *Service) GetVideo(context context.Context, id, viewerID string) (*Video, error) {
	if err := validate.ID(FieldVideoID, id); err != nil {
		return nil, err
	}

	video, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, apperr.Forbidden("This video is not published")
	}

	return service.repo.IncrementViews(context, id)
}

// # Mutation

// UpdateInput holds a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Thumbnail   *media.File
}

/*
UpdateVideo applies a partial update, optionally replacing the thumbnail.

The new thumbnail is stored before the row is written. The previous
thumbnail is deleted only after the update succeeds.
*/
func (service *Service) UpdateVideo(context context.Context, id, actorID string, input UpdateInput) (*Video, error) {
	if err := validate.ID(FieldVideoID, id); err != nil {
		return nil, err
	}

	video, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if err := sec.EnsureOwner(video.OwnerID, actorID, "You can only edit your own videos"); err != nil {
		return nil, err
	}

	input.Title = text.CleanPtr(input.Title)
	input.Description = text.CleanPtr(input.Description)

	validator := &validate.Validator{}
	validator.NotBlank(FieldTitle, input.Title)
	if input.Title != nil {
		validator.MaxLen(FieldTitle, *input.Title, TitleMaxLen)
	}
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, DescriptionMaxLen)
	}
	if input.Thumbnail != nil {
		validator.Custom(FieldThumbnail, !media.Accepts(media.KindImage, input.Thumbnail.Name), "Unsupported image format")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.Description != nil {
		video.Description = *input.Description
	}

	previousThumbnailKey := ""
	if input.Thumbnail != nil {
		object, err := service.store.Upload(context, *input.Thumbnail, media.KindImage)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		previousThumbnailKey = video.ThumbnailKey
		video.Thumbnail, video.ThumbnailKey = object.URL, object.Key
	}

	if err := service.repo.Update(context, video); err != nil {
		if input.Thumbnail != nil {
			service.discard(context, video.ThumbnailKey)
		}
		return nil, err
	}
	service.discard(context, previousThumbnailKey)

	service.logger.Info("video_updated", slog.String("video_id", video.ID))
	return video, nil
}

// DeleteVideo removes the video and then its media objects.
func (service *Service) DeleteVideo(context context.Context, id, actorID string) error {
	if err := validate.ID(FieldVideoID, id); err != nil {
		return err
	}

	video, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if err := sec.EnsureOwner(video.OwnerID, actorID, "You can only delete your own videos"); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.discard(context, video.VideoFileKey, video.ThumbnailKey)

	service.logger.Info("video_deleted", slog.String("video_id", id))
	return nil
}

// TogglePublish flips the publish state of an owned video.
func (service *Service) TogglePublish(context context.Context, id, actorID string) (*Video, error) {
	if err := validate.ID(FieldVideoID, id); err != nil {
		return nil, err
	}

	video, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if err := sec.EnsureOwner(video.OwnerID, actorID, "You can only publish your own videos"); err != nil {
		return nil, err
	}

	video, err = service.repo.TogglePublish(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Info("video_publish_toggled",
		slog.String("video_id", video.ID),
		slog.Bool("is_published", video.IsPublished),
	)
	return video, nil
}

