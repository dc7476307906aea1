// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/pagination"
	"github.com/taibuivan/vidtube/pkg/text"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Service implements the tweet use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateTweet posts a new tweet for the actor.
func (service *Service) CreateTweet(context context.Context, actorID, content string) (*Tweet, error) {
	content = text.Clean(content)

	validator := &validate.Validator{}
	validator.Required(FieldContent, content).MaxLen(FieldContent, content, ContentMaxLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	tweet := &Tweet{ID: uuid.New(), Content: content, OwnerID: actorID}
	if err := service.repo.Create(context, tweet); err != nil {
		return nil, err
	}

	service.logger.Info("tweet_created", slog.String("tweet_id", tweet.ID))
	return tweet, nil
}

/*
ListTweets returns a page of tweets, newest first.

Returns:
  - error: VALIDATION_ERROR when userId is present but malformed
*/
func (service *Service) ListTweets(context context.Context, userID string, params pagination.Params) ([]*Tweet, int, error) {
	if userID != "" {
		if err := validate.ID(FieldUserID, userID); err != nil {
			return nil, 0, err
		}
	}
	return service.repo.List(context, userID, params.Limit, params.Offset())
}

// GetTweet returns a single tweet.
func (service *Service) GetTweet(context context.Context, id string) (*Tweet, error) {
	if err := validate.ID(FieldTweetID, id); err != nil {
		return nil, err
	}
	return service.repo.FindByID(context, id)
}

// UpdateTweet replaces the content of an owned tweet. Nil keeps it.
func (service *Service) UpdateTweet(context context.Context, id, actorID string, content *string) (*Tweet, error) {
	if err := validate.ID(FieldTweetID, id); err != nil {
		return nil, err
	}

	tweet, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if err := sec.EnsureOwner(tweet.OwnerID, actorID, "You can only update your own tweets"); err != nil {
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
		return tweet, nil
	}

	tweet.Content = *content
	if err := service.repo.Update(context, tweet); err != nil {
		return nil, err
	}

	service.logger.Info("tweet_updated", slog.String("tweet_id", id))
	return tweet, nil
}

// DeleteTweet removes an owned tweet.
func (service *Service) DeleteTweet(context context.Context, id, actorID string) error {
	if err := validate.ID(FieldTweetID, id); err != nil {
		return err
	}

	tweet, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if err := sec.EnsureOwner(tweet.OwnerID, actorID, "You can only delete your own tweets"); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("tweet_deleted", slog.String("tweet_id", id))
	return nil
}
