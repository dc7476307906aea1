// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/pagination"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Service implements the subscription use cases.
type Service struct {
	repo     Repository
	channels ChannelDirectory
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, channels ChannelDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, channels: channels, logger: logger}
}

/*
Toggle subscribes the actor to a channel, or unsubscribes when already
subscribed.

Returns:
  - *ToggleResult: State after the toggle
  - error: VALIDATION_ERROR, NOT_FOUND for an unknown channel, FORBIDDEN on
    self-subscription
*/
func (service *Service) Toggle(context context.Context, channelID, subscriberID string) (*ToggleResult, error) {
	if err := validate.ID(FieldChannelID, channelID); err != nil {
		return nil, err
	}

	exists, err := service.channels.Exists(context, channelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Channel")
	}
	if channelID == subscriberID {
		return nil, apperr.Forbidden("You cannot subscribe to your own channel")
	}

	removed, err := service.repo.Remove(context, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if removed {
		service.logger.Info("channel_unsubscribed", slog.String("channel_id", channelID))
		return &ToggleResult{ChannelID: channelID, IsSubscribed: false}, nil
	}

	subscription := &Subscription{ID: uuid.New(), SubscriberID: subscriberID, ChannelID: channelID}
	if err := service.repo.Add(context, subscription); err != nil {
		return nil, err
	}

	service.logger.Info("channel_subscribed", slog.String("channel_id", channelID))
	return &ToggleResult{ChannelID: channelID, IsSubscribed: true}, nil
}

// ListSubscribers returns a page of a channel's subscribers.
func (service *Service) ListSubscribers(context context.Context, channelID string, params pagination.Params) ([]*Entry, int, error) {
	if err := validate.ID(FieldChannelID, channelID); err != nil {
		return nil, 0, err
	}
	return service.repo.ListSubscribers(context, channelID, params.Limit, params.Offset())
}

// ListChannels returns a page of the channels a user subscribes to.
func (service *Service) ListChannels(context context.Context, subscriberID string, params pagination.Params) ([]*Entry, int, error) {
	if err := validate.ID(FieldSubscriberID, subscriberID); err != nil {
		return nil, 0, err
	}
	return service.repo.ListChannels(context, subscriberID, params.Limit, params.Offset())
}
