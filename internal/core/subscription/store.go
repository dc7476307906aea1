// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import "context"

// Repository defines the persistence contract for subscriptions.
type Repository interface {

	// Remove deletes the pair and reports whether it existed.
	Remove(context context.Context, subscriberID, channelID string) (bool, error)

	// Add inserts the pair. An existing pair is not an error.
	Add(context context.Context, subscription *Subscription) error

	// ListSubscribers returns a page of users subscribed to channelID, newest first.
	ListSubscribers(context context.Context, channelID string, limit, offset int) ([]*Entry, int, error)

	// ListChannels returns a page of channels subscriberID follows, newest first.
	ListChannels(context context.Context, subscriberID string, limit, offset int) ([]*Entry, int, error)
}

// ChannelDirectory resolves channels. [*auth.PostgresRepository] satisfies it.
type ChannelDirectory interface {
	Exists(context context.Context, id string) (bool, error)
}
