// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package subscription implements channel subscriptions between users.
package subscription

import (
	"time"

	"github.com/taibuivan/vidtube/internal/users/auth"
)

// Subscription records that Subscriber follows Channel. Both are users.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber"`
	ChannelID    string    `json:"channel"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Entry is one row of a subscriber or subscribed-channel list: the user on
// the other side of the subscription.
type Entry struct {
	User         *auth.Profile `json:"user"`
	SubscribedAt time.Time     `json:"subscribedAt"`
}

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	ChannelID    string `json:"channel"`
	IsSubscribed bool   `json:"isSubscribed"`
}

const (
	FieldChannelID    = "channelId"
	FieldSubscriberID = "subscriberId"
)
