// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tweet implements short text posts on a channel.
package tweet

import (
	"time"

	"github.com/taibuivan/vidtube/internal/users/auth"
)

// Tweet is a short text update posted by a user.
type Tweet struct {
	ID           string        `json:"id"`
	Content      string        `json:"content"`
	OwnerID      string        `json:"owner"`
	OwnerProfile *auth.Profile `json:"ownerProfile,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

const (
	FieldTweetID = "tweetId"
	FieldUserID  = "userId"
	FieldContent = "content"
)

const ContentMaxLen = 280
