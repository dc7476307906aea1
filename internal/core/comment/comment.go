// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package comment implements comments on videos.
package comment

import (
	"time"

	"github.com/taibuivan/vidtube/internal/users/auth"
)

// Comment is a user's text reply under a video.
type Comment struct {
	ID           string        `json:"id"`
	Content      string        `json:"content"`
	VideoID      string        `json:"video,omitempty"`
	OwnerID      string        `json:"owner"`
	OwnerProfile *auth.Profile `json:"ownerProfile,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt,omitzero"`
}

const (
	FieldVideoID   = "videoId"
	FieldCommentID = "commentId"
	FieldContent   = "content"
)

const ContentMaxLen = 2000
