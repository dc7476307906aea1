// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package like implements likes on videos, comments and tweets.

A like exists or it does not: there is no liked flag. Toggling deletes the
record when present and inserts it otherwise.
*/
package like

import (
	"time"

	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/validate"
)

// Kind discriminates the liked entity.
type Kind string

const (
	KindVideo   Kind = "video"
	KindComment Kind = "comment"
	KindTweet   Kind = "tweet"
)

// Entity returns the display name used in errors.
func (kind Kind) Entity() string {
	switch kind {
	case KindVideo:
		return "Video"
	case KindComment:
		return "Comment"
	case KindTweet:
		return "Tweet"
	}
	return "Resource"
}

// Field returns the URL parameter naming the target id.
func (kind Kind) Field() string {
	return string(kind) + "Id"
}

// Target is the liked entity. Exactly one kind and one id.
type Target struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id"`
}

/*
NewTarget validates kind and id.

Returns:
  - error: VALIDATION_ERROR for an unknown kind or malformed id
*/
func NewTarget(kind Kind, id string) (Target, error) {
	switch kind {
	case KindVideo, KindComment, KindTweet:
	default:
		return Target{}, apperr.ValidationError("Unknown like target")
	}
	if err := validate.ID(kind.Field(), id); err != nil {
		return Target{}, err
	}
	return Target{Kind: kind, ID: id}, nil
}

// Like records that a user liked a target.
type Like struct {
	ID        string    `json:"id"`
	Target    Target    `json:"target"`
	LikedBy   string    `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	Target  Target `json:"target"`
	IsLiked bool   `json:"isLiked"`
}

// LikedVideo is a video in the viewer's liked list.
type LikedVideo struct {
	LikedAt time.Time    `json:"likedAt"`
	Video   *video.Video `json:"video"`
}
