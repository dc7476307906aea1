// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package video implements the video catalogue: listing, the media publish
flow, view counting and owner-only mutation.

A video is visible to everyone once published. Unpublished videos are
visible only to their owner.
*/
package video

import (
	"time"

	"github.com/taibuivan/vidtube/internal/users/auth"
)

// Video is an uploaded media asset with metadata.
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoFile   string  `json:"videoFile"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    float64 `json:"duration"`
	Views       int64   `json:"views"`
	IsPublished bool    `json:"isPublished"`
	OwnerID     string  `json:"owner"`

	// OwnerProfile is populated by reads that join the owner account.
	OwnerProfile *auth.Profile `json:"ownerProfile,omitempty"`

	// Storage keys of the media objects, used for cleanup.
	VideoFileKey string `json:"-"`
	ThumbnailKey string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Filter narrows the public listing. Only published videos are ever listed.
type Filter struct {
	// Query matches title or description, case-insensitively.
	Query   string
	OwnerID string
	SortBy  string
	SortAsc bool
}

// # Sorting

// Sort keys accepted by the listing.
const (
	SortCreatedAt = "createdAt"
	SortViews     = "views"
	SortDuration  = "duration"
	SortTitle     = "title"
)

// SortKeys lists every accepted sortBy value.
var SortKeys = []string{SortCreatedAt, SortViews, SortDuration, SortTitle}

// # Field Identifiers

const (
	FieldVideoID     = "videoId"
	FieldUserID      = "userId"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldVideoFile   = "videoFile"
	FieldThumbnail   = "thumbnail"
	FieldSortBy      = "sortBy"
	FieldSortType    = "sortType"
	FieldQuery       = "query"
)

// # Constraints

const (
	TitleMaxLen       = 200
	DescriptionMaxLen = 5000
	QueryMaxLen       = 200
)
