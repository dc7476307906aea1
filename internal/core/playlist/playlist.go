// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package playlist implements user-curated ordered lists of videos.

A playlist stores video ids in insertion order without duplicates. Detail
views resolve them to videos and skip ids whose video no longer exists.
*/
package playlist

import (
	"time"

	"github.com/taibuivan/vidtube/internal/core/video"
)

// Playlist is an ordered set of video references owned by a user.
type Playlist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	OwnerID     string   `json:"owner"`

	// Videos is the stored membership. It may reference unpublished or
	// deleted videos, so it never leaves the server.
	Videos []string `json:"-"`

	// VideoItems is populated on detail reads with the videos the viewer may
	// see, in playlist order.
	VideoItems []*video.Video `json:"videos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	FieldPlaylistID  = "playlistId"
	FieldVideoID     = "videoId"
	FieldUserID      = "userId"
	FieldName        = "name"
	FieldDescription = "description"
)

const (
	NameMaxLen        = 150
	DescriptionMaxLen = 2000
)
