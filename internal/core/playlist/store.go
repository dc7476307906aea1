// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"

	"github.com/taibuivan/vidtube/internal/core/video"
)

// Repository defines the persistence contract for playlists.
type Repository interface {
	Create(context context.Context, playlist *Playlist) error

	// ListByOwner returns a page of a user's playlists, newest first.
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Playlist, int, error)

	// FindByID returns a playlist without resolved videos, or NOT_FOUND.
	FindByID(context context.Context, id string) (*Playlist, error)

	/*
		ListVideos resolves the playlist's video ids in order. Missing videos
		are skipped, as are unpublished videos not owned by viewerID.
	*/
	ListVideos(context context.Context, playlistID, viewerID string) ([]*video.Video, error)

	// Update persists name and description and refreshes UpdatedAt.
	Update(context context.Context, playlist *Playlist) error

	Delete(context context.Context, id string) error

	/*
		AddVideo appends videoID unless already present, as one statement.

		Returns:
		  - *Playlist: State after the append
		  - error: NOT_FOUND when the video does not exist
	*/
	AddVideo(context context.Context, playlistID, videoID string) (*Playlist, error)

	// RemoveVideo drops every occurrence of videoID. Absent ids are not an error.
	RemoveVideo(context context.Context, playlistID, videoID string) (*Playlist, error)
}
