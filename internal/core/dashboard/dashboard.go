// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dashboard serves the read-only channel overview.
package dashboard

import (
	"context"

	"github.com/taibuivan/vidtube/internal/core/video"
)

// Stats aggregates a channel's counters.
type Stats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}

// Repository computes each counter independently.
type Repository interface {
	CountVideos(context context.Context, channelID string) (int64, error)

	// SumViews returns 0 for a channel without videos.
	SumViews(context context.Context, channelID string) (int64, error)

	// CountLikes counts likes on videos the channel owns.
	CountLikes(context context.Context, channelID string) (int64, error)

	CountSubscribers(context context.Context, channelID string) (int64, error)
}

// VideoLister lists a channel's videos. [*video.Service] satisfies it.
type VideoLister interface {
	ListChannelVideos(context context.Context, channelID, viewerID string) ([]*video.Video, error)
}
