// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/validate"
)

// Service implements the dashboard use cases.
type Service struct {
	repo   Repository
	videos VideoLister
}

// NewService constructs a new [Service].
func NewService(repo Repository, videos VideoLister) *Service {
	return &Service{repo: repo, videos: videos}
}

/*
ChannelStats computes the four counters concurrently.

Each counter is its own query. If any fails the whole call fails, so a
partially filled Stats is never returned.
*/
func (service *Service) ChannelStats(parent context.Context, channelID string) (*Stats, error) {
	if err := validate.ID("channelId", channelID); err != nil {
		return nil, err
	}

	var stats Stats
	group, groupContext := errgroup.WithContext(parent)

	collect := func(target *int64, query func(context.Context, string) (int64, error)) {
		group.Go(func() error {
			value, err := query(groupContext, channelID)
			if err != nil {
				return err
			}
			*target = value
			return nil
		})
	}

	collect(&stats.TotalVideos, service.repo.CountVideos)
	collect(&stats.TotalViews, service.repo.SumViews)
	collect(&stats.TotalLikes, service.repo.CountLikes)
	collect(&stats.TotalSubscribers, service.repo.CountSubscribers)

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ChannelVideos returns the channel's videos, newest first. An empty channel
// yields an empty list.
func (service *Service) ChannelVideos(context context.Context, channelID, viewerID string) ([]*video.Video, error) {
	return service.videos.ListChannelVideos(context, channelID, viewerID)
}
