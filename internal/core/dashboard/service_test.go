// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/core/dashboard"
	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

type fixedStats struct {
	stats   dashboard.Stats
	failing string
}

func (repo fixedStats) value(name string, value int64) (int64, error) {
	if repo.failing == name {
		return 0, apperr.Internal(errors.New(name + " failed"))
	}
	return value, nil
}

func (repo fixedStats) CountVideos(context.Context, string) (int64, error) {
	return repo.value("videos", repo.stats.TotalVideos)
}

func (repo fixedStats) SumViews(context.Context, string) (int64, error) {
	return repo.value("views", repo.stats.TotalViews)
}

func (repo fixedStats) CountLikes(context.Context, string) (int64, error) {
	return repo.value("likes", repo.stats.TotalLikes)
}

func (repo fixedStats) CountSubscribers(context.Context, string) (int64, error) {
	return repo.value("subscribers", repo.stats.TotalSubscribers)
}

type channelVideos map[string][]*video.Video

func (lister channelVideos) ListChannelVideos(_ context.Context, channelID, _ string) ([]*video.Video, error) {
	if videos, ok := lister[channelID]; ok {
		return videos, nil
	}
	return []*video.Video{}, nil
}

func TestChannelStats(t *testing.T) {
	want := dashboard.Stats{TotalVideos: 3, TotalViews: 120, TotalLikes: 7, TotalSubscribers: 2}
	service := dashboard.NewService(fixedStats{stats: want}, channelVideos{})

	stats, err := service.ChannelStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, want, *stats)
}

func TestChannelStats_EmptyChannel(t *testing.T) {
	service := dashboard.NewService(fixedStats{}, channelVideos{})

	stats, err := service.ChannelStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, dashboard.Stats{}, *stats)
}

func TestChannelStats_AnyFailureFailsAll(t *testing.T) {
	for _, failing := range []string{"videos", "views", "likes", "subscribers"} {
		t.Run(failing, func(t *testing.T) {
			service := dashboard.NewService(fixedStats{stats: dashboard.Stats{TotalVideos: 1}, failing: failing}, channelVideos{})

			stats, err := service.ChannelStats(context.Background(), uuid.New())
			assert.Error(t, err)
			assert.Nil(t, stats)
		})
	}
}

func TestChannelStats_InvalidID(t *testing.T) {
	service := dashboard.NewService(fixedStats{}, channelVideos{})

	_, err := service.ChannelStats(context.Background(), "me")
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

func TestChannelVideos_Empty(t *testing.T) {
	service := dashboard.NewService(fixedStats{}, channelVideos{})

	videos, err := service.ChannelVideos(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}
