// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/redis"
)

func TestParseOptions(t *testing.T) {
	t.Run("defaults_fill_zero_fields", func(t *testing.T) {
		options, err := redis.ParseOptions("redis://cache:6380/3", redis.Options{PoolSize: 4})
		require.NoError(t, err)

		assert.Equal(t, "cache:6380", options.Addr)
		assert.Equal(t, 3, options.DB)
		assert.Equal(t, 4, options.PoolSize)
		assert.Equal(t, redis.DefaultOptions().MinIdleConns, options.MinIdleConns)
		assert.Equal(t, 3*time.Second, options.DialTimeout)
	})

	t.Run("invalid_url", func(t *testing.T) {
		_, err := redis.ParseOptions("http://cache", redis.Options{})
		assert.Error(t, err)
	})
}
