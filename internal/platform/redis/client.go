// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides the managed client for data that expires: refresh
sessions today. Anything durable belongs in PostgreSQL.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the client. Zero fields fall back to [DefaultOptions].
type Options struct {
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions returns the client settings used by the API server.
// Session traffic is one round trip per login or refresh, so the pool is small.
func DefaultOptions() Options {
	return Options{
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	}
}

const pingTimeout = 2 * time.Second

// NewClient parses a Redis URL, applies options, then connects and pings.
func NewClient(context stdctx.Context, redisURL string, options Options, logger *slog.Logger) (*redis.Client, error) {
	clientOptions, err := ParseOptions(redisURL, options)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(clientOptions)

	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", clientOptions.Addr),
		slog.Int("db", clientOptions.DB),
		slog.Int("pool_size", clientOptions.PoolSize),
	)

	return client, nil
}

// ParseOptions turns a redis:// or rediss:// URL into client options with
// the pool tuning from options merged in.
func ParseOptions(redisURL string, options Options) (*redis.Options, error) {
	clientOptions, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	defaults := DefaultOptions()
	clientOptions.PoolSize = fallback(options.PoolSize, defaults.PoolSize)
	clientOptions.MinIdleConns = fallback(options.MinIdleConns, defaults.MinIdleConns)
	clientOptions.DialTimeout = fallback(options.DialTimeout, defaults.DialTimeout)
	clientOptions.ReadTimeout = fallback(options.ReadTimeout, defaults.ReadTimeout)
	clientOptions.WriteTimeout = fallback(options.WriteTimeout, defaults.WriteTimeout)

	return clientOptions, nil
}

func fallback[T int | time.Duration](value, def T) T {
	if value == 0 {
		return def
	}
	return value
}

// Ping verifies that the Redis client is healthy.
func Ping(context stdctx.Context, client redis.Cmdable) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
