// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed stats store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) scalar(context context.Context, action, query, channelID string) (int64, error) {
	var value int64
	if err := repository.db.QueryRow(context, query, channelID).Scan(&value); err != nil {
		return 0, dberr.Wrap(err, action)
	}
	return value, nil
}

// CountVideos counts every video the channel owns.
func (repository *PostgresRepository) CountVideos(context context.Context, channelID string) (int64, error) {
	return repository.scalar(context, "count_channel_videos",
		`SELECT COUNT(*) FROM core.video WHERE ownerid = $1`, channelID)
}

// SumViews adds the views of every owned video.
func (repository *PostgresRepository) SumViews(context context.Context, channelID string) (int64, error) {
	return repository.scalar(context, "sum_channel_views",
		`SELECT COALESCE(SUM(views), 0)::bigint FROM core.video WHERE ownerid = $1`, channelID)
}

// CountLikes counts likes targeting the channel's videos.
func (repository *PostgresRepository) CountLikes(context context.Context, channelID string) (int64, error) {
	return repository.scalar(context, "count_channel_likes", `
		SELECT COUNT(*)
		FROM core.likes l
		JOIN core.video v ON v.id = l.videoid
		WHERE v.ownerid = $1`, channelID)
}

// CountSubscribers counts subscriptions to the channel.
func (repository *PostgresRepository) CountSubscribers(context context.Context, channelID string) (int64, error) {
	return repository.scalar(context, "count_channel_subscribers",
		`SELECT COUNT(*) FROM core.subscription WHERE channelid = $1`, channelID)
}
