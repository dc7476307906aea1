// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/dberr"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed tweet store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const tweetSelect = `
	SELECT t.id, t.content, t.ownerid, t.createdat, t.updatedat, a.id, a.username, a.fullname, a.avatar
	FROM core.tweet t
	JOIN users.account a ON a.id = t.ownerid`

func scanTweet(row pgx.Row) (*Tweet, error) {
	var tweet Tweet
	var owner auth.Profile
	if err := row.Scan(
		&tweet.ID, &tweet.Content, &tweet.OwnerID, &tweet.CreatedAt, &tweet.UpdatedAt,
		&owner.ID, &owner.Username, &owner.Fullname, &owner.Avatar,
	); err != nil {
		return nil, err
	}
	tweet.OwnerProfile = &owner
	return &tweet, nil
}

// List returns a page of tweets, optionally for one owner.
func (repository *PostgresRepository) List(context context.Context, ownerID string, limit, offset int) ([]*Tweet, int, error) {
	const filter = ` WHERE ($1 = '' OR t.ownerid::text = $1)`

	var total int
	if err := repository.db.QueryRow(context, `SELECT COUNT(*) FROM core.tweet t`+filter, ownerID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tweets")
	}

	rows, err := repository.db.Query(context,
		tweetSelect+filter+` ORDER BY t.createdat DESC, t.id DESC LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tweets")
	}
	defer rows.Close()

	tweets := make([]*Tweet, 0)
	for rows.Next() {
		tweet, err := scanTweet(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tweet")
		}
		tweets = append(tweets, tweet)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_tweets")
	}

	return tweets, total, nil
}

// FindByID returns a single tweet.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Tweet, error) {
	tweet, err := scanTweet(repository.db.QueryRow(context, tweetSelect+` WHERE t.id = $1`, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, "get_tweet_by_id", "Tweet")
	}
	return tweet, nil
}

// Create persists a new tweet.
func (repository *PostgresRepository) Create(context context.Context, tweet *Tweet) error {
	const query = `INSERT INTO core.tweet (id, content, ownerid) VALUES ($1, $2, $3) RETURNING createdat, updatedat`

	if err := repository.db.QueryRow(context, query, tweet.ID, tweet.Content, tweet.OwnerID).
		Scan(&tweet.CreatedAt, &tweet.UpdatedAt); err != nil {
		return dberr.WrapEntity(err, "create_tweet", "User")
	}
	return nil
}

// Update writes the new content.
func (repository *PostgresRepository) Update(context context.Context, tweet *Tweet) error {
	const query = `UPDATE core.tweet SET content = $2, updatedat = NOW() WHERE id = $1 RETURNING updatedat`

	if err := repository.db.QueryRow(context, query, tweet.ID, tweet.Content).Scan(&tweet.UpdatedAt); err != nil {
		return dberr.WrapEntity(err, "update_tweet", "Tweet")
	}
	return nil
}

// Delete removes a tweet row. Its likes cascade.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, `DELETE FROM core.tweet WHERE id = $1`, id)
	if err != nil {
		return dberr.WrapEntity(err, "delete_tweet", "Tweet")
	}
	if tag.RowsAffected() == 0 {
		return dberr.WrapEntity(pgx.ErrNoRows, "delete_tweet", "Tweet")
	}
	return nil
}
