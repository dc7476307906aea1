// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/dberr"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed subscription store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Remove deletes the pair in one statement.
func (repository *PostgresRepository) Remove(context context.Context, subscriberID, channelID string) (bool, error) {
	tag, err := repository.db.Exec(context,
		`DELETE FROM core.subscription WHERE subscriberid = $1 AND channelid = $2`, subscriberID, channelID)
	if err != nil {
		return false, dberr.Wrap(err, "remove_subscription")
	}
	return tag.RowsAffected() > 0, nil
}

// Add inserts the pair. subscription_pair_key absorbs concurrent duplicates.
func (repository *PostgresRepository) Add(context context.Context, subscription *Subscription) error {
	const query = `
		INSERT INTO core.subscription (id, subscriberid, channelid)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT subscription_pair_key DO NOTHING`

	if _, err := repository.db.Exec(context, query, subscription.ID, subscription.SubscriberID, subscription.ChannelID); err != nil {
		return dberr.WrapEntity(err, "add_subscription", "Channel")
	}
	return nil
}

// ListSubscribers joins the subscriber side.
func (repository *PostgresRepository) ListSubscribers(context context.Context, channelID string, limit, offset int) ([]*Entry, int, error) {
	return repository.list(context, "channelid", "subscriberid", channelID, limit, offset)
}

// ListChannels joins the channel side.
func (repository *PostgresRepository) ListChannels(context context.Context, subscriberID string, limit, offset int) ([]*Entry, int, error) {
	return repository.list(context, "subscriberid", "channelid", subscriberID, limit, offset)
}

// list filters on one column and joins the account referenced by the other.
// Both column names are fixed by the callers above.
func (repository *PostgresRepository) list(context context.Context, filterColumn, joinColumn, id string, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := repository.db.QueryRow(context,
		`SELECT COUNT(*) FROM core.subscription WHERE `+filterColumn+` = $1`, id).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_subscriptions")
	}

	query := `
		SELECT a.id, a.username, a.fullname, a.avatar, s.createdat
		FROM core.subscription s
		JOIN users.account a ON a.id = s.` + joinColumn + `
		WHERE s.` + filterColumn + ` = $1
		ORDER BY s.createdat DESC, s.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(context, query, id, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_subscriptions")
	}
	defer rows.Close()

	entries := make([]*Entry, 0)
	for rows.Next() {
		var entry Entry
		var user auth.Profile
		if err := rows.Scan(&user.ID, &user.Username, &user.Fullname, &user.Avatar, &entry.SubscribedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_subscription")
		}
		entry.User = &user
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_subscriptions")
	}

	return entries, total, nil
}
