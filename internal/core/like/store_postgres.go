// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed like store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// targetColumns maps each kind to its nullable foreign key column.
var targetColumns = map[Kind]string{
	KindVideo:   "videoid",
	KindComment: "commentid",
	KindTweet:   "tweetid",
}

func targetColumn(target Target) (string, error) {
	column, ok := targetColumns[target.Kind]
	if !ok {
		return "", fmt.Errorf("like: unknown target kind %q", target.Kind)
	}
	return column, nil
}

// Remove deletes the like in a single statement.
func (repository *PostgresRepository) Remove(context context.Context, target Target, userID string) (bool, error) {
	column, err := targetColumn(target)
	if err != nil {
		return false, dberr.Wrap(err, "remove_like")
	}

	query := fmt.Sprintf(`DELETE FROM core.likes WHERE %s = $1 AND likedby = $2`, column)
	tag, err := repository.db.Exec(context, query, target.ID, userID)
	if err != nil {
		return false, dberr.Wrap(err, "remove_like")
	}
	return tag.RowsAffected() > 0, nil
}

/*
Add inserts the like. ON CONFLICT covers the partial unique index of the
kind, so a concurrent identical toggle converges instead of duplicating.
*/
func (repository *PostgresRepository) Add(context context.Context, like *Like) error {
	column, err := targetColumn(like.Target)
	if err != nil {
		return dberr.Wrap(err, "add_like")
	}

	query := fmt.Sprintf(`
		INSERT INTO core.likes (id, %s, likedby)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`, column)

	if _, err := repository.db.Exec(context, query, like.ID, like.Target.ID, like.LikedBy); err != nil {
		return dberr.WrapEntity(err, "add_like", like.Target.Kind.Entity())
	}
	return nil
}

// ListLikedVideos joins likes with visible videos and their owners.
func (repository *PostgresRepository) ListLikedVideos(context context.Context, userID string, limit, offset int) ([]*LikedVideo, int, error) {
	const visible = `
		FROM core.likes l
		JOIN core.video v ON v.id = l.videoid
		JOIN users.account a ON a.id = v.ownerid
		WHERE l.likedby = $1 AND (v.ispublished OR v.ownerid = $1)`

	var total int
	if err := repository.db.QueryRow(context, `SELECT COUNT(*) `+visible, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_liked_videos")
	}

	query := `SELECT ` + video.SelectColumns + `, l.createdat ` + visible + `
		ORDER BY l.createdat DESC, l.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_liked_videos")
	}
	defer rows.Close()

	liked := make([]*LikedVideo, 0)
	for rows.Next() {
		var item LikedVideo
		entry, err := video.ScanWithOwner(rows, &item.LikedAt)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_liked_video")
		}
		item.Video = entry
		liked = append(liked, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_liked_videos")
	}

	return liked, total, nil
}
