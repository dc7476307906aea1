// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

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

// NewPostgresRepository constructs a PostgreSQL backed comment store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByVideo returns the projected, owner-joined comment page.
func (repository *PostgresRepository) ListByVideo(context context.Context, videoID string, limit, offset int) ([]*Comment, int, error) {
	var total int
	const countQuery = `
		SELECT COUNT(*)
		FROM core.comment c
		JOIN users.account a ON a.id = c.ownerid
		WHERE c.videoid = $1`
	if err := repository.db.QueryRow(context, countQuery, videoID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_comments")
	}

	const query = `
		SELECT c.id, c.content, c.createdat, c.ownerid, a.id, a.username, a.fullname, a.avatar
		FROM core.comment c
		JOIN users.account a ON a.id = c.ownerid
		WHERE c.videoid = $1
		ORDER BY c.createdat DESC, c.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(context, query, videoID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		var comment Comment
		var owner auth.Profile
		if err := rows.Scan(
			&comment.ID, &comment.Content, &comment.CreatedAt, &comment.OwnerID,
			&owner.ID, &owner.Username, &owner.Fullname, &owner.Avatar,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comment")
		}
		comment.OwnerProfile = &owner
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_comments")
	}

	return comments, total, nil
}

// FindByID returns a single comment.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Comment, error) {
	const query = `SELECT id, content, videoid, ownerid, createdat, updatedat FROM core.comment WHERE id = $1`

	var comment Comment
	err := repository.db.QueryRow(context, query, id).Scan(
		&comment.ID, &comment.Content, &comment.VideoID, &comment.OwnerID, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.WrapEntity(err, "get_comment_by_id", "Comment")
	}
	return &comment, nil
}

// Create inserts a comment. A missing video surfaces as a foreign key violation.
func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	const query = `
		INSERT INTO core.comment (id, content, videoid, ownerid)
		VALUES ($1, $2, $3, $4)
		RETURNING createdat, updatedat`

	err := repository.db.QueryRow(context, query, comment.ID, comment.Content, comment.VideoID, comment.OwnerID).
		Scan(&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return dberr.WrapEntity(err, "create_comment", "Video")
	}
	return nil
}

// Update writes the new content.
func (repository *PostgresRepository) Update(context context.Context, comment *Comment) error {
	const query = `UPDATE core.comment SET content = $2, updatedat = NOW() WHERE id = $1 RETURNING updatedat`

	if err := repository.db.QueryRow(context, query, comment.ID, comment.Content).Scan(&comment.UpdatedAt); err != nil {
		return dberr.WrapEntity(err, "update_comment", "Comment")
	}
	return nil
}

// Delete removes a comment row.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, `DELETE FROM core.comment WHERE id = $1`, id)
	if err != nil {
		return dberr.WrapEntity(err, "delete_comment", "Comment")
	}
	if tag.RowsAffected() == 0 {
		return dberr.WrapEntity(pgx.ErrNoRows, "delete_comment", "Comment")
	}
	return nil
}
