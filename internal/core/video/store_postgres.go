// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/dberr"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed video store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const videoColumns = `v.id, v.title, v.description, v.videofile, v.videofilekey, v.thumbnail, v.thumbnailkey,
	v.duration, v.views, v.ispublished, v.ownerid, v.createdat, v.updatedat`

const ownerColumns = `a.id, a.username, a.fullname, a.avatar`

// sortColumns maps API sort keys to SQL columns.
var sortColumns = map[string]string{
	SortCreatedAt: "v.createdat",
	SortViews:     "v.views",
	SortDuration:  "v.duration",
	SortTitle:     "v.title",
}

// SelectColumns is the projection [ScanWithOwner] reads, for queries that
// alias core.video as v and users.account as a.
const SelectColumns = videoColumns + `, ` + ownerColumns

// ScanWithOwner scans a row selected with [SelectColumns] followed by the
// optional extra columns.
func ScanWithOwner(row pgx.Row, extra ...any) (*Video, error) {
	return scanVideo(row, true, extra...)
}

func scanVideo(row pgx.Row, withOwner bool, extra ...any) (*Video, error) {
	var video Video
	targets := []any{
		&video.ID, &video.Title, &video.Description, &video.VideoFile, &video.VideoFileKey,
		&video.Thumbnail, &video.ThumbnailKey, &video.Duration, &video.Views, &video.IsPublished,
		&video.OwnerID, &video.CreatedAt, &video.UpdatedAt,
	}

	var owner auth.Profile
	if withOwner {
		targets = append(targets, &owner.ID, &owner.Username, &owner.Fullname, &owner.Avatar)
	}
	targets = append(targets, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	if withOwner {
		video.OwnerProfile = &owner
	}
	return &video, nil
}

func collectVideos(rows pgx.Rows) ([]*Video, error) {
	defer rows.Close()

	videos := make([]*Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows, true)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}

/*
List returns a filtered, sorted page of published videos.

The count runs as its own statement so a page past the end still reports
the real total.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Video, int, error) {
	where := []string{"v.ispublished = TRUE"}
	args := []any{}

	if filter.Query != "" {
		args = append(args, "%"+escapeLike(filter.Query)+"%")
		position := len(args)
		where = append(where, fmt.Sprintf("(v.title ILIKE $%d OR v.description ILIKE $%d)", position, position))
	}
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		where = append(where, fmt.Sprintf("v.ownerid = $%d", len(args)))
	}

	clause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM core.video v WHERE ` + clause
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_videos")
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns[SortCreatedAt]
	}
	direction := "DESC"
	if filter.SortAsc {
		direction = "ASC"
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM core.video v
		JOIN users.account a ON a.id = v.ownerid
		WHERE %s
		ORDER BY %s %s, v.id %s
		LIMIT $%d OFFSET $%d`,
		SelectColumns, clause, column, direction, direction, len(args)-1, len(args))

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}

	videos, err := collectVideos(rows)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_videos")
	}
	return videos, total, nil
}

// ListByOwner returns a channel's videos, newest first.
func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string, includeUnpublished bool) ([]*Video, error) {
	query := `
		SELECT ` + SelectColumns + `
		FROM core.video v
		JOIN users.account a ON a.id = v.ownerid
		WHERE v.ownerid = $1 AND (v.ispublished OR $2)
		ORDER BY v.createdat DESC, v.id DESC`

	rows, err := repository.db.Query(context, query, ownerID, includeUnpublished)
	if err != nil {
		return nil, dberr.Wrap(err, "list_channel_videos")
	}

	videos, err := collectVideos(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_channel_videos")
	}
	return videos, nil
}

// FindByID returns a single video.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Video, error) {
	row := repository.db.QueryRow(context, `SELECT `+videoColumns+` FROM core.video v WHERE v.id = $1`, id)

	video, err := scanVideo(row, false)
	if err != nil {
		return nil, dberr.WrapEntity(err, "get_video_by_id", "Video")
	}
	return video, nil
}

/*
IncrementViews bumps the view counter atomically.

Concurrent fetches each add exactly one view since the increment happens in
the UPDATE itself.
*/
func (repository *PostgresRepository) IncrementViews(context context.Context, id string) (*Video, error) {
	const query = `
		WITH v AS (
			UPDATE core.video SET views = views + 1 WHERE id = $1
			RETURNING id, title, description, videofile, videofilekey, thumbnail, thumbnailkey,
				duration, views, ispublished, ownerid, createdat, updatedat
		)
		SELECT ` + SelectColumns + `
		FROM v
		JOIN users.account a ON a.id = v.ownerid`

	video, err := scanVideo(repository.db.QueryRow(context, query, id), true)
	if err != nil {
		return nil, dberr.WrapEntity(err, "increment_video_views", "Video")
	}
	return video, nil
}

// TogglePublish flips ispublished in place so a concurrent edit of other fields survives.
func (repository *PostgresRepository) TogglePublish(context context.Context, id string) (*Video, error) {
	const query = `
		WITH v AS (
			UPDATE core.video SET ispublished = NOT ispublished, updatedat = NOW() WHERE id = $1
			RETURNING id, title, description, videofile, videofilekey, thumbnail, thumbnailkey,
				duration, views, ispublished, ownerid, createdat, updatedat
		)
		SELECT ` + SelectColumns + `
		FROM v
		JOIN users.account a ON a.id = v.ownerid`

	video, err := scanVideo(repository.db.QueryRow(context, query, id), true)
	if err != nil {
		return nil, dberr.WrapEntity(err, "toggle_video_publish", "Video")
	}
	return video, nil
}

// Create persists a new video.
func (repository *PostgresRepository) Create(context context.Context, video *Video) error {
	const query = `
		INSERT INTO core.video (id, title, description, videofile, videofilekey, thumbnail, thumbnailkey,
			duration, views, ispublished, ownerid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING createdat, updatedat`

	err := repository.db.QueryRow(context, query,
		video.ID, video.Title, video.Description, video.VideoFile, video.VideoFileKey,
		video.Thumbnail, video.ThumbnailKey, video.Duration, video.Views, video.IsPublished, video.OwnerID,
	).Scan(&video.CreatedAt, &video.UpdatedAt)
	if err != nil {
		return dberr.WrapEntity(err, "create_video", "Video")
	}
	return nil
}

// Update persists the mutable fields of a video.
func (repository *PostgresRepository) Update(context context.Context, video *Video) error {
	const query = `
		UPDATE core.video
		SET title = $2, description = $3, thumbnail = $4, thumbnailkey = $5, ispublished = $6, updatedat = NOW()
		WHERE id = $1
		RETURNING updatedat`

	err := repository.db.QueryRow(context, query,
		video.ID, video.Title, video.Description, video.Thumbnail, video.ThumbnailKey, video.IsPublished,
	).Scan(&video.UpdatedAt)
	if err != nil {
		return dberr.WrapEntity(err, "update_video", "Video")
	}
	return nil
}

// Delete removes a video row.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, `DELETE FROM core.video WHERE id = $1`, id)
	if err != nil {
		return dberr.WrapEntity(err, "delete_video", "Video")
	}
	if tag.RowsAffected() == 0 {
		return dberr.WrapEntity(pgx.ErrNoRows, "delete_video", "Video")
	}
	return nil
}
