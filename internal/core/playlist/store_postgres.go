// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed playlist store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const playlistColumns = `id, name, description, ownerid, videos::text[], createdat, updatedat`

func scanPlaylist(row pgx.Row) (*Playlist, error) {
	var playlist Playlist
	if err := row.Scan(
		&playlist.ID, &playlist.Name, &playlist.Description, &playlist.OwnerID,
		&playlist.Videos, &playlist.CreatedAt, &playlist.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if playlist.Videos == nil {
		playlist.Videos = []string{}
	}
	return &playlist, nil
}

// Create persists a new, empty playlist.
func (repository *PostgresRepository) Create(context context.Context, playlist *Playlist) error {
	const query = `
		INSERT INTO core.playlist (id, name, description, ownerid)
		VALUES ($1, $2, $3, $4)
		RETURNING createdat, updatedat`

	if err := repository.db.QueryRow(context, query, playlist.ID, playlist.Name, playlist.Description, playlist.OwnerID).
		Scan(&playlist.CreatedAt, &playlist.UpdatedAt); err != nil {
		return dberr.WrapEntity(err, "create_playlist", "Playlist")
	}
	if playlist.Videos == nil {
		playlist.Videos = []string{}
	}
	return nil
}

// ListByOwner returns a page of playlists.
func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Playlist, int, error) {
	var total int
	if err := repository.db.QueryRow(context, `SELECT COUNT(*) FROM core.playlist WHERE ownerid = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_playlists")
	}

	rows, err := repository.db.Query(context, `
		SELECT `+playlistColumns+`
		FROM core.playlist
		WHERE ownerid = $1
		ORDER BY createdat DESC, id DESC
		LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_playlists")
	}
	defer rows.Close()

	playlists := make([]*Playlist, 0)
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_playlist")
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_playlists")
	}

	return playlists, total, nil
}

// FindByID returns a single playlist.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Playlist, error) {
	playlist, err := scanPlaylist(repository.db.QueryRow(context, `SELECT `+playlistColumns+` FROM core.playlist WHERE id = $1`, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, "get_playlist_by_id", "Playlist")
	}
	return playlist, nil
}

/*
ListVideos unnests the id array with its ordinality so the join keeps the
playlist order. The inner join drops ids of deleted videos.
*/
func (repository *PostgresRepository) ListVideos(context context.Context, playlistID, viewerID string) ([]*video.Video, error) {
	query := `
		SELECT ` + video.SelectColumns + `
		FROM core.playlist p
		CROSS JOIN LATERAL unnest(p.videos) WITH ORDINALITY AS item(videoid, position)
		JOIN core.video v ON v.id = item.videoid
		JOIN users.account a ON a.id = v.ownerid
		WHERE p.id = $1 AND (v.ispublished OR v.ownerid::text = $2)
		ORDER BY item.position`

	rows, err := repository.db.Query(context, query, playlistID, viewerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playlist_videos")
	}
	defer rows.Close()

	videos := make([]*video.Video, 0)
	for rows.Next() {
		entry, err := video.ScanWithOwner(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_playlist_video")
		}
		videos = append(videos, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_playlist_videos")
	}
	return videos, nil
}

// Update writes name and description.
func (repository *PostgresRepository) Update(context context.Context, playlist *Playlist) error {
	const query = `
		UPDATE core.playlist SET name = $2, description = $3, updatedat = NOW()
		WHERE id = $1
		RETURNING updatedat`

	if err := repository.db.QueryRow(context, query, playlist.ID, playlist.Name, playlist.Description).
		Scan(&playlist.UpdatedAt); err != nil {
		return dberr.WrapEntity(err, "update_playlist", "Playlist")
	}
	return nil
}

// Delete removes a playlist row.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, `DELETE FROM core.playlist WHERE id = $1`, id)
	if err != nil {
		return dberr.WrapEntity(err, "delete_playlist", "Playlist")
	}
	if tag.RowsAffected() == 0 {
		return dberr.WrapEntity(pgx.ErrNoRows, "delete_playlist", "Playlist")
	}
	return nil
}

/*
AddVideo appends under the row lock. The CASE is evaluated against the
locked row, so concurrent adds of the same id store it once. No row
returned means the video does not exist; callers have already loaded the
playlist.
*/
func (repository *PostgresRepository) AddVideo(context context.Context, playlistID, videoID string) (*Playlist, error) {
	const query = `
		UPDATE core.playlist
		SET videos = CASE WHEN $2::uuid = ANY(videos) THEN videos ELSE array_append(videos, $2::uuid) END,
			updatedat = NOW()
		WHERE id = $1 AND EXISTS (SELECT 1 FROM core.video WHERE id = $2::uuid)
		RETURNING ` + playlistColumns

	playlist, err := scanPlaylist(repository.db.QueryRow(context, query, playlistID, videoID))
	if err != nil {
		return nil, dberr.WrapEntity(err, "add_playlist_video", "Video")
	}
	return playlist, nil
}

// RemoveVideo drops the id from the array.
func (repository *PostgresRepository) RemoveVideo(context context.Context, playlistID, videoID string) (*Playlist, error) {
	const query = `
		UPDATE core.playlist
		SET videos = array_remove(videos, $2::uuid), updatedat = NOW()
		WHERE id = $1
		RETURNING ` + playlistColumns

	playlist, err := scanPlaylist(repository.db.QueryRow(context, query, playlistID, videoID))
	if err != nil {
		return nil, dberr.WrapEntity(err, "remove_playlist_video", "Playlist")
	}
	return playlist, nil
}
