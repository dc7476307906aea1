// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

// PostgresRepository implements [UserRepository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed account store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, email, fullname, avatar, coverimage, passwordhash, createdat, updatedat`

func scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Fullname, &user.Avatar,
		&user.CoverImage, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the account with the given ID.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	row := repository.db.QueryRow(context, `SELECT `+userColumns+` FROM users.account WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		return nil, dberr.WrapEntity(err, "get_user_by_id", "User")
	}
	return user, nil
}

/*
FindByLogin resolves a username or email. Both are stored lower-cased.

Parameters:
  - context: context.Context
  - login: string (already folded)

Returns:
  - *User: Hydrated entity
  - error: NOT_FOUND if neither matches
*/
func (repository *PostgresRepository) FindByLogin(context context.Context, login string) (*User, error) {
	row := repository.db.QueryRow(context,
		`SELECT `+userColumns+` FROM users.account WHERE username = $1 OR email = $1 LIMIT 1`, login)

	user, err := scanUser(row)
	if err != nil {
		return nil, dberr.WrapEntity(err, "get_user_by_login", "User")
	}
	return user, nil
}

// Exists reports whether an account with the given ID exists.
func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	var exists bool
	err := repository.db.QueryRow(context, `SELECT EXISTS (SELECT 1 FROM users.account WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, dberr.Wrap(err, "user_exists")
	}
	return exists, nil
}

/*
Create persists a new account. Unique violations are reported per column so
the client learns which identity is taken.

Returns:
  - error: CONFLICT or storage failures
*/
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (id, username, email, fullname, avatar, coverimage, passwordhash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING createdat, updatedat`

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, user.Email, user.Fullname, user.Avatar, user.CoverImage, user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	switch {
	case err == nil:
		return nil
	case dberr.IsUniqueViolation(err, "account_username_key"):
		return apperr.Conflict("Username is already taken").WithCause(err)
	case dberr.IsUniqueViolation(err, "account_email_key"):
		return apperr.Conflict("Email is already registered").WithCause(err)
	default:
		return dberr.WrapEntity(err, "create_user", "User")
	}
}
