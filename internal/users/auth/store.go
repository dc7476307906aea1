// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND if missing
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByLogin returns the account whose username or email equals login.

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND if missing
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	/*
		Exists reports whether an account with the given ID exists.
	*/
	Exists(context context.Context, id string) (bool, error)

	/*
		Create persists a brand-new user account.

		Returns:
		  - error: CONFLICT on duplicate username or email
	*/
	Create(context context.Context, user *User) error
}

// # Session Data Access

// SessionRepository stores refresh sessions keyed by the token digest.
type SessionRepository interface {

	/*
		Save binds tokenHash to userID until ttl elapses.
	*/
	Save(context context.Context, tokenHash, userID string, ttl time.Duration) error

	/*
		Consume atomically reads and deletes the session, so a refresh token
		can be redeemed at most once.

		Returns:
		  - string: UserID
		  - error: UNAUTHORIZED if absent or expired
	*/
	Consume(context context.Context, tokenHash string) (string, error)

	/*
		Delete removes a session. Missing sessions are not an error.
	*/
	Delete(context context.Context, tokenHash string) error
}
