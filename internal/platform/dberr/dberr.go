// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr translates pgx and PostgreSQL errors into [apperr.AppError] values.
//
// # SQLSTATE mapping
//
//	no rows                      -> 404 NOT_FOUND
//	23505 unique_violation       -> 409 CONFLICT
//	23503 foreign_key_violation  -> 404 NOT_FOUND (the referenced row is gone)
//	22P02 invalid_text_repr      -> 400 VALIDATION_ERROR
//	22021 bad byte sequence      -> 400 VALIDATION_ERROR
//	23514 check_violation        -> 400 VALIDATION_ERROR
//	anything else                -> 500 INTERNAL_ERROR
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02"
	codeBadEncoding         = "22021"
	codeCheckViolation      = "23514"
)

// ErrNotFound is the generic not-found error returned when the entity name is unknown.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap classifies err using a generic entity name. action names the failed
// operation (snake_case) and is kept in the cause for logs.
func Wrap(err error, action string) error {
	return WrapEntity(err, action, "Resource")
}

// WrapEntity is [Wrap] with a named entity for the not-found message.
func WrapEntity(err error, action, entity string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream
	if apperr.IsAppError(err) {
		return err
	}

	cause := fmt.Errorf("%s: %w", action, err)

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(entity).WithCause(cause)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperr.Conflict(entity + " already exists").WithCause(cause)
		case codeForeignKeyViolation:
			return apperr.NotFound(entity).WithCause(cause)
		case codeInvalidText:
			return apperr.ValidationError("Invalid identifier").WithCause(cause)
		case codeBadEncoding:
			return apperr.ValidationError("Text must be valid UTF-8").WithCause(cause)
		case codeCheckViolation:
			return apperr.ValidationError("Invalid " + entity).WithCause(cause)
		}
	}

	return apperr.Internal(cause)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation,
// optionally restricted to a named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
