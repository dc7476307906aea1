// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

func TestWrapEntity_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND"},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), "NOT_FOUND"},
		{"unique_violation", &pgconn.PgError{Code: "23505"}, "CONFLICT"},
		{"foreign_key_violation", &pgconn.PgError{Code: "23503"}, "NOT_FOUND"},
		{"invalid_text", &pgconn.PgError{Code: "22P02"}, "VALIDATION_ERROR"},
		{"bad_encoding", &pgconn.PgError{Code: "22021"}, "VALIDATION_ERROR"},
		{"check_violation", &pgconn.PgError{Code: "23514", ConstraintName: "subscription_not_self"}, "VALIDATION_ERROR"},
		{"other_pg_error", &pgconn.PgError{Code: "57014"}, "INTERNAL_ERROR"},
		{"plain_error", errors.New("conn closed"), "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.WrapEntity(tt.err, "get_video", "Video")
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.code, ae.Code)
		})
	}
}

func TestWrapEntity_NilAndPassthrough(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))

	forbidden := apperr.Forbidden("not yours")
	assert.Same(t, forbidden, dberr.Wrap(forbidden, "noop"))
}

func TestWrapEntity_NamedMessage(t *testing.T) {
	err := dberr.WrapEntity(pgx.ErrNoRows, "get_tweet", "Tweet")
	assert.Equal(t, "Tweet not found", err.Error())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	assert.True(t, dberr.IsUniqueViolation(err, ""))
	assert.True(t, dberr.IsUniqueViolation(err, "users_username_key"))
	assert.False(t, dberr.IsUniqueViolation(err, "users_email_key"))
	assert.False(t, dberr.IsUniqueViolation(errors.New("x"), ""))
}
