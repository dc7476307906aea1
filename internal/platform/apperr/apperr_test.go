// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
)

func TestConstructors_Status(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"not_found", apperr.NotFound("Video"), "NOT_FOUND", http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("login"), "UNAUTHORIZED", http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("nope"), "FORBIDDEN", http.StatusForbidden},
		{"conflict", apperr.Conflict("dup"), "CONFLICT", http.StatusConflict},
		{"validation", apperr.ValidationError("bad"), "VALIDATION_ERROR", http.StatusBadRequest},
		{"internal", apperr.Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "Video not found", apperr.NotFound("Video").Error())
}

func TestAs_WrappedChain(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("publish: %w", apperr.Internal(cause))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, apperr.HasCode(wrapped, "INTERNAL_ERROR"))
	assert.Nil(t, apperr.As(cause))
}

func TestWithCause_DoesNotMutateOriginal(t *testing.T) {
	base := apperr.NotFound("Comment")
	cause := errors.New("no rows")

	clone := base.WithCause(cause)

	assert.Nil(t, base.Cause)
	assert.ErrorIs(t, clone, cause)
	assert.Equal(t, base.Code, clone.Code)
}
