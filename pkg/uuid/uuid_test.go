// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vidtube/pkg/uuid"
)

func TestNew_IsValidAndOrdered(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	assert.True(t, uuid.Valid(first))
	assert.NotEqual(t, first, second)
	assert.Equal(t, "7", first[14:15])
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"canonical", "0192f7a4-5c1e-7b3a-9d2e-4f6a8b0c1d2e", true},
		{"uppercase", "0192F7A4-5C1E-7B3A-9D2E-4F6A8B0C1D2E", false},
		{"mixed_case", "0192f7a4-5C1E-7b3a-9d2e-4f6a8b0c1d2e", false},
		{"empty", "", false},
		{"short", "0192f7a4", false},
		{"urn", "urn:uuid:0192f7a4-5c1e-7b3a-9d2e-4f6a8b0c1d2e", false},
		{"braced", "{0192f7a4-5c1e-7b3a-9d2e-4f6a8b0c1d2e}", false},
		{"bad_hex", "zzzzzzzz-5c1e-7b3a-9d2e-4f6a8b0c1d2e", false},
		{"object_id", "64b7f0c2e1a4b3c2d1e0f9a8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, uuid.Valid(tt.value))
		})
	}
}
