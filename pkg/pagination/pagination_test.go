// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vidtube/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"negative_page", "?page=-2", 1, 10},
		{"zero_limit", "?limit=0", 1, 10},
		{"capped_limit", "?limit=5000", 1, 100},
		{"garbage", "?page=abc&limit=x", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/v1/videos"+tt.query, nil)
			params := pagination.FromRequest(request)
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.New(1, 10).Offset())
	assert.Equal(t, 20, pagination.New(3, 10).Offset())
	assert.Equal(t, 100, pagination.New(5, 25).Offset())
}

func TestParams_HugePageStaysPositive(t *testing.T) {
	request := httptest.NewRequest("GET", "/api/v1/videos?page=9223372036854775807&limit=10", nil)
	params := pagination.FromRequest(request)

	assert.Equal(t, pagination.MaxPage, params.Page)
	assert.Positive(t, params.Offset())

	unclamped := pagination.Params{Page: math.MaxInt, Limit: pagination.MaxLimit}
	assert.Equal(t, math.MaxInt, unclamped.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.New(2, 10), 21)
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 10, Total: 21, TotalPages: 3}, meta)

	empty := pagination.NewMeta(pagination.New(4, 10), 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Equal(t, 4, empty.Page)
}
