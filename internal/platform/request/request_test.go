// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/platform/validate"
)

func TestDecodeJSON(t *testing.T) {
	var payload struct {
		Content *string `json:"content"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"hi"}`))
	require.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &payload))
	require.NotNil(t, payload.Content)
	assert.Equal(t, "hi", *payload.Content)

	empty := httptest.NewRequest(http.MethodPatch, "/", http.NoBody)
	payload.Content = nil
	require.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), empty, &payload))
	assert.Nil(t, payload.Content)

	broken := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":`))
	assert.ErrorIs(t, requestutil.DecodeJSON(httptest.NewRecorder(), broken, &payload), validate.ErrInvalidJSON)
}

func TestFormValue_Presence(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("title", "New"))
	require.NoError(t, writer.WriteField("description", ""))
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPatch, "/", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, request.ParseMultipartForm(1<<20))

	title := requestutil.OptionalFormValue(request, "title")
	require.NotNil(t, title)
	assert.Equal(t, "New", *title)

	description := requestutil.OptionalFormValue(request, "description")
	require.NotNil(t, description)
	assert.Equal(t, "", *description)

	assert.Nil(t, requestutil.OptionalFormValue(request, "missing"))
}

func TestRequiredUserID(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := requestutil.RequiredUserID(request)
	assert.Error(t, err)

	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "u1"}))
	userID, err := requestutil.RequiredUserID(request)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}
