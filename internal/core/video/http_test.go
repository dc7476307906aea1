// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Code       string          `json:"code"`
	Data       json.RawMessage `json:"data"`
}

func serve(t *testing.T, handler *video.Handler, request *http.Request, userID string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	if userID != "" {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: userID}))
	}

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for key, name := range files {
		part, err := writer.CreateFormFile(key, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("payload"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buffer, writer.FormDataContentType()
}

func TestHandler_InvalidIDNeverReachesStore(t *testing.T) {
	repo := newMemoryVideos()
	handler := video.NewHandler(newService(repo, newMemoryStore(), nil), 1<<20)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		recorder, body := serve(t, handler, httptest.NewRequest(method, "/not-an-id", nil), uuid.New())
		assert.Equal(t, http.StatusBadRequest, recorder.Code, method)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
	}

	recorder, _ := serve(t, handler, httptest.NewRequest(http.MethodPatch, "/toggle/publish/123", nil), uuid.New())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Zero(t, repo.calls)
}

func TestHandler_RequiresAuth(t *testing.T) {
	handler := video.NewHandler(newService(newMemoryVideos(), newMemoryStore(), nil), 1<<20)

	recorder, body := serve(t, handler, httptest.NewRequest(http.MethodGet, "/"+uuid.New(), nil), "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestHandler_ListPublic(t *testing.T) {
	repo := newMemoryVideos()
	seedVideo(repo, uuid.New(), true)
	handler := video.NewHandler(newService(repo, newMemoryStore(), nil), 1<<20)

	recorder, body := serve(t, handler, httptest.NewRequest(http.MethodGet, "/?page=1&limit=5", nil), "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var videos []video.Video
	require.NoError(t, json.Unmarshal(body.Data, &videos))
	assert.Len(t, videos, 1)

	recorder, body = serve(t, handler, httptest.NewRequest(http.MethodGet, "/?sortBy=likes", nil), "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestHandler_PublishMultipart(t *testing.T) {
	repo, store := newMemoryVideos(), newMemoryStore()
	handler := video.NewHandler(newService(repo, store, fixedProber(3)), 1<<20)
	owner := uuid.New()

	payload, contentType := multipartBody(t,
		map[string]string{"title": "Clip", "description": "Desc"},
		map[string]string{"videoFile": "clip.mp4", "thumbnail": "cover.jpg"},
	)
	request := httptest.NewRequest(http.MethodPost, "/", payload)
	request.Header.Set("Content-Type", contentType)

	recorder, body := serve(t, handler, request, owner)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created video.Video
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, "Clip", created.Title)
	assert.Equal(t, owner, created.OwnerID)
	assert.Equal(t, float64(3), created.Duration)
	assert.Equal(t, 2, store.count())
}

func TestHandler_PublishTooLarge(t *testing.T) {
	handler := video.NewHandler(newService(newMemoryVideos(), newMemoryStore(), nil), 64)

	payload, contentType := multipartBody(t,
		map[string]string{"title": "Clip", "description": "A description long enough to overflow"},
		map[string]string{"videoFile": "clip.mp4", "thumbnail": "cover.jpg"},
	)
	request := httptest.NewRequest(http.MethodPost, "/", payload)
	request.Header.Set("Content-Type", contentType)

	recorder, body := serve(t, handler, request, uuid.New())
	assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", body.Code)
}

func TestHandler_PublishMissingFile(t *testing.T) {
	handler := video.NewHandler(newService(newMemoryVideos(), newMemoryStore(), nil), 1<<20)

	payload, contentType := multipartBody(t,
		map[string]string{"title": "Clip", "description": "Desc"},
		map[string]string{"videoFile": "clip.mp4"},
	)
	request := httptest.NewRequest(http.MethodPost, "/", payload)
	request.Header.Set("Content-Type", contentType)

	recorder, body := serve(t, handler, request, uuid.New())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestHandler_PublishRejectsInvalidUTF8(t *testing.T) {
	repo, store := newMemoryVideos(), newMemoryStore()
	handler := video.NewHandler(newService(repo, store, nil), 1<<20)

	payload, contentType := multipartBody(t,
		map[string]string{"title": "Clip \xff\xfe", "description": "Desc"},
		map[string]string{"videoFile": "clip.mp4", "thumbnail": "cover.jpg"},
	)
	request := httptest.NewRequest(http.MethodPost, "/", payload)
	request.Header.Set("Content-Type", contentType)

	recorder, body := serve(t, handler, request, uuid.New())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Zero(t, repo.calls)
	assert.Zero(t, store.count())
}
