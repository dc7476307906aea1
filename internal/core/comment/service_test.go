// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/core/comment"
	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/pkg/pagination"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

type memoryComments struct {
	mu       sync.Mutex
	comments map[string]*comment.Comment
	videos   map[string]bool
	calls    int
}

func newMemoryComments(videos ...string) *memoryComments {
	repo := &memoryComments{comments: map[string]*comment.Comment{}, videos: map[string]bool{}}
	for _, id := range videos {
		repo.videos[id] = true
	}
	return repo
}

func (repo *memoryComments) ListByVideo(_ context.Context, videoID string, limit, offset int) ([]*comment.Comment, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.calls++

	matches := make([]*comment.Comment, 0)
	for _, c := range repo.comments {
		if c.VideoID == videoID {
			copied := *c
			matches = append(matches, &copied)
		}
	}
	total := len(matches)
	if offset >= total {
		return []*comment.Comment{}, total, nil
	}
	return matches[offset:min(offset+limit, total)], total, nil
}

func (repo *memoryComments) FindByID(_ context.Context, id string) (*comment.Comment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.calls++
	if c, ok := repo.comments[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, apperr.NotFound("Comment")
}

func (repo *memoryComments) Create(_ context.Context, c *comment.Comment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.calls++
	if !repo.videos[c.VideoID] {
		return apperr.NotFound("Video")
	}
	c.CreatedAt, c.UpdatedAt = time.Now(), time.Now()
	copied := *c
	repo.comments[c.ID] = &copied
	return nil
}

func (repo *memoryComments) Update(_ context.Context, c *comment.Comment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.calls++
	copied := *c
	repo.comments[c.ID] = &copied
	return nil
}

func (repo *memoryComments) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.calls++
	delete(repo.comments, id)
	return nil
}

func newService(repo *memoryComments) *comment.Service {
	return comment.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func codeOf(err error) string {
	if appError := apperr.As(err); appError != nil {
		return appError.Code
	}
	return ""
}

func TestAddComment(t *testing.T) {
	videoID := uuid.New()

	tests := []struct {
		name    string
		videoID string
		content string
		code    string
	}{
		{"valid", videoID, " Nice video ", ""},
		{"empty_content", videoID, "   ", "VALIDATION_ERROR"},
		{"malformed_video", "123", "hello", "VALIDATION_ERROR"},
		{"missing_video", uuid.New(), "hello", "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(newMemoryComments(videoID))

			created, err := service.AddComment(context.Background(), tt.videoID, uuid.New(), tt.content)
			assert.Equal(t, tt.code, codeOf(err))
			if tt.code == "" {
				assert.Equal(t, "Nice video", created.Content)
				assert.Equal(t, videoID, created.VideoID)
			}
		})
	}
}

func TestUpdateComment(t *testing.T) {
	videoID, owner := uuid.New(), uuid.New()
	repo := newMemoryComments(videoID)
	service := newService(repo)

	created, err := service.AddComment(context.Background(), videoID, owner, "first")
	require.NoError(t, err)

	edited := "second"
	updated, err := service.UpdateComment(context.Background(), created.ID, owner, &edited)
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Content)

	kept, err := service.UpdateComment(context.Background(), created.ID, owner, nil)
	require.NoError(t, err)
	assert.Equal(t, "second", kept.Content)

	blank := ""
	_, err = service.UpdateComment(context.Background(), created.ID, owner, &blank)
	assert.Equal(t, "VALIDATION_ERROR", codeOf(err))

	_, err = service.UpdateComment(context.Background(), created.ID, uuid.New(), &edited)
	assert.Equal(t, "FORBIDDEN", codeOf(err))

	_, err = service.UpdateComment(context.Background(), uuid.New(), owner, &edited)
	assert.Equal(t, "NOT_FOUND", codeOf(err))
}

func TestDeleteComment(t *testing.T) {
	videoID, owner := uuid.New(), uuid.New()
	repo := newMemoryComments(videoID)
	service := newService(repo)

	created, err := service.AddComment(context.Background(), videoID, owner, "bye")
	require.NoError(t, err)

	assert.Equal(t, "FORBIDDEN", codeOf(service.DeleteComment(context.Background(), created.ID, uuid.New())))
	require.NoError(t, service.DeleteComment(context.Background(), created.ID, owner))
	assert.Equal(t, "NOT_FOUND", codeOf(service.DeleteComment(context.Background(), created.ID, owner)))
}

func TestListComments_PastEnd(t *testing.T) {
	videoID := uuid.New()
	repo := newMemoryComments(videoID)
	service := newService(repo)
	_, err := service.AddComment(context.Background(), videoID, uuid.New(), "only")
	require.NoError(t, err)

	comments, total, err := service.ListComments(context.Background(), videoID, pagination.New(3, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestHandler_InvalidIDs(t *testing.T) {
	repo := newMemoryComments()
	router := comment.NewHandler(newService(repo)).Routes()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/xyz", ""},
		{http.MethodPost, "/xyz", `{"content":"hi"}`},
		{http.MethodPatch, "/c/xyz", `{"content":"hi"}`},
		{http.MethodDelete, "/c/xyz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+tt.path, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: uuid.New()}))
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
	assert.Zero(t, repo.calls)
}
