// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	"github.com/taibuivan/vidtube/internal/platform/sec"
)

type stubVerifier struct {
	claims *sec.AuthClaims
	err    error
}

func (verifier stubVerifier) VerifyToken(string) (*sec.AuthClaims, error) {
	return verifier.claims, verifier.err
}

type stubConfig struct {
	dev bool
}

func (c stubConfig) IsDevelopment() bool         { return c.dev }
func (c stubConfig) AllowedOriginSuffix() string { return "vidtube.app" }

func echoUser() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(ctxutil.GetUserID(request.Context())))
	})
}

func TestAuthenticate(t *testing.T) {
	valid := stubVerifier{claims: &sec.AuthClaims{UserID: "user-1"}}
	invalid := stubVerifier{err: errors.New("expired")}

	tests := []struct {
		name     string
		verifier stubVerifier
		header   string
		status   int
		body     string
	}{
		{"anonymous", valid, "", http.StatusOK, ""},
		{"valid_bearer", valid, "Bearer abc", http.StatusOK, "user-1"},
		{"lowercase_scheme", valid, "bearer abc", http.StatusOK, "user-1"},
		{"wrong_scheme", valid, "Basic abc", http.StatusUnauthorized, ""},
		{"missing_token", valid, "Bearer ", http.StatusUnauthorized, ""},
		{"invalid_token", invalid, "Bearer abc", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(tt.verifier)(echoUser()).ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, recorder.Body.String())
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	handler := middleware.RequireAuth(echoUser())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodPost, "/", nil)
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "user-9"}))
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-9", recorder.Body.String())
}

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(ctxutil.GetRequestID(request.Context())))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := recorder.Header().Get("X-Request-ID")
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, recorder.Body.String())

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "client-supplied")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "client-supplied", recorder.Body.String())
}

func TestStructuredLogger_RecordsUser(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, nil))
	verifier := stubVerifier{claims: &sec.AuthClaims{UserID: "user-7"}}

	handler := middleware.StructuredLogger(logger)(middleware.Authenticate(verifier)(echoUser()))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil)
	request.Header.Set("Authorization", "Bearer t")
	handler.ServeHTTP(httptest.NewRecorder(), request)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	assert.Equal(t, "http_request_finished", entry["msg"])
	assert.Equal(t, "user-7", entry["user_id"])
	assert.Equal(t, "/api/v1/videos", entry["path"])
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 1, 2)(echoUser())

	statuses := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "203.0.113.5:4000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, []int{200, 200, 429}, statuses)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestTimeout_ChoosesDeadlineByContentType(t *testing.T) {
	var remaining time.Duration
	handler := middleware.Timeout(time.Second, time.Hour)(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		deadline, ok := request.Context().Deadline()
		require.True(t, ok)
		remaining = time.Until(deadline)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	assert.LessOrEqual(t, remaining, time.Second)

	request := httptest.NewRequest(http.MethodPost, "/", nil)
	request.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Greater(t, remaining, time.Minute)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		dev     bool
		origin  string
		allowed bool
	}{
		{"dev_any_origin", true, "http://localhost:3000", true},
		{"prod_root", false, "https://vidtube.app", true},
		{"prod_subdomain", false, "https://studio.vidtube.app", true},
		{"prod_lookalike", false, "https://evilvidtube.app", false},
		{"prod_foreign", false, "https://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(stubConfig{dev: tt.dev})(echoUser())
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
