// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the composition root for the chi router.
  - Only this package and cmd/api import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/vidtube/internal/core/comment"
	"github.com/taibuivan/vidtube/internal/core/dashboard"
	"github.com/taibuivan/vidtube/internal/core/like"
	"github.com/taibuivan/vidtube/internal/core/playlist"
	"github.com/taibuivan/vidtube/internal/core/subscription"
	"github.com/taibuivan/vidtube/internal/core/tweet"
	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/config"
	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. 503 when a dependency is down.
	Readiness http.HandlerFunc

	// Media serves locally stored uploads under /media/. Nil when media
	// lives in object storage.
	Media http.Handler

	Users         *auth.Handler
	Videos        *video.Handler
	Comments      *comment.Handler
	Likes         *like.Handler
	Tweets        *tweet.Handler
	Playlists     *playlist.Handler
	Subscriptions *subscription.Handler
	Dashboard     *dashboard.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	router := newRouter(context, cfg, log, verifier, h)

	return &Server{
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

func newRouter(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Timeout(constants.GlobalRequestTimeout, constants.UploadRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	if h.Media != nil {
		r.Handle("/media/*", h.Media)
	}

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/users", h.Users.Routes())
		api.Mount("/videos", h.Videos.Routes())
		api.Mount("/comments", h.Comments.Routes())
		api.Mount("/likes", h.Likes.Routes())
		api.Mount("/tweets", h.Tweets.Routes())
		api.Mount("/playlists", h.Playlists.Routes())
		api.Mount("/subscriptions", h.Subscriptions.Routes())
		api.Mount("/dashboard", h.Dashboard.Routes())
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server. It blocks until the server is
// closed or fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
