// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Vidtube HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and Redis.
//  4. Run database migrations (idempotent).
//  5. Select the media store and duration prober.
//  6. Wire repositories, services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/vidtube/internal/api"
	"github.com/taibuivan/vidtube/internal/core/comment"
	"github.com/taibuivan/vidtube/internal/core/dashboard"
	"github.com/taibuivan/vidtube/internal/core/like"
	"github.com/taibuivan/vidtube/internal/core/playlist"
	"github.com/taibuivan/vidtube/internal/core/subscription"
	"github.com/taibuivan/vidtube/internal/core/tweet"
	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/config"
	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/media"
	"github.com/taibuivan/vidtube/internal/platform/migration"
	pgstore "github.com/taibuivan/vidtube/internal/platform/postgres"
	redisstore "github.com/taibuivan/vidtube/internal/platform/redis"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("media_driver", cfg.MediaDriver),
	)

	// Lives until shutdown. Background workers (rate limiter cleanup) stop with it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.DefaultOptions(), log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── Redis ─────────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, redisstore.DefaultOptions(), log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 5. Media ──────────────────────────────────────────────────────────
	var (
		store        media.Store
		mediaHandler http.Handler
	)
	switch cfg.MediaDriver {
	case config.MediaDriverS3:
		s3Store, err := media.NewS3Store(startupCtx, media.S3Options{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			UsePathStyle:  cfg.S3UsePathStyle,
			PublicBaseURL: cfg.MediaPublicBaseURL,
		})
		must(log, err, "initialize s3 media store")
		store = s3Store
	default:
		localStore, err := media.NewLocalStore(cfg.MediaLocalDir, cfg.MediaPublicBaseURL)
		must(log, err, "initialize local media store")
		store = localStore
		mediaHandler = localStore.Handler()
	}

	// A typed nil would defeat the service's nil check.
	var prober media.Prober
	if ffprobe := media.NewFFProbe(cfg.FFProbePath); ffprobe != nil {
		prober = ffprobe
	} else {
		log.Warn("ffprobe_unavailable", slog.String("binary", cfg.FFProbePath))
	}

	// ── Health handlers ───────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewPostgresRepository(pool)
	sessionRepository := auth.NewSessionRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, tokenService, log)

	videoService := video.NewService(video.NewPostgresRepository(pool), store, prober, log)
	commentService := comment.NewService(comment.NewPostgresRepository(pool), log)
	likeService := like.NewService(like.NewPostgresRepository(pool), log)
	tweetService := tweet.NewService(tweet.NewPostgresRepository(pool), log)
	playlistService := playlist.NewService(playlist.NewPostgresRepository(pool), log)
	subscriptionService := subscription.NewService(subscription.NewPostgresRepository(pool), userRepository, log)
	dashboardService := dashboard.NewService(dashboard.NewPostgresRepository(pool), videoService)

	handlers := api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Media:         mediaHandler,
		Users:         auth.NewHandler(authService, !cfg.IsDevelopment()),
		Videos:        video.NewHandler(videoService, cfg.MaxUploadBytes()),
		Comments:      comment.NewHandler(commentService),
		Likes:         like.NewHandler(likeService),
		Tweets:        tweet.NewHandler(tweetService),
		Playlists:     playlist.NewHandler(playlistService),
		Subscriptions: subscription.NewHandler(subscriptionService),
		Dashboard:     dashboard.NewHandler(dashboardService),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, tokenService, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger installs a JSON logger tagged with the application name as the
// process default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))

	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
