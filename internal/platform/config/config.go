// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config maps environment variables into a strongly-typed [Config]
using caarlos0/env.

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Configuration is read once at startup and passed to constructors. No package
keeps it in global state.
*/
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Media storage drivers.
const (
	MediaDriverLocal = "local"
	MediaDriverS3    = "s3"
)

// Config holds all runtime configuration for the Vidtube API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL   string `env:"DATABASE_URL,required"`
	// MigrationPath overrides the schema embedded in the binary.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value store for refresh sessions (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// JWTSecret signs access tokens (HS256). At least 32 bytes.
	JWTSecret string `env:"JWT_SECRET,required"`

	// Media storage
	MediaDriver        string `env:"MEDIA_DRIVER"          envDefault:"local"`
	MediaLocalDir      string `env:"MEDIA_LOCAL_DIR"       envDefault:"./data/media"`
	MediaPublicBaseURL string `env:"MEDIA_PUBLIC_BASE_URL"`
	MaxUploadMB        int64  `env:"MAX_UPLOAD_MB"         envDefault:"512"`
	FFProbePath        string `env:"FFPROBE_PATH"          envDefault:"ffprobe"`

	// Object Storage (AWS S3 / Cloudflare R2 / MinIO)
	S3Bucket       string `env:"S3_BUCKET"`
	S3Region       string `env:"S3_REGION"         envDefault:"auto"`
	S3Endpoint     string `env:"S3_ENDPOINT"`
	S3UsePathStyle bool   `env:"S3_USE_PATH_STYLE" envDefault:"false"`

	// Cross-Origin Resource Sharing, production only
	CORSOriginSuffix string `env:"CORS_ORIGIN_SUFFIX" envDefault:"vidtube.app"`
}

// Load parses environment variables into a [Config] and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	switch c.MediaDriver {
	case MediaDriverLocal:
	case MediaDriverS3:
		if c.S3Bucket == "" {
			return errors.New("config: S3_BUCKET is required when MEDIA_DRIVER=s3")
		}
	default:
		return fmt.Errorf("config: unknown MEDIA_DRIVER %q", c.MediaDriver)
	}

	if c.MaxUploadMB <= 0 {
		return errors.New("config: MAX_UPLOAD_MB must be positive")
	}

	return nil
}

// MaxUploadBytes returns the multipart body limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOriginSuffix is the origin suffix accepted outside development.
func (c *Config) AllowedOriginSuffix() string {
	return c.CORSOriginSuffix
}
