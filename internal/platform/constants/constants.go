// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides immutable values shared across the platform.

  - Server Timing: HTTP server and request deadlines.
  - Rate Limiting: token bucket sizing and IP tracking TTLs.
  - Authentication: token lifetimes and cookie scoping.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "vidtube-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// GlobalRequestTimeout is the deadline for JSON API requests.
	GlobalRequestTimeout = 30 * time.Second

	// UploadRequestTimeout is the deadline for media publish and thumbnail replacement.
	UploadRequestTimeout = 10 * time.Minute

	// The connection deadlines must outlast the longest per-request deadline,
	// otherwise the server cuts an upload off before the handler does. Write
	// gets extra room so the timeout response itself can still be sent.
	DefaultReadTimeout       = UploadRequestTimeout
	DefaultWriteTimeout      = UploadRequestTimeout + 30*time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// ShutdownTimeout is how long in-flight requests may run during shutdown.
	ShutdownTimeout = 30 * time.Second

	// MediaCleanupTimeout bounds best-effort deletion of orphaned media objects.
	MediaCleanupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	DefaultRateLimitRPS      = 50.0
	DefaultRateLimitBurst    = 100
	RateLimitCleanupInterval = 1 * time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim in access tokens.
	AuthIssuer = "vidtube.app"

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenBytes is the entropy of an opaque refresh token.
	RefreshTokenBytes = 32

	RefreshTokenCookieName = "refreshToken"
	RefreshTokenCookiePath = "/api/v1/users"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # Health

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Prefixes

const (
	RedisPrefixRefreshSession = "auth:refresh:"
)
