// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

// Handler implements the HTTP layer for the dashboard.
type Handler struct {
	service *Service
}

// NewHandler constructs a new dashboard [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /dashboard router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(middleware.RequireAuth).Get("/stats", handler.stats)
	router.Get("/videos/{channelId}", handler.channelVideos)

	return router
}

/*
GET /api/v1/dashboard/stats.

Description: Counters of the current user's channel.

Response:
  - 200: Stats
*/
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.ChannelStats(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats, "Channel stats fetched")
}

/*
GET /api/v1/dashboard/videos/{channelId}.

Description: The channel's videos, newest first. Unpublished videos are
listed only for the owner.

Response:
  - 200: []Video: Possibly empty
  - 400: VALIDATION_ERROR: Invalid identifier
*/
func (handler *Handler) channelVideos(writer http.ResponseWriter, request *http.Request) {
	videos, err := handler.service.ChannelVideos(request.Context(),
		requestutil.ID(request, "channelId"), ctxutil.GetUserID(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, videos, "Channel videos fetched")
}
