// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// Handler implements the HTTP layer for subscriptions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new subscription [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /subscriptions router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/c/{channelId}", handler.listSubscribers)
	router.Get("/u/{subscriberId}", handler.listChannels)
	router.With(middleware.RequireAuth).Post("/c/{channelId}", handler.toggle)

	return router
}

/*
POST /api/v1/subscriptions/c/{channelId}.

Response:
  - 200: ToggleResult
  - 403: FORBIDDEN: Own channel
  - 404: NOT_FOUND: Unknown channel
*/
func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Toggle(request.Context(), requestutil.ID(request, FieldChannelID), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	message := "Unsubscribed"
	if result.IsSubscribed {
		message = "Subscribed"
	}
	respond.OK(writer, result, message)
}

// GET /api/v1/subscriptions/c/{channelId}.
func (handler *Handler) listSubscribers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	entries, total, err := handler.service.ListSubscribers(request.Context(), requestutil.ID(request, FieldChannelID), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams, total), "Subscribers fetched")
}

// GET /api/v1/subscriptions/u/{subscriberId}.
func (handler *Handler) listChannels(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	entries, total, err := handler.service.ListChannels(request.Context(), requestutil.ID(request, FieldSubscriberID), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams, total), "Subscribed channels fetched")
}
