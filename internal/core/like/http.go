// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// Handler implements the HTTP layer for likes.
type Handler struct {
	service *Service
}

// NewHandler constructs a new like [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /likes router. Every endpoint requires authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/toggle/v/{videoId}", handler.toggle(KindVideo))
	router.Post("/toggle/c/{commentId}", handler.toggle(KindComment))
	router.Post("/toggle/t/{tweetId}", handler.toggle(KindTweet))
	router.Get("/videos", handler.likedVideos)

	return router
}

/*
POST /api/v1/likes/toggle/{v|c|t}/{id}.

Response:
  - 200: ToggleResult: isLiked after the toggle
  - 400: VALIDATION_ERROR: Invalid identifier
  - 404: NOT_FOUND: Target missing
*/
func (handler *Handler) toggle(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		userID, err := requestutil.RequiredUserID(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		result, err := handler.service.Toggle(request.Context(), kind, requestutil.ID(request, kind.Field()), userID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		message := kind.Entity() + " unliked"
		if result.IsLiked {
			message = kind.Entity() + " liked"
		}
		respond.OK(writer, result, message)
	}
}

/*
GET /api/v1/likes/videos.

Response:
  - 200: []LikedVideo: Paginated, newest like first
*/
func (handler *Handler) likedVideos(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	liked, total, err := handler.service.LikedVideos(request.Context(), userID, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, liked, pagination.NewMeta(paginationParams, total), "Liked videos fetched")
}
