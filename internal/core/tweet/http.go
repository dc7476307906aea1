// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// Handler implements the HTTP layer for tweets.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tweet [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /tweets router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTweets)
	router.Get("/{tweetId}", handler.getTweet)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.createTweet)
		r.Patch("/{tweetId}", handler.updateTweet)
		r.Delete("/{tweetId}", handler.deleteTweet)
	})

	return router
}

type contentRequest struct {
	Content *string `json:"content"`
}

/*
GET /api/v1/tweets.

Request:
  - userId: string (Owner filter)
  - page, limit: int

Response:
  - 200: []Tweet: Paginated, newest first
*/
func (handler *Handler) listTweets(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	tweets, total, err := handler.service.ListTweets(request.Context(), requestutil.Query(request, FieldUserID), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tweets, pagination.NewMeta(paginationParams, total), "Tweets fetched")
}

// GET /api/v1/tweets/{tweetId}.
func (handler *Handler) getTweet(writer http.ResponseWriter, request *http.Request) {
	tweet, err := handler.service.GetTweet(request.Context(), requestutil.ID(request, FieldTweetID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tweet, "Tweet fetched")
}

/*
POST /api/v1/tweets.

Request (Body):
  - content: string

Response:
  - 201: Tweet: Created object
*/
func (handler *Handler) createTweet(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input contentRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	content := ""
	if input.Content != nil {
		content = *input.Content
	}

	tweet, err := handler.service.CreateTweet(request.Context(), userID, content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, tweet, "Tweet created")
}

// PATCH /api/v1/tweets/{tweetId}.
func (handler *Handler) updateTweet(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input contentRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tweet, err := handler.service.UpdateTweet(request.Context(), requestutil.ID(request, FieldTweetID), userID, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tweet, "Tweet updated successfully")
}

// DELETE /api/v1/tweets/{tweetId}.
func (handler *Handler) deleteTweet(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTweet(request.Context(), requestutil.ID(request, FieldTweetID), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{}, "Tweet deleted successfully")
}
