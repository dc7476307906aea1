// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// Handler implements the HTTP layer for comments.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /comments router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{videoId}", handler.listComments)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/{videoId}", handler.addComment)
		r.Patch("/c/{commentId}", handler.updateComment)
		r.Delete("/c/{commentId}", handler.deleteComment)
	})

	return router
}

type contentRequest struct {
	Content *string `json:"content"`
}

/*
GET /api/v1/comments/{videoId}.

Response:
  - 200: []Comment: Paginated, newest first, with owner profile
  - 400: VALIDATION_ERROR: Invalid identifier
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	comments, total, err := handler.service.ListComments(request.Context(), requestutil.ID(request, FieldVideoID), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comments, pagination.NewMeta(paginationParams, total), "Comments fetched")
}

/*
POST /api/v1/comments/{videoId}.

Request (Body):
  - content: string

Response:
  - 201: Comment: Created object
  - 404: NOT_FOUND: Video missing
*/
func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
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

	comment, err := handler.service.AddComment(request.Context(), requestutil.ID(request, FieldVideoID), userID, content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment, "Comment added")
}

/*
PATCH /api/v1/comments/c/{commentId}.

Response:
  - 200: Comment: Updated object
  - 403: FORBIDDEN: Not the owner
*/
func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
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

	comment, err := handler.service.UpdateComment(request.Context(), requestutil.ID(request, FieldCommentID), userID, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment, "Comment updated successfully")
}

/*
DELETE /api/v1/comments/c/{commentId}.

Response:
  - 200: Empty object
  - 403: FORBIDDEN: Not the owner
*/
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), requestutil.ID(request, FieldCommentID), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{}, "Comment deleted successfully")
}
