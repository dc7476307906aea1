// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/media"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for videos.
type Handler struct {
	service        *Service
	maxUploadBytes int64
}

// NewHandler constructs a new video [Handler]. maxUploadBytes caps a whole
// multipart request.
func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	return &Handler{service: service, maxUploadBytes: maxUploadBytes}
}

// Routes returns a [chi.Router] configured with video endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery
	router.Get("/", handler.listVideos)

	// ## Authenticated
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Post("/", handler.publishVideo)
		r.Patch("/toggle/publish/{videoId}", handler.togglePublish)
		r.Get("/{videoId}", handler.getVideo)
		r.Patch("/{videoId}", handler.updateVideo)
		r.Delete("/{videoId}", handler.deleteVideo)
	})

	return router
}

// # Video Endpoints

/*
GET /api/v1/videos.

Description: Lists published videos.

Request:
  - query: string (Matches title or description)
  - userId: string (Owner filter)
  - sortBy: createdAt | views | duration | title
  - sortType: asc | desc
  - page, limit: int

Response:
  - 200: []Video: Paginated list
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) listVideos(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	videos, total, err := handler.service.ListVideos(request.Context(), ListInput{
		Query:    requestutil.Query(request, FieldQuery),
		UserID:   requestutil.Query(request, FieldUserID),
		SortBy:   requestutil.Query(request, FieldSortBy),
		SortType: requestutil.Query(request, FieldSortType),
	}, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, videos, pagination.NewMeta(paginationParams, total), "Videos fetched")
}

/*
POST /api/v1/videos.

Description: Publishes a new video.

Request (multipart/form-data):
  - title, description: string
  - videoFile: file (mp4, mov, mkv, webm, avi)
  - thumbnail: file (jpg, jpeg, png, webp, gif)

Response:
  - 201: Video: Created object
  - 400: VALIDATION_ERROR
  - 413: PAYLOAD_TOO_LARGE
*/
func (handler *Handler) publishVideo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.ParseMultipart(writer, request, handler.maxUploadBytes); err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer request.MultipartForm.RemoveAll()

	videoFile, cleanupVideo, err := media.SpoolFormFile(request, FieldVideoFile)
	defer cleanupVideo()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	thumbnail, cleanupThumbnail, err := media.SpoolFormFile(request, FieldThumbnail)
	defer cleanupThumbnail()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	title, _ := requestutil.FormValue(request, FieldTitle)
	description, _ := requestutil.FormValue(request, FieldDescription)

	video, err := handler.service.Publish(request.Context(), PublishInput{
		OwnerID:     userID,
		Title:       title,
		Description: description,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, video, "Video published successfully")
}

/*
GET /api/v1/videos/{videoId}.

Description: Returns a video and counts one view.

Response:
  - 200: Video: With owner profile
  - 400: VALIDATION_ERROR: Invalid identifier
  - 403: FORBIDDEN: Unpublished video of another user
  - 404: NOT_FOUND
*/
func (handler *Handler) getVideo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.GetVideo(request.Context(), requestutil.ID(request, FieldVideoID), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, video, "Video fetched")
}

/*
PATCH /api/v1/videos/{videoId}.

Description: Partially updates an owned video. Absent fields are kept.

Request (multipart/form-data):
  - title: string (Must not be empty when present)
  - description: string
  - thumbnail: file (Replaces the current one)

Response:
  - 200: Video: Updated object
  - 403: FORBIDDEN: Not the owner
*/
func (handler *Handler) updateVideo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.ParseMultipart(writer, request, handler.maxUploadBytes); err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer request.MultipartForm.RemoveAll()

	thumbnail, cleanup, err := media.SpoolFormFile(request, FieldThumbnail)
	defer cleanup()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.UpdateVideo(request.Context(), requestutil.ID(request, FieldVideoID), userID, UpdateInput{
		Title:       requestutil.OptionalFormValue(request, FieldTitle),
		Description: requestutil.OptionalFormValue(request, FieldDescription),
		Thumbnail:   thumbnail,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, video, "Video updated successfully")
}

/*
DELETE /api/v1/videos/{videoId}.

Response:
  - 200: Empty object
  - 403: FORBIDDEN: Not the owner
  - 404: NOT_FOUND
*/
func (handler *Handler) deleteVideo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVideo(request.Context(), requestutil.ID(request, FieldVideoID), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{}, "Video deleted successfully")
}

/*
PATCH /api/v1/videos/toggle/publish/{videoId}.

Response:
  - 200: Video: With the flipped isPublished
  - 403: FORBIDDEN: Not the owner
*/
func (handler *Handler) togglePublish(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.TogglePublish(request.Context(), requestutil.ID(request, FieldVideoID), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, video, "Publish status toggled")
}
