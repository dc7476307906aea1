// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// Handler implements the HTTP layer for playlists.
type Handler struct {
	service *Service
}

// NewHandler constructs a new playlist [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /playlists router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public
	router.Get("/user/{userId}", handler.listUserPlaylists)
	router.Get("/{playlistId}", handler.getPlaylist)

	// ## Owner
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.createPlaylist)
		r.Patch("/{playlistId}", handler.updatePlaylist)
		r.Delete("/{playlistId}", handler.deletePlaylist)
		r.Post("/{playlistId}/videos/{videoId}", handler.addVideo)
		r.Delete("/{playlistId}/videos/{videoId}", handler.removeVideo)
	})

	return router
}

type playlistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

/*
POST /api/v1/playlists.

Request (Body):
  - name: string
  - description: string (Optional)

Response:
  - 201: Playlist: Created, empty
*/
func (handler *Handler) createPlaylist(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input playlistRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var name, description string
	if input.Name != nil {
		name = *input.Name
	}
	if input.Description != nil {
		description = *input.Description
	}

	playlist, err := handler.service.CreatePlaylist(request.Context(), userID, name, description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, playlist, "Playlist created")
}

// GET /api/v1/playlists/user/{userId}.
func (handler *Handler) listUserPlaylists(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	playlists, total, err := handler.service.ListUserPlaylists(request.Context(), requestutil.ID(request, FieldUserID), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, playlists, pagination.NewMeta(paginationParams, total), "Playlists fetched")
}

/*
GET /api/v1/playlists/{playlistId}.

Response:
  - 200: Playlist: With videoItems in playlist order
  - 404: NOT_FOUND
*/
func (handler *Handler) getPlaylist(writer http.ResponseWriter, request *http.Request) {
	playlist, err := handler.service.GetPlaylist(request.Context(),
		requestutil.ID(request, FieldPlaylistID), ctxutil.GetUserID(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Playlist fetched")
}

// PATCH /api/v1/playlists/{playlistId}.
func (handler *Handler) updatePlaylist(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input playlistRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.UpdatePlaylist(request.Context(), requestutil.ID(request, FieldPlaylistID), userID,
		UpdateInput{Name: input.Name, Description: input.Description})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Playlist updated successfully")
}

// DELETE /api/v1/playlists/{playlistId}.
func (handler *Handler) deletePlaylist(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePlaylist(request.Context(), requestutil.ID(request, FieldPlaylistID), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{}, "Playlist deleted successfully")
}

/*
POST /api/v1/playlists/{playlistId}/videos/{videoId}.

Response:
  - 200: Playlist: videos holds the added video exactly once
  - 403: FORBIDDEN: Not the owner
  - 404: NOT_FOUND: Playlist or video missing
*/
func (handler *Handler) addVideo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.AddVideo(request.Context(),
		requestutil.ID(request, FieldPlaylistID), requestutil.ID(request, FieldVideoID), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Video added to playlist")
}

// DELETE /api/v1/playlists/{playlistId}/videos/{videoId}.
func (handler *Handler) removeVideo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.RemoveVideo(request.Context(),
		requestutil.ID(request, FieldPlaylistID), requestutil.ID(request, FieldVideoID), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Video removed from playlist")
}
