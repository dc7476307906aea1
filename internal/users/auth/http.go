// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

// Handler implements account and session HTTP endpoints.
type Handler struct {
	service      *Service
	secureCookie bool
}

// NewHandler constructs a new [Handler]. secureCookie marks the refresh
// cookie Secure (disable only for plain-HTTP development).
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{service: service, secureCookie: secureCookie}
}

// Routes returns the /users router.
//
// # Endpoints
//   - POST /register, /login, /refresh  : public.
//   - POST /logout, GET /me             : authenticated.
//   - GET  /{userId}                    : public profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
		r.Get("/me", handler.me)
	})

	router.Get("/{userId}", handler.profile)

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type sessionResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	User         *User  `json:"user"`
}

/*
POST /api/v1/users/register

Response:
  - 201: User
  - 400: VALIDATION_ERROR
  - 409: CONFLICT: Username or email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Fullname: input.Fullname,
		Avatar:   input.Avatar,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user, "User registered successfully")
}

/*
POST /api/v1/users/login

Response:
  - 200: sessionResponse, refresh token also set as an HttpOnly cookie
  - 401: UNAUTHORIZED: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Login, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.writeSession(writer, session, "User logged in successfully")
}

/*
POST /api/v1/users/refresh

Reads the refresh token from the cookie, falling back to the JSON body.

Response:
  - 200: sessionResponse with a rotated refresh token
  - 401: UNAUTHORIZED
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	token := refreshTokenFromCookie(request)
	if token == "" {
		var input refreshRequest
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
		token = input.RefreshToken
	}

	session, err := handler.service.Refresh(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.writeSession(writer, session, "Access token refreshed")
}

/*
POST /api/v1/users/logout

Response:
  - 200: refresh session revoked and cookie cleared
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Logout(request.Context(), refreshTokenFromCookie(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, "", time.Unix(0, 0))
	respond.OK(writer, map[string]any{}, "User logged out")
}

/*
GET /api/v1/users/me

Response:
  - 200: User
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user, "Current user fetched")
}

/*
GET /api/v1/users/{userId}

Response:
  - 200: Profile
  - 400: VALIDATION_ERROR: Malformed id
  - 404: NOT_FOUND
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.GetProfile(request.Context(), requestutil.ID(request, "userId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile, "User profile fetched")
}

// # Cookie Helpers

func (handler *Handler) writeSession(writer http.ResponseWriter, session *LoginSession, message string) {
	handler.setRefreshCookie(writer, session.RefreshToken, session.RefreshTokenExpiresAt)
	respond.OK(writer, sessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(constants.AccessTokenTTL.Seconds()),
		User:         session.User,
	}, message)
}

func (handler *Handler) setRefreshCookie(writer http.ResponseWriter, value string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    value,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  expires,
		HttpOnly: true,
		Secure:   handler.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(writer, cookie)
}

func refreshTokenFromCookie(request *http.Request) string {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
