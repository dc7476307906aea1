// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/text"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// TokenProvider issues signed access tokens. [*sec.TokenService] satisfies it.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

// Service implements account and session use cases.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	tokens   TokenProvider
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(users UserRepository, sessions SessionRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{users: users, sessions: sessions, tokens: tokens, logger: logger}
}

// # Registration

// RegisterInput holds the data required to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Fullname string
	Avatar   string
}

/*
Register validates, hashes and persists a new account.

Username and email are case-folded so that uniqueness is case-insensitive.

Returns:
  - *User: Created entity
  - error: VALIDATION_ERROR, CONFLICT or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input.Username = text.Fold(input.Username)
	input.Email = text.Fold(input.Email)
	input.Fullname = text.Clean(input.Fullname)
	input.Avatar = text.Clean(input.Avatar)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, UsernameMinLen).
		MaxLen(FieldUsername, input.Username, UsernameMaxLen).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MinLen(FieldPassword, input.Password, PasswordMinLen).
		MaxLen(FieldPassword, input.Password, PasswordMaxLen).
		Required(FieldFullname, input.Fullname).
		MaxLen(FieldFullname, input.Fullname, FullnameMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		Fullname:     input.Fullname,
		Avatar:       input.Avatar,
		PasswordHash: hashedPassword,
	}

	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID))
	return user, nil
}

// # Sessions

// LoginSession is an issued token pair.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login verifies credentials and issues a token pair.

Unknown logins and wrong passwords return the same UNAUTHORIZED error.
*/
func (service *Service) Login(context context.Context, login, password string) (*LoginSession, error) {
	user, err := service.users.FindByLogin(context, text.Fold(login))
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.Unauthorized("Invalid login credentials")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issue(context, user)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))
	return session, nil
}

/*
Refresh redeems a refresh token and issues a new pair. The old token is
consumed even when issuing fails, so it can never be replayed.
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*LoginSession, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("Refresh token is required")
	}

	userID, err := service.sessions.Consume(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil, err
	}

	user, err := service.users.FindByID(context, userID)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.Unauthorized("Account no longer exists")
		}
		return nil, err
	}

	return service.issue(context, user)
}

// Logout revokes the refresh token. Unknown tokens are ignored.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := service.sessions.Delete(context, sec.HashToken(refreshToken)); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (service *Service) issue(context context.Context, user *User) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(user.ID, user.Username, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refreshToken, err := sec.GenerateSecureToken(constants.RefreshTokenBytes)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.sessions.Save(context, sec.HashToken(refreshToken), user.ID, constants.RefreshTokenTTL); err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_session_save_failed: %w", err))
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: time.Now().Add(constants.RefreshTokenTTL),
		User:                  user,
	}, nil
}

// # Lookup

// GetUser returns the account with the given id.
func (service *Service) GetUser(context context.Context, id string) (*User, error) {
	if err := validate.ID(FieldUserID, id); err != nil {
		return nil, err
	}
	return service.users.FindByID(context, id)
}

// GetProfile returns the public profile of the given user.
func (service *Service) GetProfile(context context.Context, id string) (*Profile, error) {
	user, err := service.GetUser(context, id)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}
