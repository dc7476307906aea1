// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Envelope
//
// Every response body, success or error, carries the HTTP status code next
// to the payload:
//
//	{"statusCode": 200, "data": {...}, "message": "Video fetched", "meta": {...}}
//	{"statusCode": 404, "message": "Video not found", "code": "NOT_FOUND"}
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// SuccessEnvelope is the JSON envelope for successful responses.
type SuccessEnvelope struct {
	StatusCode int              `json:"statusCode"`
	Data       any              `json:"data"`
	Message    string           `json:"message"`
	Meta       *pagination.Meta `json:"meta,omitempty"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Code       string              `json:"code"`
	Details    []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 response with data wrapped in the success envelope.
func OK(writer http.ResponseWriter, data any, message string) {
	JSON(writer, http.StatusOK, SuccessEnvelope{StatusCode: http.StatusOK, Data: data, Message: message})
}

// Created writes a 201 response with data wrapped in the success envelope.
func Created(writer http.ResponseWriter, data any, message string) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{StatusCode: http.StatusCreated, Data: data, Message: message})
}

// Paginated writes a 200 response with a list and its pagination metadata.
func Paginated(writer http.ResponseWriter, data any, metadata pagination.Meta, message string) {
	JSON(writer, http.StatusOK, SuccessEnvelope{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
		Meta:       &metadata,
	})
}

// Error converts any Go error into the error envelope.
//
// Errors that are not [*apperr.AppError] become INTERNAL_ERROR. Every 5xx is
// logged with its cause through the per-request logger.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		StatusCode: appError.HTTPStatus,
		Message:    appError.Message,
		Code:       appError.Code,
		Details:    appError.Details,
	})
}
