// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil extracts typed data from HTTP requests: URL parameters,
JSON bodies, multipart form fields and the authenticated identity.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/validate"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

/*
DecodeJSON reads the request body and decodes it into target.

An empty body decodes to the zero value so that partial updates with no
fields are accepted.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID retrieves a named URL parameter from the request.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Query returns a single query-string value.
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
FormValue returns a multipart or urlencoded field and whether the key was
present at all. ParseMultipartForm must have run first.
*/
func FormValue(request *http.Request, name string) (string, bool) {
	if request.MultipartForm != nil {
		if values, ok := request.MultipartForm.Value[name]; ok {
			if len(values) == 0 {
				return "", true
			}
			return values[0], true
		}
	}
	if values, ok := request.PostForm[name]; ok {
		if len(values) == 0 {
			return "", true
		}
		return values[0], true
	}
	return "", false
}

// OptionalFormValue is [FormValue] as a pointer: nil when the key is absent.
func OptionalFormValue(request *http.Request, name string) *string {
	value, present := FormValue(request, name)
	if !present {
		return nil
	}
	return &value
}

/*
RequiredUserID returns the id of the currently authenticated user.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return "", apperr.Unauthorized("Authentication required")
	}
	return claims.UserID, nil
}

// multipartMemory is the in-memory share of a parsed multipart body; larger
// parts spill to temporary files.
const multipartMemory = 32 << 20

/*
ParseMultipart parses a multipart/form-data body of at most maxBytes.

Callers must defer request.MultipartForm.RemoveAll() once it succeeds.

Returns:
  - error: PAYLOAD_TOO_LARGE over the limit, VALIDATION_ERROR for malformed bodies
*/
func ParseMultipart(writer http.ResponseWriter, request *http.Request, maxBytes int64) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBytes)
	if err := request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.PayloadTooLarge("Upload exceeds the size limit")
		}
		return apperr.ValidationError("Invalid multipart form").WithCause(err)
	}
	return nil
}
