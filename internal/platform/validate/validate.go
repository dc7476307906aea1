// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides identifier checks and a chainable Validator that
// collects field-level errors before returning a single [apperr.AppError].
//
// Services call it before touching storage, so malformed input never reaches
// a repository.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// # Identifiers

// IsID reports whether value is a well-formed entity identifier.
func IsID(value string) bool {
	return uuid.Valid(value)
}

// ID returns a VALIDATION_ERROR naming field when value is not a well-formed
// identifier, and nil otherwise.
func ID(field, value string) error {
	if IsID(value) {
		return nil
	}
	return apperr.ValidationError("Invalid "+field, apperr.FieldError{
		Field:   field,
		Message: "Must be a valid identifier",
	})
}

// # Validator

// Validator collects field-level validation errors via a fluent API.
//
// Validator is not safe for concurrent use. Create one per operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// NotBlank fails if value is present (non-nil) but empty after trimming.
// A nil value passes: absence is handled by the caller.
func (v *Validator) NotBlank(field string, value *string) *Validator {
	if value != nil && strings.TrimSpace(*value) == "" {
		v.add(field, "Must not be empty")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max. Bytes that are
// not valid UTF-8 fail as well, since PostgreSQL rejects them on write.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if !utf8.ValidString(value) {
		v.add(field, "Must be valid UTF-8 text")
		return v
	}
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// ID fails if value is not a well-formed identifier.
func (v *Validator) ID(field, value string) *Validator {
	if !IsID(value) {
		v.add(field, "Must be a valid identifier")
	}
	return v
}

// OneOf fails if the value is not in the allowed set.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if failed is true.
//
//	v.Custom("videoFile", header == nil, "Video file is required")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a VALIDATION_ERROR if any rule failed, or nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
