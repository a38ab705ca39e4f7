package models

import (
	"errors"
	"fmt"
)

// ErrorCode classifies pipeline failures for API clients
type ErrorCode string

const (
	// ErrValidation means the caller must correct the input
	ErrValidation ErrorCode = "validation_error"
	// ErrFetch means an external URL was unreachable or returned a bad status
	ErrFetch ErrorCode = "fetch_error"
	// ErrUpstream means the AI oracle was unavailable, rate-limited, or timed out
	ErrUpstream ErrorCode = "upstream_error"
	// ErrParse means the oracle reply was not in the expected structured shape
	ErrParse ErrorCode = "parse_error"
	// ErrNotFound means an unknown file_id was referenced
	ErrNotFound ErrorCode = "not_found"
)

// AppError is a classified pipeline error
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports invalid caller input
func NewValidationError(format string, args ...any) *AppError {
	return &AppError{Code: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NewFetchError wraps an unreachable-URL failure
func NewFetchError(message string, err error) *AppError {
	return &AppError{Code: ErrFetch, Message: message, Err: err}
}

// NewUpstreamError wraps an AI oracle failure
func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Code: ErrUpstream, Message: message, Err: err}
}

// NewParseError wraps a malformed oracle reply
func NewParseError(message string, err error) *AppError {
	return &AppError{Code: ErrParse, Message: message, Err: err}
}

// NewNotFoundError reports an unknown identifier
func NewNotFoundError(format string, args ...any) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the error code from err, defaulting to upstream_error
// for unclassified failures
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrUpstream
}
