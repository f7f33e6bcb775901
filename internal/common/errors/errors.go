// Package errors provides standardized error handling for the client.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Transport-level failures. Always recoverable by manual retry.
	ErrCodeTransport      ErrorCode = "TRANSPORT_ERROR"
	ErrCodeRequestTimeout ErrorCode = "REQUEST_TIMEOUT"

	// Backend replied but the reply is unusable or a rejection.
	ErrCodeServer            ErrorCode = "SERVER_ERROR"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"

	// Structured rejection naming an applicant field; routed into a
	// correction round rather than shown as a terminal failure.
	ErrCodeApplicationField ErrorCode = "APPLICATION_FIELD_ERROR"

	// Profile store failures.
	ErrCodeProfileLoadTimeout ErrorCode = "PROFILE_LOAD_TIMEOUT"
	ErrCodeProfileLoadFailed  ErrorCode = "PROFILE_LOAD_FAILED"
	ErrCodeProfileSaveFailed  ErrorCode = "PROFILE_SAVE_FAILED"

	ErrCodeResumeUploadFailed  ErrorCode = "RESUME_UPLOAD_FAILED"
	ErrCodeSessionStateInvalid ErrorCode = "SESSION_STATE_INVALID"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewTransportError creates a retryable network-level error.
func NewTransportError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransport,
		Message:   "Network request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestTimeoutError creates a retryable timeout error.
func NewRequestTimeoutError(endpoint string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestTimeout,
		Message:   "Request timed out. Please check your internet connection.",
		Details:   fmt.Sprintf("endpoint: %s", endpoint),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewServerError creates a non-retryable error carrying the backend's
// message verbatim.
func NewServerError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeServer,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedResponseError creates an error for a 2xx response whose
// body could not be decoded or fails its schema.
func NewMalformedResponseError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedResponse,
		Message:   "Invalid response from server. Please try again.",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicationFieldError creates an error for a structured rejection
// that names an applicant field.
func NewApplicationFieldError(fieldName, errorType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicationField,
		Message:   "Application rejected pending a field correction",
		Details:   fmt.Sprintf("field: %s, type: %s", fieldName, errorType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileLoadTimeoutError creates the timeout-specific profile load
// failure surfaced when falling back to the default profile.
func NewProfileLoadTimeoutError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileLoadTimeout,
		Message:   "Request timed out. Please check your internet connection.",
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileLoadFailedError creates a retryable profile load error.
func NewProfileLoadFailedError(userID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileLoadFailed,
		Message:   fmt.Sprintf("Network error: %s", err.Error()),
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileSaveFailedError creates a retryable profile persistence
// error. The in-memory profile keeps the optimistic value.
func NewProfileSaveFailedError(userID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileSaveFailed,
		Message:   "Failed to save profile",
		Details:   fmt.Sprintf("userId: %s, error: %s", userID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResumeUploadFailedError creates an upload error. The caller keeps
// its previous resume reference untouched.
func NewResumeUploadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResumeUploadFailed,
		Message:   "Resume upload failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStateInvalidError creates an error for an operation that is
// not legal in the session's current state.
func NewSessionStateInvalidError(state, op string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStateInvalid,
		Message:   fmt.Sprintf("Operation %q is not allowed in state %q", op, state),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err is a StandardError marked retryable.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}

// IsCode reports whether err is a StandardError with the given code.
func IsCode(err error, code ErrorCode) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Code == code
}
