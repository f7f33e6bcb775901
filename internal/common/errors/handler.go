// internal/common/errors/handler.go
package errors

import (
	"context"
	"errors"
	"net"
	"time"
)

// Logger is the minimal logging surface the handler needs.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// Handler normalizes arbitrary errors at the coordinator boundary so
// nothing untyped ever reaches the presentation layer.
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Normalize ensures we always have a StandardError. Context deadline
// and net timeouts become REQUEST_TIMEOUT; other transport-looking
// failures become TRANSPORT_ERROR.
func (h *Handler) Normalize(err error, endpoint string) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewRequestTimeoutError(endpoint)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewRequestTimeoutError(endpoint)
	}

	return &StandardError{
		Code:      ErrCodeTransport,
		Message:   "Network request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Report normalizes and logs an error, returning the normalized form.
func (h *Handler) Report(err error, endpoint string) *StandardError {
	stdErr := h.Normalize(err, endpoint)
	h.logger.Error("request failed", map[string]interface{}{
		"endpoint":  endpoint,
		"code":      string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})
	return stdErr
}
