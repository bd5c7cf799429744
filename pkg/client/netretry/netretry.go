// Package netretry classifies errors from the scheduler API as transient or
// permanent.
package netretry

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// StatusCoder is implemented by errors that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// transientStatuses are the statuses a later identical request may not get.
//
//nolint:gochecknoglobals // fixed lookup table
var transientStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// textPatterns catch transport failures that reach us only as text.
//
//nolint:gochecknoglobals // fixed lookup table
var textPatterns = []string{
	"connection reset by peer",
	"connection refused",
	"i/o timeout",
	"TLS handshake timeout",
	"no such host",
}

// IsRetryable reports whether err is worth retrying: a transient HTTP status,
// a network timeout, a refused or reset connection, or a truncated response.
// Context cancellation is never retryable.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var coder StatusCoder
	if errors.As(err, &coder) {
		return transientStatuses[coder.StatusCode()]
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	msg := err.Error()
	for _, pattern := range textPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}
