package nomad

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = http.StatusText(e.Code)
	}

	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Code, body)
}

// StatusCode returns the HTTP status of the response.
func (e *APIError) StatusCode() int {
	return e.Code
}

// IsParseError reports whether err is the scheduler rejecting a job
// specification as malformed.
func IsParseError(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest
}
