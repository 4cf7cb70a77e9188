package api

import (
	"errors"
	"fmt"
)

// HTTPError reports a non-2xx response from the backend.
type HTTPError struct {
	StatusCode int
	Method     string
	Path       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s %s)", e.StatusCode, e.Method, e.Path)
}

// StatusCode returns the status carried by an HTTPError anywhere in err's chain, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
