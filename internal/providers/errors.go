package providers

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// HTTPError is returned by REST providers when the upstream API answers with
// a non-200 status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("received non-200 status code: %d - %s", e.StatusCode, e.Body)
}

// UserMessage maps a provider error to a message suitable for the final
// report. Each transport status class gets a distinct, actionable message;
// anything unrecognized falls back to the raw error text.
func UserMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "recognition timed out, please try again"
	}

	status := 0
	var gerr *googleapi.Error
	var herr *HTTPError
	switch {
	case errors.As(err, &gerr):
		status = gerr.Code
	case errors.As(err, &herr):
		status = herr.StatusCode
	}

	switch {
	case status == 429:
		return "the recognition service is rate limited, please try again shortly"
	case status == 401 || status == 403:
		return "the recognition service rejected the configured API credentials"
	case status >= 500:
		return "the recognition service is currently unavailable"
	case status != 0:
		return fmt.Sprintf("the recognition service returned an unexpected status %d", status)
	default:
		return "recognition failed: " + err.Error()
	}
}
