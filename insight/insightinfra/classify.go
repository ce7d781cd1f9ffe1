package insightinfra

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/siftworks/talentsift/insight"
)

// categoryFromStatus maps an HTTP response status to a call category
func categoryFromStatus(status int) insight.CallCategory {
	switch {
	case status == http.StatusUnauthorized:
		return insight.CategoryUnauthorized
	case status == http.StatusForbidden:
		return insight.CategoryForbidden
	case status == http.StatusNotFound:
		return insight.CategoryNotFound
	case status == http.StatusBadRequest:
		return insight.CategoryBadRequest
	case status == http.StatusTooManyRequests:
		return insight.CategoryRateLimited
	case status >= 500:
		return insight.CategoryServerUnavailable
	default:
		return insight.CategoryUnknown
	}
}

// statusError builds a categorized error for a non-2xx response
func statusError(status int, message string) *insight.CallError {
	return &insight.CallError{
		Category:   categoryFromStatus(status),
		StatusCode: status,
		Message:    message,
	}
}

// transportError classifies a failure that never produced a response:
// deadline expiry becomes a timeout, everything else is network trouble.
func transportError(err error) *insight.CallError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &insight.CallError{
			Category: insight.CategoryTimeout,
			Message:  "request timed out",
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &insight.CallError{
			Category: insight.CategoryTimeout,
			Message:  err.Error(),
		}
	}

	return &insight.CallError{
		Category: insight.CategoryNetworkUnreachable,
		Message:  err.Error(),
	}
}
