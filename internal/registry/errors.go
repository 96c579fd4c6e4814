package registry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Category classifies why a registry request produced no data.
type Category string

const (
	CategoryTimeout          Category = "timeout"
	CategoryNotFound         Category = "not_found"
	CategoryRateLimited      Category = "rate_limited"
	CategoryOutage           Category = "provider_outage"
	CategoryUnexpectedStatus Category = "unexpected_status"
	CategoryBadRequest       Category = "bad_request"
	CategoryCanceled         Category = "canceled"
	CategoryTooLarge         Category = "response_too_large"
)

// FetchError reports a transport-level failure of one registry request.
type FetchError struct {
	Category Category
	URL      string
	Status   int
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("registry request %s [%s]: status %d", e.URL, e.Category, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("registry request %s [%s]: %v", e.URL, e.Category, e.Err)
	default:
		return fmt.Sprintf("registry request %s [%s]", e.URL, e.Category)
	}
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// CategoryOf returns the category of a FetchError anywhere in err's chain,
// or "" when err is not a fetch failure.
func CategoryOf(err error) Category {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Category
	}
	return ""
}

// statusCategory maps a non-2xx status code onto a category.
func statusCategory(status int) Category {
	switch {
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusTooManyRequests:
		return CategoryRateLimited
	case status >= 500:
		return CategoryOutage
	default:
		return CategoryUnexpectedStatus
	}
}

// errorCategory maps a client error onto a category.
func errorCategory(err error) Category {
	if errors.Is(err, context.Canceled) {
		return CategoryCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}
	return CategoryOutage
}
