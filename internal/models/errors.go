package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the pipeline stages.
var (
	ErrNetwork         = errors.New("network error")
	ErrExtractionCount = errors.New("unexpected product count")
	ErrNotFound        = errors.New("not found")
	ErrParse           = errors.New("parse error")
	ErrExternalAPI     = errors.New("external api error")
)

// CountError reports that extraction produced the wrong number of products.
type CountError struct {
	Found    int
	Expected int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("extraction failed: found %d products instead of %d", e.Found, e.Expected)
}

func (e *CountError) Is(target error) bool {
	return target == ErrExtractionCount
}

// APIError is a non-success response from an external service.
type APIError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Body)
}

func (e *APIError) Is(target error) bool {
	return target == ErrExternalAPI
}

// NetworkError wraps a transport failure so it matches both ErrNetwork and the cause.
func NetworkError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}
