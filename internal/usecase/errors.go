package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/royale-stats/internal/normalize"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrUpstream              = errors.New("upstream api error")
	ErrPersistence           = errors.New("persistence failure")
	ErrMalformedData         = normalize.ErrMalformedData
)

// UpstreamError is a non-2xx answer from the game API.
type UpstreamError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *UpstreamError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	if e.Message == "" {
		return fmt.Sprintf("upstream status=%d reason=%s", e.StatusCode, reason)
	}
	return fmt.Sprintf("upstream status=%d reason=%s: %s", e.StatusCode, reason, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
