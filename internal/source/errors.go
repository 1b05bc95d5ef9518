package source

import (
	"context"
	"errors"
	"fmt"
)

// FailureKind classifies why a load failed.
type FailureKind string

// Load failure kinds.
const (
	FailureNetwork FailureKind = "network"
	FailureHTTP    FailureKind = "http"
	FailureParse   FailureKind = "parse"
	FailureTimeout FailureKind = "timeout"
)

// LoadError is the single failure signal a Source produces. Callers need not
// look past Kind and Error().
type LoadError struct {
	Err    error
	Kind   FailureKind
	Source string
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case FailureTimeout:
		return fmt.Sprintf("loading deals from %s timed out", e.Source)
	case FailureHTTP:
		return fmt.Sprintf("loading deals from %s failed: %v", e.Source, e.Err)
	case FailureParse:
		return fmt.Sprintf("deal data from %s is malformed: %v", e.Source, e.Err)
	default:
		return fmt.Sprintf("could not reach %s: %v", e.Source, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	Status     string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

// ParseError reports undecodable or invalid deal data.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Normalize folds any load error into a LoadError naming the source.
func Normalize(source string, err error) *LoadError {
	if err == nil {
		return nil
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr
	}

	kind := FailureNetwork
	var statusErr *HTTPStatusError
	var parseErr *ParseError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = FailureTimeout
	case errors.As(err, &statusErr):
		kind = FailureHTTP
	case errors.As(err, &parseErr):
		kind = FailureParse
	}

	return &LoadError{Kind: kind, Source: source, Err: err}
}

// Timeout builds the failure reported when a load outlives its deadline.
func Timeout(source string) *LoadError {
	return &LoadError{Kind: FailureTimeout, Source: source, Err: context.DeadlineExceeded}
}

// IsLoadError reports whether err is, or wraps, a LoadError.
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}
