// Package error defines domain-specific errors for the Marketing Manager application.
package error

import (
	"errors"
	"fmt"
)

// PlatformErrorKind classifies connector failures. Unlike the metrics
// engine, connector errors propagate to the caller: retry policy is the
// caller's decision.
type PlatformErrorKind string

const (
	// PlatformErrorAuth means the credentials were rejected and a single
	// refresh-and-retry cycle did not recover them.
	PlatformErrorAuth PlatformErrorKind = "auth"

	// PlatformErrorUpstream means the platform answered with a non-2xx
	// status that is not credential-related.
	PlatformErrorUpstream PlatformErrorKind = "upstream"

	// PlatformErrorNetwork means the request never completed (timeout,
	// connection failure).
	PlatformErrorNetwork PlatformErrorKind = "network"
)

// PlatformError represents a platform-connector failure.
type PlatformError struct {
	Kind       PlatformErrorKind
	Platform   string
	StatusCode int // Zero for network errors
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Platform, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Platform, e.Message)
}

// Unwrap returns the underlying error.
func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewPlatformError creates a new PlatformError.
func NewPlatformError(kind PlatformErrorKind, platform string, statusCode int, message string, err error) *PlatformError {
	return &PlatformError{
		Kind:       kind,
		Platform:   platform,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// IsPlatformAuthError reports whether err is a credential failure from a connector.
func IsPlatformAuthError(err error) bool {
	var pe *PlatformError
	return errors.As(err, &pe) && pe.Kind == PlatformErrorAuth
}

// IsPlatformNetworkError reports whether err is a transport failure from a connector.
func IsPlatformNetworkError(err error) bool {
	var pe *PlatformError
	return errors.As(err, &pe) && pe.Kind == PlatformErrorNetwork
}
