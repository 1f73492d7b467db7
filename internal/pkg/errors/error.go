package xerrors

import (
	"errors"
	"fmt"
)

// The four failure categories every proxied route resolves into. Nothing
// from the upstream backend (stack traces, raw validation arrays) is allowed
// past these.
var (
	ErrAuthRequired = errors.New("authentication required")
	ErrUpstream     = errors.New("upstream rejected request")
	ErrTransport    = errors.New("backend unreachable")
	ErrValidation   = errors.New("invalid input")
)

// UpstreamError is a non-2xx response from the external backend with its
// status code preserved and a best-effort human message. It matches
// ErrUpstream under errors.Is; validation rejections additionally match
// ErrValidation.
type UpstreamError struct {
	StatusCode int
	Message    string
	Validation bool
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Is(target error) bool {
	if target == ErrUpstream {
		return true
	}
	return target == ErrValidation && e.Validation
}

// Upstream builds an UpstreamError for a plain backend rejection.
func Upstream(status int, message string) *UpstreamError {
	return &UpstreamError{StatusCode: status, Message: message}
}

// UpstreamValidation builds an UpstreamError for a structured validation
// rejection. The raw validation detail is deliberately not carried.
func UpstreamValidation(status int) *UpstreamError {
	return &UpstreamError{StatusCode: status, Message: ErrValidation.Error(), Validation: true}
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
