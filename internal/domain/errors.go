package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers match these with errors.Is to pick a status code.
var (
	ErrInvalidInput               = errors.New("invalid_input")
	ErrIncompleteSnapshot         = errors.New("incomplete_snapshot")
	ErrUpstreamUnavailable        = errors.New("upstream_unavailable")
	ErrCapacityInvariantViolation = errors.New("capacity_invariant_violation")
)

// Error is a structured failure: a kind from the taxonomy above plus a
// human-readable message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func (e *Error) Unwrap() error { return e.Kind }

func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
