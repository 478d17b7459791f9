// Package apperror defines the error taxonomy shared by services and
// handlers: invalid argument, not found, insufficient stock, and
// storage failure. Handlers map these to HTTP status classes.
package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Use errors.Is against these to classify an error;
// the user-visible message lives on the wrapping Error.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrStorage         = errors.New("storage failure")
)

// Error carries a user-visible message and unwraps to one of the
// sentinel kinds above.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Invalid builds an ErrInvalidArgument with the given message.
func Invalid(msg string) error {
	return &Error{kind: ErrInvalidArgument, msg: msg}
}

// NotFound builds an ErrNotFound with the given message.
func NotFound(msg string) error {
	return &Error{kind: ErrNotFound, msg: msg}
}

// Storage wraps an underlying storage error. The cause is surfaced in
// the message for diagnosability; fine for an internal tool.
func Storage(op string, cause error) error {
	return &Error{kind: ErrStorage, msg: fmt.Sprintf("Error %s: %v", op, cause)}
}

// InsufficientStockError is returned when a sale asks for more units
// than are on hand. Available is the stock observed at decision time.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Available: %d", e.Available)
}
