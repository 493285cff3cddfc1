package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidState matches every *InvalidStateError with errors.Is.
var ErrInvalidState = errors.New("invalid state")

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// NilArgumentError is used as a panic value by constructors that got a nil
// collaborator.
type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}
