package com

import (
	"errors"
	"fmt"
)

// Status is a numeric result code in the HRESULT convention.
// Zero means success; negative values are failures.
type Status int32

// Status codes returned across the C boundary.
const (
	StatusOK          Status = 0
	StatusFail        Status = -2147467259 // 0x80004005
	StatusNoInterface Status = -2147467262 // 0x80004002
	StatusPointer     Status = -2147467261 // 0x80004003
	StatusInvalidArg  Status = -2147024809 // 0x80070057
)

// Failed reports whether s is a failure code.
func (s Status) Failed() bool { return s < 0 }

// String returns the symbolic name of well-known codes and the hex form
// otherwise.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "S_OK"
	case StatusFail:
		return "E_FAIL"
	case StatusNoInterface:
		return "E_NOINTERFACE"
	case StatusPointer:
		return "E_POINTER"
	case StatusInvalidArg:
		return "E_INVALIDARG"
	}
	return fmt.Sprintf("0x%08X", uint32(s))
}

// Common errors. Each maps onto one Status.
var (
	// ErrNoInterface is returned when an object does not implement the
	// queried capability. It is a normal negative result, not a fault.
	ErrNoInterface = &StatusError{Status: StatusNoInterface, Msg: "com: no such interface"}

	// ErrInvalidArg is returned for nil or type-incompatible arguments.
	ErrInvalidArg = &StatusError{Status: StatusInvalidArg, Msg: "com: invalid argument"}

	// ErrPointer is returned when a required output or receiver is nil.
	ErrPointer = &StatusError{Status: StatusPointer, Msg: "com: invalid pointer"}

	// ErrFail is the generic construction failure.
	ErrFail = &StatusError{Status: StatusFail, Msg: "com: unspecified failure"}
)

// StatusError is an error carrying a Status.
type StatusError struct {
	Status Status
	Msg    string
}

func (e *StatusError) Error() string {
	return e.Msg
}

// Is matches any StatusError with the same code, so wrapped copies created
// by other packages still satisfy errors.Is(err, com.ErrInvalidArg).
func (e *StatusError) Is(target error) bool {
	var se *StatusError
	if !errors.As(target, &se) {
		return false
	}
	return se.Status == e.Status
}

// StatusOf maps err onto a Status.
// A nil error is StatusOK; errors without a StatusError in their chain
// are StatusFail.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return StatusFail
}

// NewError returns an error with the given status and message.
func NewError(s Status, msg string) error {
	return &StatusError{Status: s, Msg: msg}
}
