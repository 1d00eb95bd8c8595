// Package errs defines the typed failures shared by the CLI, the
// configuration layer and the pipeline, split into two classes: errors
// the user can fix (bad expression, bad flag) and errors the
// environment caused (unreadable config, I/O). Each class maps to a
// process exit status following BSD sysexits.
package errs

import (
	"errors"
	"fmt"
)

// Exit statuses, per sysexits(3).
const (
	ExitUsage  = 64
	ExitIO     = 74
	ExitConfig = 78
)

// Code identifies a failure variant.
type Code int

const (
	// User-input class.
	InvalidDateFormat Code = iota + 1
	UnsupportedFormat
	UnsupportedTimezone
	InvalidNow
	MissingArgument

	// System class.
	Config
	IO
)

func (c Code) label() string {
	switch c {
	case InvalidDateFormat:
		return "Invalid date format"
	case UnsupportedFormat:
		return "Unsupported format"
	case UnsupportedTimezone:
		return "Unsupported timezone"
	case InvalidNow:
		return "Invalid 'now' argument"
	case MissingArgument:
		return "Missing required argument"
	case Config:
		return "Configuration error"
	case IO:
		return "IO error"
	}
	return "Error"
}

// Error is a failure tagged with a Code.
type Error struct {
	Code  Code
	msg   string
	cause error
}

func (e *Error) Error() string {
	return e.Code.label() + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// UserInput reports whether the user can fix this failure themselves.
func (e *Error) UserInput() bool {
	return e.Code < Config
}

// UserInputf builds a user-input failure.
func UserInputf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...)}
}

// Systemf builds a system failure.
func Systemf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrapf builds a failure that keeps err reachable via errors.Unwrap.
func Wrapf(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...), cause: err}
}

// IsUserInput reports whether err is a user-input failure.
func IsUserInput(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.UserInput()
}

// ExitCode maps err to a process exit status. Failures that do not
// carry a Code (cobra flag errors, mostly) count as usage errors.
func ExitCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return ExitUsage
	}
	switch e.Code {
	case Config:
		return ExitConfig
	case IO:
		return ExitIO
	default:
		return ExitUsage
	}
}
