/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package errors defines the coded errors raised while building and emitting
// flot pages.
//
// Two classes of failure exist.  Programmer errors, such as invoking a
// points-only option on a lines series or mutating a plot after its page was
// sealed, are contract violations: builders panic with an *Error carrying one
// of the programmer-error codes, and callers are not expected to recover.
// I/O errors, raised while writing a rendered document, are returned as
// *Error values wrapping the underlying cause with ErrCodeIO.
//
//	if errors.Is(err, errors.ErrCodeIO) {
//	  // the document could not be written
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

// Programmer-error codes.
const (
	// ErrCodeKindMismatch marks a kind-specific series option applied to a
	// series of another kind.
	ErrCodeKindMismatch Code = "KIND_MISMATCH"
	// ErrCodeNoMarking marks a per-marking option applied before any marking
	// was added.
	ErrCodeNoMarking Code = "NO_MARKING"
	// ErrCodeSealed marks use of a page, plot or series after its page was
	// sealed.
	ErrCodeSealed Code = "SEALED"
	// ErrCodePathConflict marks a configuration tree write through a node of
	// the wrong type.
	ErrCodePathConflict Code = "PATH_CONFLICT"
	// ErrCodeNoElement marks a read of the last element of an empty or
	// missing array.
	ErrCodeNoElement Code = "NO_ELEMENT"
)

// Runtime error codes.
const (
	ErrCodeInvalidValue  Code = "INVALID_VALUE"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeIO            Code = "IO_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns a new Error with the given code wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err, or any error it wraps, is an *Error with the given
// code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "" if there
// is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Recovered converts a value recovered from a builder panic back into an
// error.  Values that are not errors are formatted into an
// ErrCodeInvalidInput error; nil yields nil.
func Recovered(r any) error {
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return New(ErrCodeInvalidInput, "%v", v)
	}
}
