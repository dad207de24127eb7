// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package status

import "fmt"

// Status describes the outcome of an operation that can fail: either success
// or a specific failure identified by a code and a human-readable message.
// Statuses are small value types; they are compared with ==, copied freely,
// and never carry a payload. A Status also implements the error interface so
// it can be passed to code expecting plain errors.
type Status struct {
	code    Code
	message string
}

// OK returns the canonical success status.
func OK() Status {
	return Status{}
}

// New creates a failure status with the given code and message. Passing
// CodeOK produces the canonical success status, ignoring the message.
func New(code Code, message string) Status {
	if code == CodeOK {
		return Status{}
	}
	return Status{code: code, message: message}
}

// Newf is like New with the message produced by the given format specifier.
func Newf(code Code, format string, args ...any) Status {
	return New(code, fmt.Sprintf(format, args...))
}

// IsOk returns true if the status represents success.
func (s Status) IsOk() bool {
	return s.code == CodeOK
}

// Code returns the error code of the status, CodeOK for success.
func (s Status) Code() Code {
	return s.code
}

// Message returns the human-readable description of the failure. It is empty
// for the success status.
func (s Status) Message() string {
	return s.message
}

func (s Status) String() string {
	if s.IsOk() {
		return "OK"
	}
	return fmt.Sprintf("%s: %s", s.code, s.message)
}

// Error makes Status usable as an error value.
func (s Status) Error() string {
	return s.String()
}
