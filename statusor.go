// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package statusor provides a container representing either a usable value
// or a status explaining why no value is present.
//
// A StatusOr object holds exactly one of two alternatives: a value of type T
// or a non-OK status.Status. It is intended as the return type of operations
// that can fail, replacing the value-plus-error pair where a single
// transportable outcome is needed, for instance in channels, futures, or
// containers.
//
// The state of a StatusOr is determined by calling IsOk or Status. A value
// may only be accessed after IsOk reported true; accessing the value of a
// failed container is a defect in the calling code and terminates the
// process rather than returning garbage. Sample usage:
//
//	res := store.Get(key)
//	if res.IsOk() {
//	    process(res.Value())
//	} else {
//	    log.Println(res.Status())
//	}
//
// Ownership of the contained value can be transferred out using Take or
// MoveFrom. A container whose value has been moved out is poisoned: it
// reports a failure with status.CodeInvalid so stale values cannot be read
// accidentally. Copying, in contrast, never modifies the source.
//
// StatusOr is not safe for concurrent use without external synchronization.
package statusor

import (
	"fmt"

	"github.com/0xsoniclabs/statusor/logging"
	"github.com/0xsoniclabs/statusor/status"
)

// fatalf reports a contract violation and terminates the current execution
// context. It is a variable to let the tests in this package intercept the
// abort; production code must not replace it.
var fatalf = func(format string, args ...any) {
	logging.Fatalf(format, args...)
	panic(fmt.Sprintf(format, args...)) // not reached with the default logger
}

// StatusOr is a container holding either a value of type T or a non-OK
// status. Exactly one of the two alternatives is live at any time. The zero
// struct is not a valid container; use one of the constructors below.
type StatusOr[T any] struct {
	value    T
	status   status.Status
	hasValue bool
}

// New creates a container holding no value and a generic unknown-error
// status. It signals "this was never explicitly set": a default value of an
// arbitrary T would be ambiguous, while the unknown-failure sentinel is
// always safe to produce.
func New[T any]() *StatusOr[T] {
	return &StatusOr[T]{status: status.New(status.CodeUnknown, "unknown error")}
}

// FromStatus creates a container holding the given non-OK status. All value
// accesses on the resulting container abort. Passing an OK status is a
// defect in the calling code and terminates the process: a success status
// carries no payload and cannot stand in for a value.
func FromStatus[T any](s status.Status) *StatusOr[T] {
	if s.IsOk() {
		fatalf("cannot create a StatusOr from an OK status")
	}
	return &StatusOr[T]{status: s}
}

// FromValue creates a container holding the given value. The resulting
// container reports an OK status.
func FromValue[T any](value T) *StatusOr[T] {
	return &StatusOr[T]{value: value, hasValue: true}
}

// IsOk returns true if the container holds a value. Only then is it safe to
// call Value, ValueRef, or Take.
func (r *StatusOr[T]) IsOk() bool {
	return r.hasValue
}

// Status returns the stored status, or an OK status if the container holds
// a value. The success status is synthesized on demand; it is not retained
// by the container.
func (r *StatusOr[T]) Status() status.Status {
	if r.hasValue {
		return status.OK()
	}
	return r.status
}

// Value returns the contained value. It must only be called after IsOk
// reported true; otherwise the call terminates the process.
func (r *StatusOr[T]) Value() T {
	if !r.hasValue {
		fatalf("object does not have a usable value")
	}
	return r.value
}

// ValueRef returns a pointer to the contained value for in-place
// modification. The same contract as for Value applies. The pointer is only
// valid until the container is re-assigned or consumed.
func (r *StatusOr[T]) ValueRef() *T {
	if !r.hasValue {
		fatalf("object does not have a usable value")
	}
	return &r.value
}

// Take moves the contained value out of the container. It must only be
// called after IsOk reported true; otherwise the call terminates the
// process. The container is poisoned afterwards: it holds a failure with
// status.CodeInvalid, so any further use without re-checking IsOk is caught.
func (r *StatusOr[T]) Take() T {
	if !r.hasValue {
		fatalf("object does not have a usable value")
	}
	res := r.value
	r.clear()
	return res
}

// Clone creates an independent copy of the container. The source keeps its
// alternative and payload.
func (r *StatusOr[T]) Clone() *StatusOr[T] {
	return &StatusOr[T]{value: r.value, status: r.status, hasValue: r.hasValue}
}

// CopyFrom replicates the other container's alternative and payload into
// this container. The source is unaffected. Copying a container onto itself
// is a no-op.
func (r *StatusOr[T]) CopyFrom(other *StatusOr[T]) {
	if r == other {
		return
	}
	if other.hasValue {
		r.assignValue(other.value)
	} else {
		r.assignStatus(other.status)
	}
}

// MoveFrom transfers the other container's payload into this container and
// poisons the source with the status.CodeInvalid sentinel. The source may
// have held a value that is now inaccessible; poisoning makes sure it is
// never mistaken for a container in its original state. Moving a container
// onto itself is a no-op and does not poison it.
func (r *StatusOr[T]) MoveFrom(other *StatusOr[T]) {
	if r == other {
		return
	}
	if other.hasValue {
		r.assignValue(other.value)
	} else {
		r.assignStatus(other.status)
	}
	other.clear()
}

// clear resets the container to the moved-from sentinel state.
func (r *StatusOr[T]) clear() {
	r.assignStatus(status.New(status.CodeInvalid, "the object was moved"))
}

// assignStatus makes the failure alternative live, carrying the given
// status. If a value was live, its slot is zeroed so the old payload is
// released; if a failure was already live, the status is overwritten in
// place.
func (r *StatusOr[T]) assignStatus(s status.Status) {
	if r.hasValue {
		var zero T
		r.value = zero
	}
	r.status = s
	r.hasValue = false
}

// assignValue makes the value alternative live, carrying the given value.
// The previous payload is replaced unconditionally, regardless of which
// alternative was live.
func (r *StatusOr[T]) assignValue(value T) {
	r.value = value
	r.status = status.OK()
	r.hasValue = true
}

// String renders the container for diagnostics.
func (r *StatusOr[T]) String() string {
	if r.hasValue {
		return fmt.Sprintf("StatusOr(%v)", r.value)
	}
	return fmt.Sprintf("StatusOr(%s)", r.status)
}
