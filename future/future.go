// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package future provides a placeholder for a value that may not yet be
// available. Futures are the delivery mechanism for results computed in
// background goroutines; combined with the statusor container they transport
// the complete outcome of an asynchronous fallible operation in a single
// awaitable handle.
//
// The producer side typically looks as follows:
//
//	promise, future := future.Create[*statusor.StatusOr[T]]()
//	go func() {
//	   promise.Fulfill(someOperation())
//	}()
//	return future
//
// If the outcome is already known, an immediate Future can be created using
// Immediate or, for the failure case, ImmediateFailure.
package future

import (
	statusor "github.com/0xsoniclabs/statusor"
	"github.com/0xsoniclabs/statusor/status"
)

// Promise represents the handle used to fulfill a Future.
type Promise[T any] struct {
	C chan<- T
}

// Future represents a placeholder for a value that will be available in the
// future. It can be awaited to retrieve the result once it is fulfilled.
// Futures can only be consumed once.
type Future[T any] struct {
	C <-chan T
}

// Create initializes a new Promise and Future pair. The Promise can be used
// to fulfill the Future, while the Future can be awaited to retrieve the
// result once it is available.
func Create[T any]() (Promise[T], Future[T]) {
	ch := make(chan T, 1)
	return Promise[T]{C: ch}, Future[T]{C: ch}
}

// Immediate creates a Future that is already fulfilled with the given value.
func Immediate[T any](value T) Future[T] {
	ch := make(chan T, 1)
	ch <- value
	close(ch)
	return Future[T]{C: ch}
}

// ImmediateFailure creates an already-fulfilled Future carrying a failed
// StatusOr with the given non-OK status.
func ImmediateFailure[T any](s status.Status) Future[*statusor.StatusOr[T]] {
	return Immediate(statusor.FromStatus[T](s))
}

// Fulfill fulfills the Promise with the given value, making it available to
// any awaiting Future.
func (p Promise[T]) Fulfill(value T) {
	p.C <- value
	close(p.C)
}

// Forward connects the Promise to the given Future, such that when the
// Future is fulfilled, the Promise is also fulfilled with the same value.
func (p Promise[T]) Forward(f Future[T]) {
	go func() {
		p.C <- <-f.C
		close(p.C)
	}()
}

// Await blocks until the Future is fulfilled and returns the contained
// value.
func (f Future[T]) Await() T {
	return <-f.C
}

// Then creates a new Future by applying the given transformation function to
// the result of the original Future once it is fulfilled.
func Then[A, B any](f Future[A], transform func(A) B) Future[B] {
	promise, future := Create[B]()
	go func() {
		promise.Fulfill(transform(f.Await()))
	}()
	return future
}
