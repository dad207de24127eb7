// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package store defines a key/value store abstraction whose API reports
// failures through the status and statusor types instead of plain errors.
// Reads return a StatusOr carrying either the value or the reason it is not
// available; absent keys are an ordinary NOT_FOUND failure, not a zero
// value. Implementations for different backends are provided in the
// sub-packages.
package store

import (
	statusor "github.com/0xsoniclabs/statusor"
	"github.com/0xsoniclabs/statusor/common"
	"github.com/0xsoniclabs/statusor/future"
	"github.com/0xsoniclabs/statusor/status"
)

//go:generate mockgen -source store.go -destination store_mock.go -package store

// Store is a mutable mapping of keys to values.
type Store[K comparable, V any] interface {
	// Set stores the given value under the given key, replacing any
	// previous value.
	Set(key K, value V) status.Status

	// Get retrieves the value stored under the given key. The result holds
	// a status with code CodeNotFound if no value is stored under the key.
	Get(key K) *statusor.StatusOr[V]

	// Delete removes the value stored under the given key. Deleting an
	// absent key is a no-op reporting success.
	Delete(key K) status.Status

	// Checksum provides a future resolving to a hash covering all key/value
	// pairs currently in the store. Implementations may compute the hash in
	// the background.
	Checksum() future.Future[*statusor.StatusOr[common.Hash]]

	// Flush writes all pending changes to the backing storage.
	Flush() status.Status

	// Close flushes and releases the store. No other method may be called
	// afterwards.
	Close() error
}
