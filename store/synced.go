// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	"sync"

	statusor "github.com/0xsoniclabs/statusor"
	"github.com/0xsoniclabs/statusor/common"
	"github.com/0xsoniclabs/statusor/future"
	"github.com/0xsoniclabs/statusor/status"
)

// syncedStore wraps another store and serializes all accesses with a mutex.
// Store implementations are not required to be thread-safe; this wrapper
// provides the external locking for callers sharing a store between
// goroutines.
type syncedStore[K comparable, V any] struct {
	store Store[K, V]
	mutex sync.Mutex
}

// WrapIntoSyncedStore adds a synchronization layer to the given store. All
// accesses must go through the returned wrapper afterwards.
func WrapIntoSyncedStore[K comparable, V any](store Store[K, V]) Store[K, V] {
	return &syncedStore[K, V]{store: store}
}

func (s *syncedStore[K, V]) Set(key K, value V) status.Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.store.Set(key, value)
}

func (s *syncedStore[K, V]) Get(key K) *statusor.StatusOr[V] {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.store.Get(key)
}

func (s *syncedStore[K, V]) Delete(key K) status.Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.store.Delete(key)
}

func (s *syncedStore[K, V]) Checksum() future.Future[*statusor.StatusOr[common.Hash]] {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.store.Checksum()
}

func (s *syncedStore[K, V]) Flush() status.Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.store.Flush()
}

func (s *syncedStore[K, V]) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.store.Close()
}
