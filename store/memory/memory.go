// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"bytes"
	"slices"

	statusor "github.com/0xsoniclabs/statusor"
	"github.com/0xsoniclabs/statusor/common"
	"github.com/0xsoniclabs/statusor/future"
	"github.com/0xsoniclabs/statusor/status"
	"github.com/0xsoniclabs/statusor/store"
)

const initCapacity = 10_000

// Store is an in-memory store.Store implementation - it maps keys to values
// in a plain map. Serializers are only needed for computing checksums, where
// entries must be folded in a deterministic binary form.
type Store[K comparable, V any] struct {
	data            map[K]V
	keySerializer   common.Serializer[K]
	valueSerializer common.Serializer[V]
}

// NewStore constructs a new in-memory store instance.
func NewStore[K comparable, V any](keySerializer common.Serializer[K], valueSerializer common.Serializer[V]) *Store[K, V] {
	return &Store[K, V]{
		data:            make(map[K]V, initCapacity),
		keySerializer:   keySerializer,
		valueSerializer: valueSerializer,
	}
}

func (m *Store[K, V]) Set(key K, value V) status.Status {
	m.data[key] = value
	return status.OK()
}

func (m *Store[K, V]) Get(key K) *statusor.StatusOr[V] {
	value, found := m.data[key]
	if !found {
		return statusor.FromStatus[V](status.Newf(status.CodeNotFound, "key %v not found", key))
	}
	return statusor.FromValue(value)
}

func (m *Store[K, V]) Delete(key K) status.Status {
	delete(m.data, key)
	return status.OK()
}

// Checksum computes the checksum synchronously; the returned future is
// already fulfilled. Entries are folded in the order of their serialized
// keys, such that the result is deterministic.
func (m *Store[K, V]) Checksum() future.Future[*statusor.StatusOr[common.Hash]] {
	type entry struct {
		key   []byte
		value []byte
	}
	entries := make([]entry, 0, len(m.data))
	for key, value := range m.data {
		entries = append(entries, entry{
			key:   m.keySerializer.ToBytes(key),
			value: m.valueSerializer.ToBytes(value),
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return bytes.Compare(a.key, b.key)
	})
	builder := store.NewChecksumBuilder()
	for _, cur := range entries {
		builder.Add(cur.key, cur.value)
	}
	return future.Immediate(statusor.FromValue(builder.Build()))
}

// Flush the store
func (m *Store[K, V]) Flush() status.Status {
	return status.OK() // no-op for in-memory store
}

// Close the store
func (m *Store[K, V]) Close() error {
	return nil // no-op for in-memory store
}
