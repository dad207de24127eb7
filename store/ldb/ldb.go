// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"
	"fmt"

	statusor "github.com/0xsoniclabs/statusor"
	"github.com/0xsoniclabs/statusor/common"
	"github.com/0xsoniclabs/statusor/future"
	"github.com/0xsoniclabs/statusor/status"
	"github.com/0xsoniclabs/statusor/store"
	"github.com/syndtr/goleveldb/leveldb"
)

// Store is a LevelDB-backed store.Store implementation. Values are kept as
// checksummed, snappy-compressed records, allowing silent corruption of the
// database files to surface as DATA_LOSS failures on read.
//
// Checksums over the whole store are computed by a background worker on a
// database snapshot and delivered through a future, so readers and writers
// are not blocked while the store is being scanned.
//
// NOTE: this implementation is NOT thread-safe beyond what LevelDB itself
// guarantees for individual reads and writes. Use store.WrapIntoSyncedStore
// for concurrent access.
type Store[K comparable, V any] struct {
	db              *leveldb.DB
	keySerializer   common.Serializer[K]
	valueSerializer common.Serializer[V]

	// Controls for interacting with the background worker computing
	// checksums on database snapshots.
	commands chan<- command  // < commands to background worker
	done     <-chan struct{} // < when background work is done
}

// command represents an operation to be performed by the background worker.
// Currently the only operation is a checksum request, identified by the
// promise to fulfill.
type command struct {
	checksum future.Promise[*statusor.StatusOr[common.Hash]]
}

// NewStore opens (or creates) a LevelDB-backed store in the given directory.
func NewStore[K comparable, V any](path string, keySerializer common.Serializer[K], valueSerializer common.Serializer[V]) (*Store[K, V], error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb store: %w", err)
	}

	commands := make(chan command, 16)
	done := make(chan struct{})

	res := &Store[K, V]{
		db:              db,
		keySerializer:   keySerializer,
		valueSerializer: valueSerializer,
		commands:        commands,
		done:            done,
	}

	go func() {
		defer close(done)
		processCommands(db, commands)
	}()
	return res, nil
}

func (s *Store[K, V]) Set(key K, value V) status.Status {
	record := store.EncodeRecord(s.valueSerializer.ToBytes(value))
	if err := s.db.Put(s.keySerializer.ToBytes(key), record, nil); err != nil {
		return status.Newf(status.CodeInternal, "failed to write key %v: %v", key, err)
	}
	return status.OK()
}

func (s *Store[K, V]) Get(key K) *statusor.StatusOr[V] {
	record, err := s.db.Get(s.keySerializer.ToBytes(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return statusor.FromStatus[V](status.Newf(status.CodeNotFound, "key %v not found", key))
		}
		return statusor.FromStatus[V](status.Newf(status.CodeInternal, "failed to read key %v: %v", key, err))
	}
	payload := store.DecodeRecord(record)
	if !payload.IsOk() {
		return statusor.FromStatus[V](payload.Status())
	}
	return statusor.FromValue(s.valueSerializer.FromBytes(payload.Take()))
}

func (s *Store[K, V]) Delete(key K) status.Status {
	if err := s.db.Delete(s.keySerializer.ToBytes(key), nil); err != nil {
		return status.Newf(status.CodeInternal, "failed to delete key %v: %v", key, err)
	}
	return status.OK()
}

// Checksum requests a checksum of the current store content from the
// background worker. The content covered is the state of the store at the
// time of the call; later modifications are not included.
func (s *Store[K, V]) Checksum() future.Future[*statusor.StatusOr[common.Hash]] {
	promise, result := future.Create[*statusor.StatusOr[common.Hash]]()
	s.commands <- command{checksum: promise}
	return result
}

func processCommands(db *leveldb.DB, commands <-chan command) {
	for command := range commands {
		command.checksum.Fulfill(computeChecksum(db))
	}
}

func computeChecksum(db *leveldb.DB) *statusor.StatusOr[common.Hash] {
	snapshot, err := db.GetSnapshot()
	if err != nil {
		return statusor.FromStatus[common.Hash](status.Newf(status.CodeInternal, "failed to get snapshot: %v", err))
	}
	defer snapshot.Release()

	builder := store.NewChecksumBuilder()
	iter := snapshot.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		payload := store.DecodeRecord(iter.Value())
		if !payload.IsOk() {
			return statusor.FromStatus[common.Hash](payload.Status())
		}
		builder.Add(iter.Key(), payload.Take())
	}
	if err := iter.Error(); err != nil {
		return statusor.FromStatus[common.Hash](status.Newf(status.CodeInternal, "failed to iterate store: %v", err))
	}
	return statusor.FromValue(builder.Build())
}

// Flush is a no-op; all writes are persisted by LevelDB synchronously with
// respect to its own journal.
func (s *Store[K, V]) Flush() status.Status {
	return status.OK()
}

func (s *Store[K, V]) Close() error {
	close(s.commands)
	<-s.done
	return s.db.Close()
}
