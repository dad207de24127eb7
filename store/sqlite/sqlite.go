// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	statusor "github.com/0xsoniclabs/statusor"
	"github.com/0xsoniclabs/statusor/common"
	"github.com/0xsoniclabs/statusor/future"
	"github.com/0xsoniclabs/statusor/status"
	"github.com/0xsoniclabs/statusor/store"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed store.Store implementation keeping all entries in
// a single key/value table. Values use the same checksummed record format as
// the LevelDB backend, so damaged database files surface as DATA_LOSS
// failures instead of decoded garbage.
type Store[K comparable, V any] struct {
	db              *sql.DB
	keySerializer   common.Serializer[K]
	valueSerializer common.Serializer[V]

	get    *sql.Stmt
	set    *sql.Stmt
	remove *sql.Stmt
}

// NewStore opens (or creates) a SQLite-backed store in the given file.
func NewStore[K comparable, V any](path string, keySerializer common.Serializer[K], valueSerializer common.Serializer[V]) (*Store[K, V], error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS kv (key BLOB PRIMARY KEY, value BLOB NOT NULL)"); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create kv table: %w", err), db.Close())
	}

	get, err := db.Prepare("SELECT value FROM kv WHERE key = ?")
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	set, err := db.Prepare("INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return nil, errors.Join(err, get.Close(), db.Close())
	}
	remove, err := db.Prepare("DELETE FROM kv WHERE key = ?")
	if err != nil {
		return nil, errors.Join(err, get.Close(), set.Close(), db.Close())
	}

	return &Store[K, V]{
		db:              db,
		keySerializer:   keySerializer,
		valueSerializer: valueSerializer,
		get:             get,
		set:             set,
		remove:          remove,
	}, nil
}

func (s *Store[K, V]) Set(key K, value V) status.Status {
	record := store.EncodeRecord(s.valueSerializer.ToBytes(value))
	if _, err := s.set.Exec(s.keySerializer.ToBytes(key), record); err != nil {
		return status.Newf(status.CodeInternal, "failed to write key %v: %v", key, err)
	}
	return status.OK()
}

func (s *Store[K, V]) Get(key K) *statusor.StatusOr[V] {
	var record []byte
	err := s.get.QueryRow(s.keySerializer.ToBytes(key)).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
	if _, err := s.remove.Exec(s.keySerializer.ToBytes(key)); err != nil {
		return status.Newf(status.CodeInternal, "failed to delete key %v: %v", key, err)
	}
	return status.OK()
}

// Checksum computes the checksum synchronously; the returned future is
// already fulfilled. Entries are folded in the byte order of their keys.
func (s *Store[K, V]) Checksum() future.Future[*statusor.StatusOr[common.Hash]] {
	rows, err := s.db.Query("SELECT key, value FROM kv ORDER BY key")
	if err != nil {
		return future.ImmediateFailure[common.Hash](status.Newf(status.CodeInternal, "failed to scan store: %v", err))
	}
	defer rows.Close()

	builder := store.NewChecksumBuilder()
	for rows.Next() {
		var key, record []byte
		if err := rows.Scan(&key, &record); err != nil {
			return future.ImmediateFailure[common.Hash](status.Newf(status.CodeInternal, "failed to scan store: %v", err))
		}
		payload := store.DecodeRecord(record)
		if !payload.IsOk() {
			return future.Immediate(statusor.FromStatus[common.Hash](payload.Status()))
		}
		builder.Add(key, payload.Take())
	}
	if err := rows.Err(); err != nil {
		return future.ImmediateFailure[common.Hash](status.Newf(status.CodeInternal, "failed to scan store: %v", err))
	}
	return future.Immediate(statusor.FromValue(builder.Build()))
}

func (s *Store[K, V]) Flush() status.Status {
	return status.OK() // sqlite writes are committed per statement
}

func (s *Store[K, V]) Close() error {
	return errors.Join(
		s.get.Close(),
		s.set.Close(),
		s.remove.Close(),
		s.db.Close(),
	)
}
