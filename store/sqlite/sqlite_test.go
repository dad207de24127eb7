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
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/statusor/common"
	"github.com/0xsoniclabs/statusor/status"
	"github.com/0xsoniclabs/statusor/store"
	"github.com/stretchr/testify/require"
)

var _ store.Store[uint64, string] = (*Store[uint64, string])(nil)

func openTestStore(t *testing.T, path string) *Store[uint64, string] {
	t.Helper()
	res, err := NewStore[uint64, string](path, common.IdentifierSerializer[uint64]{}, common.StringSerializer{})
	require.NoError(t, err)
	return res
}

func TestStore_SetAndGet_RoundTrips(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "store.sqlite"))
	defer s.Close()

	require.True(t, s.Set(1, "hello").IsOk())
	res := s.Get(1)
	require.True(t, res.IsOk())
	require.Equal(t, "hello", res.Value())
}

func TestStore_Get_MissingKeyIsNotFound(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "store.sqlite"))
	defer s.Close()

	res := s.Get(42)
	require.False(t, res.IsOk())
	require.Equal(t, status.CodeNotFound, res.Status().Code())
}

func TestStore_Set_OverwritesPreviousValue(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "store.sqlite"))
	defer s.Close()

	require.True(t, s.Set(1, "hello").IsOk())
	require.True(t, s.Set(1, "world").IsOk())
	require.Equal(t, "world", s.Get(1).Value())
}

func TestStore_Delete_RemovesValue(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "store.sqlite"))
	defer s.Close()

	require.True(t, s.Set(1, "hello").IsOk())
	require.True(t, s.Delete(1).IsOk())
	require.False(t, s.Get(1).IsOk())
}

func TestStore_ContentSurvivesReopening(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.sqlite")

	s := openTestStore(t, path)
	require.True(t, s.Set(1, "hello").IsOk())
	require.NoError(t, s.Close())

	s = openTestStore(t, path)
	defer s.Close()
	res := s.Get(1)
	require.True(t, res.IsOk())
	require.Equal(t, "hello", res.Value())
}

func TestStore_Checksum_MatchesLevelDbEquivalentContent(t *testing.T) {
	// The checksum is defined over serialized key/value pairs in key byte
	// order, independent of the backend holding them.
	a := openTestStore(t, filepath.Join(t.TempDir(), "a.sqlite"))
	defer a.Close()
	b := openTestStore(t, filepath.Join(t.TempDir(), "b.sqlite"))
	defer b.Close()

	for key, value := range map[uint64]string{1: "a", 2: "b", 3: "c"} {
		require.True(t, a.Set(key, value).IsOk())
		require.True(t, b.Set(key, value).IsOk())
	}

	checksumA := a.Checksum().Await()
	checksumB := b.Checksum().Await()
	require.True(t, checksumA.IsOk())
	require.Equal(t, checksumA.Value(), checksumB.Value())
}

func TestStore_Checksum_ChangesWithContent(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "store.sqlite"))
	defer s.Close()

	empty := s.Checksum().Await()
	require.True(t, empty.IsOk())

	require.True(t, s.Set(1, "hello").IsOk())
	filled := s.Checksum().Await()
	require.True(t, filled.IsOk())
	require.NotEqual(t, empty.Value(), filled.Value())
}
