// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Identifier is an unsigned integer type used as a compact key in stores.
type Identifier interface {
	constraints.Unsigned
}

// Serializer converts values of type T to and from their binary
// representation. Implementations must round-trip: FromBytes(ToBytes(v))
// yields a value equal to v.
type Serializer[T any] interface {
	// ToBytes returns the binary representation of the given value.
	ToBytes(T) []byte
	// FromBytes restores a value from its binary representation.
	FromBytes([]byte) T
}

// IdentifierSerializer serializes identifiers as 8-byte big-endian values.
type IdentifierSerializer[I Identifier] struct{}

func (IdentifierSerializer[I]) ToBytes(id I) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func (IdentifierSerializer[I]) FromBytes(b []byte) I {
	return I(binary.BigEndian.Uint64(b))
}

// StringSerializer serializes strings as their raw bytes.
type StringSerializer struct{}

func (StringSerializer) ToBytes(s string) []byte {
	return []byte(s)
}

func (StringSerializer) FromBytes(b []byte) string {
	return string(b)
}

// BytesSerializer passes byte slices through, copying to decouple the
// result from the caller's buffer.
type BytesSerializer struct{}

func (BytesSerializer) ToBytes(b []byte) []byte {
	res := make([]byte, len(b))
	copy(res, b)
	return res
}

func (BytesSerializer) FromBytes(b []byte) []byte {
	res := make([]byte, len(b))
	copy(res, b)
	return res
}
