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
	"bytes"
	"encoding/binary"
	"hash"

	statusor "github.com/0xsoniclabs/statusor"
	"github.com/0xsoniclabs/statusor/common"
	"github.com/0xsoniclabs/statusor/status"
	"github.com/golang/snappy"
	"golang.org/x/crypto/sha3"
)

// Persistent record layout: a 32-byte SHA3-256 checksum of the payload,
// followed by the snappy-compressed payload. The checksum lets backends
// detect silent corruption of the underlying medium and report it as a
// DATA_LOSS failure instead of handing damaged data to the caller.

const recordChecksumSize = 32

// EncodeRecord produces the persistent form of the given payload.
func EncodeRecord(payload []byte) []byte {
	checksum := common.HashOf(payload)
	compressed := snappy.Encode(nil, payload)
	res := make([]byte, 0, recordChecksumSize+len(compressed))
	res = append(res, checksum[:]...)
	return append(res, compressed...)
}

// DecodeRecord restores the payload from its persistent form, verifying the
// embedded checksum. Damaged records yield a DATA_LOSS failure.
func DecodeRecord(record []byte) *statusor.StatusOr[[]byte] {
	if len(record) < recordChecksumSize {
		return statusor.FromStatus[[]byte](status.New(status.CodeDataLoss, "record too short"))
	}
	payload, err := snappy.Decode(nil, record[recordChecksumSize:])
	if err != nil {
		return statusor.FromStatus[[]byte](status.Newf(status.CodeDataLoss, "record corrupted: %v", err))
	}
	checksum := common.HashOf(payload)
	if !bytes.Equal(checksum[:], record[:recordChecksumSize]) {
		return statusor.FromStatus[[]byte](status.New(status.CodeDataLoss, "record checksum mismatch"))
	}
	return statusor.FromValue(payload)
}

// ChecksumBuilder accumulates key/value pairs into a checksum covering a
// whole store. Pairs must be added in a deterministic order; each component
// is length-prefixed so pair boundaries cannot be confused.
type ChecksumBuilder struct {
	hasher hash.Hash
}

func NewChecksumBuilder() *ChecksumBuilder {
	return &ChecksumBuilder{hasher: sha3.New256()}
}

// Add feeds one key/value pair into the checksum.
func (b *ChecksumBuilder) Add(key, value []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(key)))
	b.hasher.Write(length[:])
	b.hasher.Write(key)
	binary.BigEndian.PutUint64(length[:], uint64(len(value)))
	b.hasher.Write(length[:])
	b.hasher.Write(value)
}

// Build returns the checksum of all added pairs.
func (b *ChecksumBuilder) Build() common.Hash {
	var res common.Hash
	b.hasher.Sum(res[0:0])
	return res
}
