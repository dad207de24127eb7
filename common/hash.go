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
	"bytes"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Hash is a 32-byte cryptographic checksum of stored content.
type Hash [32]byte

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Compare is the three-way comparison of two hashes in lexicographic order.
func (h *Hash) Compare(other *Hash) int {
	return bytes.Compare(h[:], other[:])
}

// HashOf computes the SHA3-256 hash of the concatenation of the given byte
// slices.
func HashOf(data ...[]byte) Hash {
	hasher := sha3.New256()
	for _, d := range data {
		hasher.Write(d)
	}
	var res Hash
	hasher.Sum(res[0:0])
	return res
}
