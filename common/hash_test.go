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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashOf_IsDeterministic(t *testing.T) {
	require.Equal(t, HashOf([]byte("hello")), HashOf([]byte("hello")))
	require.NotEqual(t, HashOf([]byte("hello")), HashOf([]byte("world")))
}

func TestHashOf_ConcatenatesInputs(t *testing.T) {
	require.Equal(t, HashOf([]byte("hello")), HashOf([]byte("he"), []byte("llo")))
}

func TestHash_Compare_OrdersLexicographically(t *testing.T) {
	a := Hash{0x01}
	b := Hash{0x02}
	require.Equal(t, -1, a.Compare(&b))
	require.Equal(t, 1, b.Compare(&a))
	require.Equal(t, 0, a.Compare(&a))
}

func TestHash_String_RendersHexWithPrefix(t *testing.T) {
	var h Hash
	h[0] = 0xab
	require.Equal(t, 66, len(h.String()))
	require.Equal(t, "0xab", h.String()[:4])
}
