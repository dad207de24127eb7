// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_OK_ReportsSuccess(t *testing.T) {
	s := OK()
	require.True(t, s.IsOk())
	require.Equal(t, CodeOK, s.Code())
	require.Empty(t, s.Message())
}

func TestStatus_New_PreservesCodeAndMessage(t *testing.T) {
	s := New(CodeNotFound, "not found")
	require.False(t, s.IsOk())
	require.Equal(t, CodeNotFound, s.Code())
	require.Equal(t, "not found", s.Message())
}

func TestStatus_New_OkCodeYieldsCanonicalSuccess(t *testing.T) {
	s := New(CodeOK, "this message is dropped")
	require.True(t, s.IsOk())
	require.Equal(t, OK(), s)
}

func TestStatus_Newf_FormatsMessage(t *testing.T) {
	s := Newf(CodeInternal, "failed after %d attempts", 3)
	require.Equal(t, "failed after 3 attempts", s.Message())
}

func TestStatus_EqualStatusesCompareEqual(t *testing.T) {
	a := New(CodeAborted, "stopped")
	b := New(CodeAborted, "stopped")
	require.Equal(t, a, b)
	require.True(t, a == b)

	require.NotEqual(t, a, New(CodeAborted, "other"))
	require.NotEqual(t, a, New(CodeInternal, "stopped"))
}

func TestStatus_IsUsableAsError(t *testing.T) {
	var err error = New(CodeUnavailable, "backend down")
	require.EqualError(t, err, "UNAVAILABLE: backend down")
}

func TestStatus_String_RendersCodeAndMessage(t *testing.T) {
	require.Equal(t, "OK", OK().String())
	require.Equal(t, "NOT_FOUND: no such key", New(CodeNotFound, "no such key").String())
}

func TestCode_String_CoversAllNamedCodes(t *testing.T) {
	for code, name := range codeNames {
		require.Equal(t, name, code.String())
	}
	require.Equal(t, "CODE(99)", Code(99).String())
}

func TestCode_InvalidIsOutsideCanonicalTable(t *testing.T) {
	for code := CodeOK; code <= CodeUnauthenticated; code++ {
		require.NotEqual(t, CodeInvalid, code)
	}
	require.Equal(t, "INVALID", CodeInvalid.String())
}
