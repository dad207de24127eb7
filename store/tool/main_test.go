// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllCommands_Run(t *testing.T) {
	for _, cmd := range commands {
		t.Run(cmd.Name, func(t *testing.T) {
			os.Args = []string{"tool", cmd.Name, "--help"}
			main() // ensure commands can be invoked without error
		})
	}
}

func TestTool_SetGetDeleteRoundTrip(t *testing.T) {
	for _, impl := range []string{"ldb", "sqlite"} {
		t.Run(impl, func(t *testing.T) {
			dir := t.TempDir()

			err := newApp().Run([]string{"tool", "set", "--impl", impl, "--dir", dir, "12", "hello"})
			require.NoError(t, err)

			err = newApp().Run([]string{"tool", "get", "--impl", impl, "--dir", dir, "12"})
			require.NoError(t, err)

			err = newApp().Run([]string{"tool", "delete", "--impl", impl, "--dir", dir, "12"})
			require.NoError(t, err)

			err = newApp().Run([]string{"tool", "get", "--impl", impl, "--dir", dir, "12"})
			require.Error(t, err)
		})
	}
}

func TestTool_ChecksumRuns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newApp().Run([]string{"tool", "set", "--impl", "sqlite", "--dir", dir, "1", "hello"}))
	require.NoError(t, newApp().Run([]string{"tool", "checksum", "--impl", "sqlite", "--dir", dir}))
}

func TestTool_BenchmarkRuns(t *testing.T) {
	err := newApp().Run([]string{"tool", "benchmark", "--impl", "memory", "--num-ops", "10", "--workers", "2"})
	require.NoError(t, err)
}

func TestTool_InvalidKeyIsRejected(t *testing.T) {
	err := newApp().Run([]string{"tool", "get", "--impl", "memory", "not-a-number"})
	require.ErrorContains(t, err, "invalid key")
}

func TestTool_UnknownImplementationIsRejected(t *testing.T) {
	err := newApp().Run([]string{"tool", "get", "--impl", "magnetic-tape", "1"})
	require.ErrorContains(t, err, "unknown store implementation")
}
