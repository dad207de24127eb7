// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// installObserver routes the global logger into an in-memory sink for the
// duration of the test. The fatal behavior is downgraded from os.Exit to a
// panic so tests can observe it.
func installObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core, zap.OnFatal(zapcore.WriteThenPanic)))
	t.Cleanup(func() {
		Set(nil)
	})
	return logs
}

func TestNew_ReturnsSameLoggerOnRepeatedCalls(t *testing.T) {
	Set(nil)
	t.Cleanup(func() {
		Set(nil)
	})
	require.Same(t, New(), New())
}

func TestSet_ReplacesGlobalLogger(t *testing.T) {
	logger := zap.NewNop()
	Set(logger)
	t.Cleanup(func() {
		Set(nil)
	})
	require.Same(t, logger, New())
}

func TestFatalf_LogsMessageAtFatalSeverity(t *testing.T) {
	logs := installObserver(t)

	require.Panics(t, func() {
		Fatalf("something went %s", "wrong")
	})

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.FatalLevel, entries[0].Level)
	require.Equal(t, "something went wrong", entries[0].Message)
}
