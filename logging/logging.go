// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package logging provides the process-wide structured logger used by this
// library. The logger is created lazily on first use and can be replaced by
// embedding applications that maintain their own logging setup.
package logging

import (
	"fmt"
	"log"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	global *zap.Logger
)

// New returns the process-wide logger, creating a default production logger
// on first use.
func New() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = defaultLogger()
	}
	return global
}

// Set replaces the process-wide logger. Intended for embedding applications
// and tests that need to redirect or intercept log output.
func Set(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = logger
}

func defaultLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	return logger
}

// Fatalf logs the given message at fatal severity and terminates the
// process. The termination behavior follows the configured logger; the
// default logger calls os.Exit(1) after writing the message.
func Fatalf(format string, args ...any) {
	New().Fatal(fmt.Sprintf(format, args...))
}
