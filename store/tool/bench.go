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
	"errors"
	"fmt"
	"time"

	"github.com/0xsoniclabs/statusor/diagnostics"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var (
	numOpsFlag = cli.IntFlag{
		Name:  "num-ops",
		Usage: "the number of operations to be performed by each worker",
		Value: 100_000,
	}
	numWorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "the number of concurrent workers",
		Value: 4,
	}
)

var Benchmark = cli.Command{
	Action:    diagnostics.AddPerformanceDiagnosticsAction(doBenchmark, &diagnosticsFlag, &cpuProfileFlag, &traceFlag),
	Name:      "benchmark",
	Usage:     "measures the write throughput of the selected store implementation",
	Flags:     []cli.Flag{&implFlag, &dirFlag, &numOpsFlag, &numWorkersFlag},
}

func doBenchmark(context *cli.Context) error {
	numOps := context.Int(numOpsFlag.Name)
	numWorkers := context.Int(numWorkersFlag.Name)

	s, err := openStore(context)
	if err != nil {
		return err
	}

	start := time.Now()
	var group errgroup.Group
	for i := 0; i < numWorkers; i++ {
		worker := uint64(i)
		group.Go(func() error {
			for op := 0; op < numOps; op++ {
				key := worker*uint64(numOps) + uint64(op)
				if res := s.Set(key, fmt.Sprintf("value-%d", key)); !res.IsOk() {
					return res
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return errors.Join(err, s.Close())
	}
	duration := time.Since(start)

	checksum := s.Checksum().Await()
	if !checksum.IsOk() {
		return errors.Join(checksum.Status(), s.Close())
	}

	total := numOps * numWorkers
	fmt.Printf("%d operations in %v (%.0f ops/s)\n", total, duration, float64(total)/duration.Seconds())
	fmt.Printf("store checksum: %s\n", checksum.Value())
	return s.Close()
}
