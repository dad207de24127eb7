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
	"path/filepath"
	"strconv"

	"github.com/0xsoniclabs/statusor/common"
	"github.com/0xsoniclabs/statusor/diagnostics"
	"github.com/0xsoniclabs/statusor/store"
	"github.com/0xsoniclabs/statusor/store/ldb"
	"github.com/0xsoniclabs/statusor/store/memory"
	"github.com/0xsoniclabs/statusor/store/sqlite"
	"github.com/urfave/cli/v2"
)

var (
	implFlag = cli.StringFlag{
		Name:  "impl",
		Usage: "the store implementation to use: memory, ldb, or sqlite",
		Value: "ldb",
	}
	dirFlag = cli.StringFlag{
		Name:  "dir",
		Usage: "the directory holding the store data",
		Value: ".",
	}
)

var Set = cli.Command{
	Action:    diagnostics.AddPerformanceDiagnosticsAction(doSet, &diagnosticsFlag, &cpuProfileFlag, &traceFlag),
	Name:      "set",
	Usage:     "stores a value under the given key",
	ArgsUsage: "<key> <value>",
	Flags:     []cli.Flag{&implFlag, &dirFlag},
}

var Get = cli.Command{
	Action:    diagnostics.AddPerformanceDiagnosticsAction(doGet, &diagnosticsFlag, &cpuProfileFlag, &traceFlag),
	Name:      "get",
	Usage:     "prints the value stored under the given key",
	ArgsUsage: "<key>",
	Flags:     []cli.Flag{&implFlag, &dirFlag},
}

var Delete = cli.Command{
	Action:    diagnostics.AddPerformanceDiagnosticsAction(doDelete, &diagnosticsFlag, &cpuProfileFlag, &traceFlag),
	Name:      "delete",
	Usage:     "removes the value stored under the given key",
	ArgsUsage: "<key>",
	Flags:     []cli.Flag{&implFlag, &dirFlag},
}

var Checksum = cli.Command{
	Action:    diagnostics.AddPerformanceDiagnosticsAction(doChecksum, &diagnosticsFlag, &cpuProfileFlag, &traceFlag),
	Name:      "checksum",
	Usage:     "prints a checksum covering the complete store content",
	Flags:     []cli.Flag{&implFlag, &dirFlag},
}

// openStore creates the store implementation selected on the command line.
// All implementations are wrapped for thread-safe use.
func openStore(context *cli.Context) (store.Store[uint64, string], error) {
	impl := context.String(implFlag.Name)
	dir := context.String(dirFlag.Name)
	keySerializer := common.IdentifierSerializer[uint64]{}
	valueSerializer := common.StringSerializer{}

	var res store.Store[uint64, string]
	switch impl {
	case "memory":
		res = memory.NewStore[uint64, string](keySerializer, valueSerializer)
	case "ldb":
		s, err := ldb.NewStore[uint64, string](filepath.Join(dir, "store.ldb"), keySerializer, valueSerializer)
		if err != nil {
			return nil, err
		}
		res = s
	case "sqlite":
		s, err := sqlite.NewStore[uint64, string](filepath.Join(dir, "store.sqlite"), keySerializer, valueSerializer)
		if err != nil {
			return nil, err
		}
		res = s
	default:
		return nil, fmt.Errorf("unknown store implementation: %s", impl)
	}
	return store.WrapIntoSyncedStore(res), nil
}

func parseKey(arg string) (uint64, error) {
	key, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", arg, err)
	}
	return key, nil
}

func doSet(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected a key and a value argument")
	}
	key, err := parseKey(context.Args().Get(0))
	if err != nil {
		return err
	}
	s, err := openStore(context)
	if err != nil {
		return err
	}
	if res := s.Set(key, context.Args().Get(1)); !res.IsOk() {
		return errors.Join(res, s.Close())
	}
	return s.Close()
}

func doGet(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected a key argument")
	}
	key, err := parseKey(context.Args().Get(0))
	if err != nil {
		return err
	}
	s, err := openStore(context)
	if err != nil {
		return err
	}
	res := s.Get(key)
	if !res.IsOk() {
		return errors.Join(res.Status(), s.Close())
	}
	fmt.Println(res.Value())
	return s.Close()
}

func doDelete(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected a key argument")
	}
	key, err := parseKey(context.Args().Get(0))
	if err != nil {
		return err
	}
	s, err := openStore(context)
	if err != nil {
		return err
	}
	if res := s.Delete(key); !res.IsOk() {
		return errors.Join(res, s.Close())
	}
	return s.Close()
}

func doChecksum(context *cli.Context) error {
	s, err := openStore(context)
	if err != nil {
		return err
	}
	res := s.Checksum().Await()
	if !res.IsOk() {
		return errors.Join(res.Status(), s.Close())
	}
	fmt.Println(res.Value())
	return s.Close()
}
