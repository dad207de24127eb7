// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package future

import (
	"testing"

	statusor "github.com/0xsoniclabs/statusor"
	"github.com/0xsoniclabs/statusor/status"
	"github.com/stretchr/testify/require"
)

func TestCreate_PromiseAndFutureAreLinked(t *testing.T) {
	promise, future := Create[int]()
	promise.Fulfill(12)
	require.Equal(t, 12, future.Await())
}

func TestImmediate_FutureIsFulfilled(t *testing.T) {
	future := Immediate("hello")
	require.Equal(t, "hello", future.Await())
}

func TestImmediateFailure_FutureCarriesFailedStatusOr(t *testing.T) {
	issue := status.New(status.CodeUnavailable, "backend down")
	future := ImmediateFailure[int](issue)

	res := future.Await()
	require.False(t, res.IsOk())
	require.Equal(t, issue, res.Status())
}

func TestForward_CanBeUsedToPipelineFutures(t *testing.T) {
	promise1, future1 := Create[string]()
	promise2, future2 := Create[string]()

	promise2.Forward(future1)

	promise1.Fulfill("hello")
	require.Equal(t, "hello", future2.Await())
}

func TestThen_FutureResultCanBeTransformed(t *testing.T) {
	promise1, future1 := Create[*statusor.StatusOr[int]]()
	future2 := Then(future1, func(res *statusor.StatusOr[int]) int {
		if !res.IsOk() {
			return 0
		}
		return res.Value() * 2
	})

	promise1.Fulfill(statusor.FromValue(21))
	require.Equal(t, 42, future2.Await())
}
