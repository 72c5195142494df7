// Copyright 2025 go-parstat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-parstat/parstat/chunk"
)

func TestNewDefaultsToGOMAXPROCS(t *testing.T) {
	assert.Equal(t, runtime.GOMAXPROCS(0), New(0).NumWorkers())
	assert.Equal(t, runtime.GOMAXPROCS(0), New(-1).NumWorkers())
	assert.Equal(t, 3, New(3).NumWorkers())
}

func TestParallelForVisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 7} {
		pool := New(workers)
		const n = 1000
		visits := make([]int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
		})
		for i, v := range visits {
			require.EqualValues(t, 1, v, "workers=%d index %d visited %d times", workers, i, v)
		}
	}
}

func TestParallelForBlocksUntilDone(t *testing.T) {
	pool := New(4)
	var done atomic.Int32
	pool.ParallelFor(4, func(start, end int) {
		done.Add(int32(end - start))
	})
	// The barrier means all work is observable immediately after return.
	assert.EqualValues(t, 4, done.Load())
}

func TestParallelForEmptyRange(t *testing.T) {
	pool := New(4)
	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	assert.False(t, called, "fn must not run for an empty range")
}

func TestParallelForChunksSkipsEmpty(t *testing.T) {
	pool := New(8)
	chunks, err := chunk.Partition(3, 8)
	require.NoError(t, err)

	var calls atomic.Int32
	pool.ParallelForChunks(chunks, func(start, end int) {
		calls.Add(1)
		assert.Equal(t, 0, start)
		assert.Equal(t, 3, end)
	})
	assert.EqualValues(t, 1, calls.Load(), "only the non-empty chunk runs")
}
