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

// Package workerpool runs range-parallel work over a fixed worker count.
//
// A Pool statically partitions an index range into one contiguous chunk per
// worker and runs the chunks concurrently. There is no work stealing, no
// dynamic chunk sizing, and no cancellation: every call blocks until all
// workers have finished. Callers inject the pool as an Executor so the
// worker count is a dependency rather than a package-level constant.
package workerpool

import (
	"runtime"
	"sync"

	"github.com/ajroetker/go-parstat/parstat/chunk"
)

// Executor dispatches range-parallel work. The function passed to
// ParallelFor must be safe to run concurrently over disjoint ranges.
type Executor interface {
	// ParallelFor covers [0, n) with NumWorkers contiguous chunks and calls
	// fn(start, end) once per non-empty chunk. It returns after every call
	// has completed.
	ParallelFor(n int, fn func(start, end int))

	// ParallelForChunks runs fn over each non-empty chunk of a precomputed
	// partition and returns after every call has completed.
	ParallelForChunks(chunks []chunk.Chunk, fn func(start, end int))

	// NumWorkers returns the fixed worker count.
	NumWorkers() int
}

// Pool is the goroutine-backed Executor.
type Pool struct {
	workers int
}

var _ Executor = (*Pool)(nil)

// New returns a Pool with the given worker count. A count <= 0 selects
// runtime.GOMAXPROCS(0).
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// NumWorkers returns the fixed worker count.
func (p *Pool) NumWorkers() int { return p.workers }

// ParallelFor covers [0, n) with p.NumWorkers() contiguous chunks, the last
// absorbing any remainder, and runs fn over each non-empty chunk in its own
// goroutine. It blocks until all chunks are done. n <= 0 is a no-op.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunks, err := chunk.Partition(n, p.workers)
	if err != nil {
		// workers >= 1 and n >= 1 are guaranteed here.
		panic(err)
	}
	p.ParallelForChunks(chunks, fn)
}

// ParallelForChunks runs fn over each non-empty chunk of a precomputed
// partition, one goroutine per chunk, and blocks until all are done. The
// chunks must be pairwise disjoint if fn writes to shared buffers.
func (p *Pool) ParallelForChunks(chunks []chunk.Chunk, fn func(start, end int)) {
	var wg sync.WaitGroup
	for _, c := range chunks {
		if c.Empty() {
			continue
		}
		wg.Add(1)
		go func(c chunk.Chunk) {
			defer wg.Done()
			fn(c.Start, c.End)
		}(c)
	}
	wg.Wait()
}
