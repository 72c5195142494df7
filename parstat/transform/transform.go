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

// Package transform applies pure elementwise kernels to float64 buffers,
// sequentially or across a fixed set of workers.
//
// The parallel entry points take an injected workerpool.Executor. The input
// buffer is read-shared; each worker writes only to its own contiguous range
// of each output buffer, so no synchronization is needed beyond the join
// barrier inside the pool. Results are identical for every worker count.
package transform

import (
	"errors"

	"github.com/ajroetker/go-parstat/parstat/chunk"
	"github.com/ajroetker/go-parstat/parstat/workerpool"
)

var (
	// ErrNilPool is returned when no Executor is supplied.
	ErrNilPool = errors.New("transform: nil worker pool")

	// ErrNilFunc is returned when a nil kernel is supplied.
	ErrNilFunc = errors.New("transform: nil kernel function")
)

// Apply computes dst[i] = fn(src[i]) sequentially over
// min(len(dst), len(src)) elements.
func Apply(dst, src []float64, fn Func) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = fn(src[i])
	}
}

// ParallelApply allocates a buffer of len(src) and fills it with fn applied
// to every element of src, splitting the index range across the pool's
// workers. It blocks until every worker has finished; the caller never
// observes a partially written result.
func ParallelApply(pool workerpool.Executor, src []float64, fn Func) ([]float64, error) {
	results, err := ParallelApplyAll(pool, src, fn)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// ParallelApplyAll applies each kernel to every element of src in one
// parallel pass, returning one output buffer per kernel, ordered to match
// fns. Output buffers are allocated up front so workers only ever write
// inside their own chunk of each buffer.
func ParallelApplyAll(pool workerpool.Executor, src []float64, fns ...Func) ([][]float64, error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	for _, fn := range fns {
		if fn == nil {
			return nil, ErrNilFunc
		}
	}

	chunks, err := chunk.Partition(len(src), pool.NumWorkers())
	if err != nil {
		return nil, err
	}

	outputs := make([][]float64, len(fns))
	for t := range outputs {
		outputs[t] = make([]float64, len(src))
	}

	pool.ParallelForChunks(chunks, func(start, end int) {
		applyChunk(outputs, src, fns, start, end)
	})
	return outputs, nil
}

// ParallelApplyNamed runs ParallelApplyAll over named kernels, preserving
// their order.
func ParallelApplyNamed(pool workerpool.Executor, src []float64, kernels []Named) ([][]float64, error) {
	fns := make([]Func, len(kernels))
	for i, k := range kernels {
		fns[i] = k.Fn
	}
	return ParallelApplyAll(pool, src, fns...)
}

func applyChunk(outputs [][]float64, src []float64, fns []Func, start, end int) {
	for t, fn := range fns {
		out := outputs[t]
		for i := start; i < end; i++ {
			out[i] = fn(src[i])
		}
	}
}
