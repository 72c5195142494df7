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

// Package chunk divides an index range into contiguous per-worker ranges.
//
// A partition of [0, n) into w chunks is always pairwise disjoint, ordered,
// and covers the range exactly. Two policies are provided: Partition gives
// every chunk n/w elements and lets the last chunk absorb the remainder,
// while PartitionBalanced spreads the remainder one element at a time over
// the leading chunks.
package chunk

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkers is returned when a worker count below 1 is requested.
	ErrInvalidWorkers = errors.New("chunk: worker count must be >= 1")

	// ErrNegativeLength is returned when the index range length is negative.
	ErrNegativeLength = errors.New("chunk: range length must be >= 0")
)

// Chunk is a half-open index range [Start, End) assigned to one worker.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// Empty reports whether the chunk covers no indices.
func (c Chunk) Empty() bool { return c.Start == c.End }

// Partition splits [0, n) into exactly workers contiguous chunks.
//
// Every chunk holds n/workers elements except the last, whose end is forced
// to n so it absorbs the remainder. For n=10, workers=4 the chunk sizes are
// [2, 2, 2, 4]. When n < workers the leading chunks are empty and the last
// chunk holds everything. Empty chunks are returned rather than elided so
// that chunk k always belongs to worker k.
func Partition(n, workers int) ([]Chunk, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidWorkers, workers)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeLength, n)
	}
	base := n / workers
	chunks := make([]Chunk, workers)
	for k := range chunks {
		chunks[k] = Chunk{Start: k * base, End: (k + 1) * base}
	}
	chunks[workers-1].End = n
	return chunks, nil
}

// PartitionBalanced splits [0, n) into workers contiguous chunks whose sizes
// differ by at most one: the first n%workers chunks hold n/workers+1 elements
// and the rest hold n/workers. For n=10, workers=4 the chunk sizes are
// [3, 3, 2, 2].
//
// This trades the compatibility of Partition's absorb-into-last layout for
// an even workload when n is not a multiple of workers.
func PartitionBalanced(n, workers int) ([]Chunk, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidWorkers, workers)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeLength, n)
	}
	base, rem := n/workers, n%workers
	chunks := make([]Chunk, workers)
	start := 0
	for k := range chunks {
		size := base
		if k < rem {
			size++
		}
		chunks[k] = Chunk{Start: start, End: start + size}
		start += size
	}
	return chunks, nil
}
