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

// Package parstat generates sample buffers from a pseudo-random source.
//
// The heavy lifting lives in the subpackages: chunk partitions index
// ranges, workerpool runs range-parallel work, transform applies
// elementwise kernels, and stats summarizes buffers.
package parstat

import "math/rand/v2"

// Source supplies pseudo-random float64 draws uniformly distributed in
// [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a process-seeded Source. Draws are not reproducible
// across runs; use NewSeededSource for deterministic sequences.
func NewSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededSource returns a Source with a fixed seed, for tests and
// benchmarks that need reproducible buffers.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalSource draws from the shared top-level math/rand/v2 generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Generate returns a buffer of n independent draws from src, in draw
// order. A nil src draws from the shared top-level math/rand/v2 generator.
func Generate(n int, src Source) []float64 {
	if src == nil {
		src = globalSource{}
	}
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = src.Float64()
	}
	return buf
}
