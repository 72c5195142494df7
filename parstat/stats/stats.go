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

// Package stats computes descriptive statistics over float64 buffers.
package stats

import "math"

// Summary holds the descriptive statistics of a buffer.
// StdDev is the population standard deviation (divisor N, not N-1).
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Compute returns the Summary of data in two passes: the first accumulates
// sum, min, and max; the second accumulates squared deviations from the mean
// for the population variance. The squared-deviation sum cannot be negative,
// so StdDev is always a real number for real inputs.
//
// An empty buffer yields the zero Summary. NaN elements propagate into Mean
// and StdDev untouched; callers needing a strict contract should validate
// inputs first.
func Compute(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	n := float64(len(data))

	sum := 0.0
	lo, hi := data[0], data[0]
	for _, x := range data {
		sum += x
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	mean := sum / n

	sq := 0.0
	for _, x := range data {
		d := x - mean
		sq += d * d
	}

	return Summary{
		Mean:   mean,
		StdDev: math.Sqrt(sq / n),
		Min:    lo,
		Max:    hi,
	}
}
