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

package main

import (
	"fmt"
	"io"

	"github.com/ajroetker/go-parstat/parstat"
	"github.com/ajroetker/go-parstat/parstat/stats"
	"github.com/ajroetker/go-parstat/parstat/transform"
	"github.com/ajroetker/go-parstat/parstat/workerpool"
)

// runDemo generates a buffer, runs the standard kernels over the worker
// pool, and writes the fixed demo report to w.
func runDemo(w io.Writer, samples, workers int, src parstat.Source) error {
	pool := workerpool.New(workers)

	fmt.Fprintln(w, "=== parstat demo ===")
	fmt.Fprintf(w, "samples: %d, workers: %d\n\n", samples, pool.NumWorkers())

	data := parstat.Generate(samples, src)
	fmt.Fprintf(w, "first raw samples: %s\n", formatHead(data, 5))
	printSummary(w, "raw", stats.Compute(data))

	kernels := transform.Standard()
	results, err := transform.ParallelApplyNamed(pool, data, kernels)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nfirst %s samples: %s\n", kernels[0].Name, formatHead(results[0], 5))

	for pos, k := range kernels {
		fmt.Fprintf(w, "\n%s: %s\n", k.Name, formatHead(results[pos], 3))
		printSummary(w, k.Name, stats.Compute(results[pos]))
	}
	return nil
}

func printSummary(w io.Writer, name string, s stats.Summary) {
	fmt.Fprintf(w, "%s stats: mean=%.6f stddev=%.6f min=%.6f max=%.6f\n",
		name, s.Mean, s.StdDev, s.Min, s.Max)
}

// formatHead renders up to n leading elements of buf.
func formatHead(buf []float64, n int) string {
	if len(buf) < n {
		n = len(buf)
	}
	out := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%.6f", buf[i])
	}
	return out + "]"
}
