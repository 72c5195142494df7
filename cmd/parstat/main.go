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

// Command parstat generates a random sample buffer, applies the standard
// transformation kernels across a fixed worker pool, and prints summary
// statistics for the original and transformed buffers.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ajroetker/go-parstat/parstat"
)

func main() {
	var (
		samples = flag.Int("samples", 100000, "number of random samples to generate")
		workers = flag.Int("workers", 4, "worker count (0 = GOMAXPROCS)")
		seed    = flag.Uint64("seed", 0, "random seed (0 = process-seeded)")
		cpuinfo = flag.Bool("cpuinfo", false, "print CPU information and exit")
	)
	flag.Parse()

	if *cpuinfo {
		printCPUInfo(os.Stdout)
		return
	}

	if *samples < 0 {
		fmt.Fprintf(os.Stderr, "parstat: -samples must be >= 0 (got %d)\n", *samples)
		os.Exit(2)
	}
	if *workers < 0 {
		fmt.Fprintf(os.Stderr, "parstat: -workers must be >= 0 (got %d)\n", *workers)
		os.Exit(2)
	}

	var src parstat.Source
	if *seed != 0 {
		src = parstat.NewSeededSource(*seed)
	} else {
		src = parstat.NewSource()
	}

	if err := runDemo(os.Stdout, *samples, *workers, src); err != nil {
		fmt.Fprintf(os.Stderr, "parstat: %v\n", err)
		os.Exit(1)
	}
}
