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
	"runtime"

	"golang.org/x/sys/cpu"
)

// printCPUInfo reports the host properties relevant to picking a worker
// count.
func printCPUInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD:   %v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:      %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasATOMICS: %v\n", cpu.ARM64.HasATOMICS)
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasAVX:    %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:   %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasFMA:    %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasAVX512: %v\n", cpu.X86.HasAVX512)
	}
}
