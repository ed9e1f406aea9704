// Copyright 2025 simd-set-operations Authors
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

// Package cpuinfo resolves the "host" width tier from the features of
// the CPU running the generator.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// WidestTier returns the name of the widest SIMD tier the host CPU
// supports. It reports false on non-amd64 hosts and on CPUs without
// SSSE3, where no tier's kernels can run.
func WidestTier() (string, bool) {
	if runtime.GOARCH != "amd64" {
		return "", false
	}
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512", true
	case cpu.X86.HasAVX2:
		return "avx2", true
	case cpu.X86.HasSSSE3:
		return "sse", true
	}
	return "", false
}
