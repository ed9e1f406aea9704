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

// Package dispatch builds the per-tier kernel dispatch table: it
// encodes run-length pairs into compact control ids, classifies every
// reachable pair against the kernel catalog, and compresses the result
// into the minimal list of contiguous dispatch ranges.
package dispatch

import (
	"fmt"

	setops "github.com/UNSW-database/simd-set-operations"
)

// Tier describes one SIMD width tier of the benchmark suite. A Tier is
// an immutable configuration value; all dispatch computation is a pure
// function of it.
type Tier struct {
	Name    string         // "sse", "avx2", "avx512"
	Width   int            // register lane count for i32 elements
	Shift   uint           // low-field bit width: ceil(log2(2*Width))
	Feature setops.Feature // instruction set the tier's kernels require
	IDBase  int            // literal base for emitted control ids
}

// SSETier returns the 128-bit tier (4 lanes). Control ids are emitted
// as octal literals so each operand occupies one digit.
func SSETier() Tier {
	return Tier{
		Name:    "sse",
		Width:   4,
		Shift:   3,
		Feature: setops.FeatureSSSE3,
		IDBase:  8,
	}
}

// AVX2Tier returns the 256-bit tier (8 lanes). Control ids are emitted
// as hex literals, one operand per digit.
func AVX2Tier() Tier {
	return Tier{
		Name:    "avx2",
		Width:   8,
		Shift:   4,
		Feature: setops.FeatureAVX2,
		IDBase:  16,
	}
}

// AVX512Tier returns the 512-bit tier (16 lanes). No literal base packs
// one operand per digit, so control ids are emitted in decimal.
func AVX512Tier() Tier {
	return Tier{
		Name:    "avx512",
		Width:   16,
		Shift:   5,
		Feature: setops.FeatureAVX512F,
		IDBase:  10,
	}
}

// GetTier returns the tier configuration for the given name.
func GetTier(name string) (Tier, error) {
	switch name {
	case "sse":
		return SSETier(), nil
	case "avx2":
		return AVX2Tier(), nil
	case "avx512":
		return AVX512Tier(), nil
	default:
		return Tier{}, fmt.Errorf("%w: %q (valid: sse, avx2, avx512)",
			setops.ErrInvalidWidthTier, name)
	}
}

// AvailableTiers lists the valid tier names in ascending width order.
func AvailableTiers() []string {
	return []string{"sse", "avx2", "avx512"}
}

// MaxRun returns the largest valid operand run length, 2*Width-1.
func (t Tier) MaxRun() int {
	return 2*t.Width - 1
}

// KernelModule returns the module holding this tier's kernel bodies.
func (t Tier) KernelModule() string {
	return "kernels_" + t.Name
}
