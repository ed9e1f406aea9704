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

package setops

// Feature identifies the instruction-set extension a generated entry
// point depends on. Features form a total order: each level implies
// every level below it, so the strictest requirement of a pair is
// simply the larger one.
type Feature int

const (
	// FeatureNone marks scalar code with no instruction-set requirement.
	FeatureNone Feature = iota

	// FeatureSSSE3 covers the 128-bit kernels (PSHUFB and friends).
	FeatureSSSE3

	// FeatureAVX2 covers the 256-bit kernels.
	FeatureAVX2

	// FeatureAVX512F covers the 512-bit kernels.
	FeatureAVX512F
)

// String returns the target_feature spelling used in conditional
// compilation guards. FeatureNone renders as the empty string.
func (f Feature) String() string {
	switch f {
	case FeatureSSSE3:
		return "ssse3"
	case FeatureAVX2:
		return "avx2"
	case FeatureAVX512F:
		return "avx512f"
	default:
		return ""
	}
}

// Strictest returns the stronger of two feature requirements.
func Strictest(a, b Feature) Feature {
	if a > b {
		return a
	}
	return b
}
