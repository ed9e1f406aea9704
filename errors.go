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

import "errors"

var (
	// ErrInvalidOperand is returned when a run length lies outside
	// [1, 2*Width-1] for the selected tier.
	ErrInvalidOperand = errors.New("operand run length out of range")

	// ErrMissingKernel is returned when the kernel catalog has no entry
	// for a required (small, large-width) pair.
	ErrMissingKernel = errors.New("no kernel for operand widths")

	// ErrInvalidWidthTier is returned for an unknown SIMD width tier name.
	ErrInvalidWidthTier = errors.New("invalid width tier")

	// ErrTemplate is returned when emission references a kernel or
	// visitor absent from the configured catalogs. Output is never
	// silently dropped or substituted.
	ErrTemplate = errors.New("emission references unknown catalog entry")
)
