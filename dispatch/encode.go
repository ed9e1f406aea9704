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

package dispatch

import (
	"fmt"
	"strconv"

	setops "github.com/UNSW-database/simd-set-operations"
)

// ControlID is the packed encoding of a run-length pair. The right
// operand occupies the low Shift bits and the left operand the bits
// above, so distinct pairs always map to distinct ids.
type ControlID int

// Encode packs a run-length pair into a ControlID. Both lengths must
// lie in [1, 2*Width-1].
func (t Tier) Encode(left, right int) (ControlID, error) {
	if left < 1 || left > t.MaxRun() {
		return 0, fmt.Errorf("%w: left=%d, want 1..%d", setops.ErrInvalidOperand, left, t.MaxRun())
	}
	if right < 1 || right > t.MaxRun() {
		return 0, fmt.Errorf("%w: right=%d, want 1..%d", setops.ErrInvalidOperand, right, t.MaxRun())
	}
	return ControlID(left<<t.Shift | right), nil
}

// Decode is the inverse of Encode. It fails if either recovered
// operand falls outside the valid run-length range, which happens
// exactly when the id was not produced by Encode.
func (t Tier) Decode(id ControlID) (left, right int, err error) {
	left = int(id) >> t.Shift
	right = int(id) & (1<<t.Shift - 1)
	if left < 1 || left > t.MaxRun() || right < 1 || right > t.MaxRun() {
		return 0, 0, fmt.Errorf("%w: control id %d", setops.ErrInvalidOperand, id)
	}
	return left, right, nil
}

// FormatID renders a control id in the tier's literal style: octal for
// sse, hex for avx2, decimal for avx512. Octal and hex literals are
// zero-padded to two digits so one digit reads as one operand.
func (t Tier) FormatID(id ControlID) string {
	switch t.IDBase {
	case 8:
		return fmt.Sprintf("0o%02o", int(id))
	case 16:
		return fmt.Sprintf("0x%02x", int(id))
	default:
		return strconv.Itoa(int(id))
	}
}
