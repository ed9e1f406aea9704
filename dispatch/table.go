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

// Side names a syntactic operand of the generated dispatch site.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the operand binding name used in kernel invocations.
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Other returns the opposite operand.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Entry maps an inclusive ControlID range to one kernel. Small records
// which syntactic operand holds the small run; the other side is bound
// to the kernel's large operand.
type Entry struct {
	Lo, Hi ControlID
	Kernel Kernel
	Small  Side
}

// Contains reports whether the entry's range covers id.
func (e Entry) Contains(id ControlID) bool {
	return e.Lo <= id && id <= e.Hi
}

// Classify selects the kernel and operand roles for one run-length
// pair. The smaller run is the small operand; on a tie the left
// operand is treated as small, matching the generated kernel tables
// of the benchmark suite. The large operand width is bucketed to
// Width or 2*Width.
func Classify(t Tier, cat *Catalog, left, right int) (Kernel, Side, error) {
	small, smallSide, largeRaw := left, SideLeft, right
	if right < left {
		small, smallSide, largeRaw = right, SideRight, left
	}
	largeWidth := t.Width
	if largeRaw > t.Width {
		largeWidth = 2 * t.Width
	}
	k, err := cat.Lookup(small, largeWidth)
	if err != nil {
		return Kernel{}, 0, err
	}
	return k, smallSide, nil
}

// BuildTable classifies every (left, right) pair in [1, 2*Width-1]**2
// and compresses the pointwise result into the minimal ascending list
// of maximal contiguous ControlID ranges sharing a (kernel, roles)
// pair. The ranges are sorted, pairwise disjoint, and cover exactly
// the ids reachable through Encode over the declared domain, so a
// switch generated from them is exhaustive by construction.
func BuildTable(t Tier, cat *Catalog) ([]Entry, error) {
	var entries []Entry
	for left := 1; left <= t.MaxRun(); left++ {
		for right := 1; right <= t.MaxRun(); right++ {
			id, err := t.Encode(left, right)
			if err != nil {
				return nil, err
			}
			k, side, err := Classify(t, cat, left, right)
			if err != nil {
				return nil, err
			}
			// Row-major iteration visits ids in ascending order, so a
			// new id either extends the last range or starts a new one.
			if n := len(entries); n > 0 {
				last := &entries[n-1]
				if last.Hi+1 == id && last.Kernel.Key == k.Key && last.Small == side {
					last.Hi = id
					continue
				}
			}
			entries = append(entries, Entry{Lo: id, Hi: id, Kernel: k, Small: side})
		}
	}
	return entries, nil
}
