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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAll(t *testing.T, tier Tier) (*Catalog, []Entry) {
	t.Helper()
	cat := NewCatalog(tier)
	entries, err := BuildTable(tier, cat)
	require.NoError(t, err)
	return cat, entries
}

func TestBuildTableCoversEveryPairExactlyOnce(t *testing.T) {
	for _, tier := range allTiers() {
		t.Run(tier.Name, func(t *testing.T) {
			_, entries := buildAll(t, tier)
			for left := 1; left <= tier.MaxRun(); left++ {
				for right := 1; right <= tier.MaxRun(); right++ {
					id, err := tier.Encode(left, right)
					require.NoError(t, err)
					hits := 0
					for _, e := range entries {
						if e.Contains(id) {
							hits++
						}
					}
					require.Equal(t, 1, hits, "(%d,%d) id %d covered %d times", left, right, id, hits)
				}
			}
		})
	}
}

func TestBuildTableSortedDisjointReachable(t *testing.T) {
	for _, tier := range allTiers() {
		t.Run(tier.Name, func(t *testing.T) {
			_, entries := buildAll(t, tier)
			require.NotEmpty(t, entries)
			for i, e := range entries {
				assert.LessOrEqual(t, e.Lo, e.Hi)
				if i > 0 {
					assert.Greater(t, e.Lo, entries[i-1].Hi, "entries overlap or are unsorted at %d", i)
				}
				// Every id inside a range must decode to a valid pair:
				// ranges never leak into the unreachable gaps between rows.
				for id := e.Lo; id <= e.Hi; id++ {
					_, _, err := tier.Decode(id)
					require.NoError(t, err, "entry %d contains unreachable id %d", i, id)
				}
			}
			first, last := entries[0], entries[len(entries)-1]
			lo, err := tier.Encode(1, 1)
			require.NoError(t, err)
			hi, err := tier.Encode(tier.MaxRun(), tier.MaxRun())
			require.NoError(t, err)
			assert.Equal(t, lo, first.Lo)
			assert.Equal(t, hi, last.Hi)
		})
	}
}

func TestBuildTableMinimal(t *testing.T) {
	// Numerically adjacent ranges must differ in kernel or roles,
	// otherwise the compression missed a merge.
	for _, tier := range allTiers() {
		_, entries := buildAll(t, tier)
		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			if prev.Hi+1 == cur.Lo {
				mergeable := prev.Kernel.Key == cur.Kernel.Key && prev.Small == cur.Small
				assert.False(t, mergeable, "%s: entries %d and %d should have merged", tier.Name, i-1, i)
			}
		}
	}
}

func TestClassifySymmetry(t *testing.T) {
	for _, tier := range allTiers() {
		cat := NewCatalog(tier)
		for left := 1; left <= tier.MaxRun(); left++ {
			for right := 1; right <= tier.MaxRun(); right++ {
				k1, s1, err := Classify(tier, cat, left, right)
				require.NoError(t, err)
				k2, s2, err := Classify(tier, cat, right, left)
				require.NoError(t, err)
				assert.Equal(t, k1.Key, k2.Key, "(%d,%d)", left, right)
				if left != right {
					assert.Equal(t, s1.Other(), s2, "(%d,%d)", left, right)
				}
			}
		}
	}
}

func TestClassifyTieKeepsLeftSmall(t *testing.T) {
	tier := SSETier()
	cat := NewCatalog(tier)
	for n := 1; n <= tier.MaxRun(); n++ {
		_, side, err := Classify(tier, cat, n, n)
		require.NoError(t, err)
		assert.Equal(t, SideLeft, side, "tie at %d", n)
	}
}

func TestClassifyBucketBoundary(t *testing.T) {
	for _, tier := range allTiers() {
		cat := NewCatalog(tier)

		k, _, err := Classify(tier, cat, 1, tier.Width)
		require.NoError(t, err)
		assert.Equal(t, tier.Width, k.Key.LargeWidth, "%s: large == Width stays narrow", tier.Name)

		k, _, err = Classify(tier, cat, 1, tier.Width+1)
		require.NoError(t, err)
		assert.Equal(t, 2*tier.Width, k.Key.LargeWidth, "%s: large == Width+1 widens", tier.Name)
	}
}

func TestBuildTableSSEKnownEntries(t *testing.T) {
	tier := SSETier()
	_, entries := buildAll(t, tier)

	byLo := make(map[ControlID]Entry)
	for _, e := range entries {
		byLo[e.Lo] = e
	}

	tests := []struct {
		lo, hi ControlID
		kernel string
		small  Side
	}{
		{0o11, 0o14, "sse_1x4", SideLeft},
		{0o15, 0o17, "sse_1x8", SideLeft},
		{0o21, 0o21, "sse_1x4", SideRight},
		{0o44, 0o44, "sse_4x4", SideLeft},
		{0o45, 0o47, "sse_4x8", SideLeft},
		{0o66, 0o67, "sse_6x8", SideLeft},
		{0o76, 0o76, "sse_6x8", SideRight},
		{0o77, 0o77, "sse_7x8", SideLeft},
	}

	for _, tt := range tests {
		e, ok := byLo[tt.lo]
		require.True(t, ok, "no entry starting at %s", tier.FormatID(tt.lo))
		assert.Equal(t, tt.hi, e.Hi, "entry at %s", tier.FormatID(tt.lo))
		assert.Equal(t, tt.kernel, e.Kernel.Name(), "entry at %s", tier.FormatID(tt.lo))
		assert.Equal(t, tt.small, e.Small, "entry at %s", tier.FormatID(tt.lo))
	}
}

func TestEntriesRoundTripRoles(t *testing.T) {
	// Decoding any range bound must classify back to the entry's own
	// kernel and role assignment.
	for _, tier := range allTiers() {
		cat, entries := buildAll(t, tier)
		for _, e := range entries {
			for _, id := range []ControlID{e.Lo, e.Hi} {
				left, right, err := tier.Decode(id)
				require.NoError(t, err)
				k, side, err := Classify(tier, cat, left, right)
				require.NoError(t, err)
				assert.Equal(t, e.Kernel.Key, k.Key)
				assert.Equal(t, e.Small, side)
			}
		}
	}
}

func TestBuildTableDeterministic(t *testing.T) {
	tier := AVX2Tier()
	_, a := buildAll(t, tier)
	_, b := buildAll(t, tier)
	assert.Equal(t, a, b)
}
