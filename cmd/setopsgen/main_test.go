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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	setops "github.com/UNSW-database/simd-set-operations"
	"github.com/UNSW-database/simd-set-operations/dispatch"
)

func TestParseArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		want    artifactSet
		wantErr bool
	}{
		{"all", "variants,dispatch,experiments", artifactSet{true, true, true}, false},
		{"single", "dispatch", artifactSet{dispatch: true}, false},
		{"spaces", " variants , dispatch ", artifactSet{variants: true, dispatch: true}, false},
		{"unknown", "variants,plots", artifactSet{}, true},
		{"empty", "", artifactSet{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArtifacts(tt.list)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunInvalidTier(t *testing.T) {
	err := run("neon", "dispatch", "")
	require.ErrorIs(t, err, setops.ErrInvalidWidthTier)
}

func TestRenderAllArtifacts(t *testing.T) {
	tier, err := dispatch.GetTier("sse")
	require.NoError(t, err)

	out, err := render(tier, artifactSet{variants: true, dispatch: true, experiments: true})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "// ===== Variant Entry Points =====")
	assert.Contains(t, text, "// ===== Sse Dispatch Table =====")
	assert.Contains(t, text, "// ===== Experiments =====")
	assert.Contains(t, text, "pub fn qfilter_br_comp_mono")
	assert.Contains(t, text, "0o77 => unsafe { kernels_sse::sse_7x8(left, right, visitor) },")
	assert.Contains(t, text, "algorithm_set = \"compare_vp2intersect_emulation\"")
}

func TestRenderIdempotent(t *testing.T) {
	tier, err := dispatch.GetTier("avx2")
	require.NoError(t, err)

	all := artifactSet{variants: true, dispatch: true, experiments: true}
	a, err := render(tier, all)
	require.NoError(t, err)
	b, err := render(tier, all)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.rs")
	require.NoError(t, run("sse", "dispatch", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// ===== Sse Dispatch Table ====="))
	assert.Contains(t, string(data), "0o44 => unsafe { kernels_sse::sse_4x4(left, right, visitor) },")
}
