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

// Package variants enumerates the benchmark entry-point matrix:
// algorithm family x SIMD width x branch style x output visitor, in
// declaration order, from an immutable configuration value.
package variants

import (
	setops "github.com/UNSW-database/simd-set-operations"
)

// BranchStyle distinguishes the branch-free form of an algorithm from
// its data-dependent-branch form.
type BranchStyle int

const (
	// StyleBranchFree is the default form with no variant name tag.
	StyleBranchFree BranchStyle = iota

	// StyleBranching tags the variant name with "br" and calls the
	// algorithm's "_branch" form.
	StyleBranching
)

// Tag returns the variant-name fragment for the style.
func (s BranchStyle) Tag() string {
	if s == StyleBranching {
		return "br"
	}
	return ""
}

// CalleeSuffix returns the suffix appended to the underlying
// algorithm's function name for the style.
func (s BranchStyle) CalleeSuffix() string {
	if s == StyleBranching {
		return "_branch"
	}
	return ""
}

// WidthTag is one point on a family's SIMD width axis, carrying the
// instruction-set feature that width implies.
type WidthTag struct {
	Name    string
	Feature setops.Feature
}

// VisitorSpec describes one output-destination abstraction. Writer
// visitors materialize the intersection; the counter does not. Floor
// is the strictest feature the visitor itself needs, never silently
// dropped when combined with an algorithm's requirement.
type VisitorSpec struct {
	Kind   string // variant name fragment: "count", "lut", "comp"
	Type   string // emitted visitor type, e.g. "UnsafeLookupWriter<i32>"
	Elem   string // element type of the input runs
	Floor  setops.Feature
	Writer bool
}

// Family declares one algorithm family: its width axis (empty for
// scalar algorithms), the branch styles it implements, the visitor
// kinds it accepts (nil means every cataloged visitor) and a feature
// floor independent of width, used by families compiled for a fixed
// width such as the BMiss and QFilter kernels.
type Family struct {
	Name     string
	Widths   []string
	Styles   []BranchStyle
	Visitors []string
	Feature  setops.Feature
}

// CWrapper is a non-Cartesian extra entry point wrapping a C kernel
// with a slice-out signature.
type CWrapper struct {
	Name    string
	Callee  string
	Elem    string
	Feature setops.Feature
}

// Config is the full immutable enumerator configuration.
type Config struct {
	Widths    []WidthTag
	Visitors  []VisitorSpec
	Families  []Family
	CWrappers []CWrapper
}

// Width returns the width tag with the given name.
func (c Config) Width(name string) (WidthTag, bool) {
	for _, w := range c.Widths {
		if w.Name == name {
			return w, true
		}
	}
	return WidthTag{}, false
}

// Visitor returns the visitor spec with the given kind.
func (c Config) Visitor(kind string) (VisitorSpec, bool) {
	for _, v := range c.Visitors {
		if v.Kind == kind {
			return v, true
		}
	}
	return VisitorSpec{}, false
}

var bothStyles = []BranchStyle{StyleBranchFree, StyleBranching}

// DefaultConfig returns the benchmark suite's algorithm matrix: the
// scalar merges, the shuffling and broadcast families across all three
// SIMD widths, the fixed-width SSE and AVX-512 algorithms, and the C
// QFilter wrapper.
func DefaultConfig() Config {
	return Config{
		Widths: []WidthTag{
			{Name: "sse", Feature: setops.FeatureSSSE3},
			{Name: "avx2", Feature: setops.FeatureAVX2},
			{Name: "avx512", Feature: setops.FeatureAVX512F},
		},
		Visitors: []VisitorSpec{
			{Kind: "count", Type: "Counter", Elem: "i32"},
			{Kind: "lut", Type: "UnsafeLookupWriter<i32>", Elem: "i32", Writer: true},
			{Kind: "comp", Type: "UnsafeCompressWriter<i32>", Elem: "i32", Writer: true},
		},
		Families: []Family{
			{Name: "naive_merge", Styles: []BranchStyle{StyleBranchFree}},
			{Name: "branchless_merge", Styles: []BranchStyle{StyleBranchFree}},
			{Name: "shuffling", Widths: []string{"sse", "avx2", "avx512"}, Styles: bothStyles},
			{Name: "broadcast", Widths: []string{"sse", "avx2", "avx512"}, Styles: bothStyles},
			{Name: "bmiss", Styles: bothStyles, Feature: setops.FeatureSSSE3},
			{Name: "bmiss_sttni", Styles: bothStyles, Feature: setops.FeatureSSSE3},
			{Name: "qfilter", Styles: bothStyles, Feature: setops.FeatureSSSE3},
			{Name: "vp2intersect_emulation", Styles: bothStyles, Feature: setops.FeatureAVX512F},
		},
		CWrappers: []CWrapper{
			{Name: "qfilter_c", Callee: "qfilter_c", Elem: "i32", Feature: setops.FeatureSSSE3},
		},
	}
}
