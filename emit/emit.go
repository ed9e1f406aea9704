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

// Package emit renders the generator's intermediate representations
// (variants, dispatch entries, experiment descriptors) into source
// text. Rendering is pure template substitution: ordering and range
// partitions are preserved verbatim, and a reference to anything
// absent from the catalogs fails the render instead of being dropped.
package emit

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	setops "github.com/UNSW-database/simd-set-operations"
	"github.com/UNSW-database/simd-set-operations/dispatch"
	"github.com/UNSW-database/simd-set-operations/variants"
)

// Banner returns a titled comment separating artifacts in combined
// output, e.g. Banner("dispatch table") -> "// ===== Dispatch Table =====".
func Banner(title string) string {
	return fmt.Sprintf("// ===== %s =====\n", cases.Title(language.English).String(title))
}

func guard(b *bytes.Buffer, f setops.Feature) {
	if f != setops.FeatureNone {
		fmt.Fprintf(b, "#[cfg(all(feature = \"simd\", target_feature = %q))]\n", f.String())
	}
}

// Variants renders one entry-point declaration per variant, gated by
// its feature predicate, under the module header the benchmark crate
// expects. The C wrappers follow the Cartesian matrix.
func Variants(cfg variants.Config, vars []variants.Variant) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("use crate::intersect::*;\n")
	b.WriteString("use crate::visitor::*;\n")

	for _, v := range vars {
		spec, ok := cfg.Visitor(v.Visitor)
		if !ok {
			return nil, fmt.Errorf("%w: variant %q uses visitor %q",
				setops.ErrTemplate, v.Name, v.Visitor)
		}
		b.WriteByte('\n')
		guard(&b, v.Feature)
		fmt.Fprintf(&b, "pub fn %s_mono(set_a: &[%s], set_b: &[%s], visitor: &mut %s)\n",
			v.Name, spec.Elem, spec.Elem, spec.Type)
		fmt.Fprintf(&b, "{\n    %s(set_a, set_b, visitor);\n}\n", v.Callee)
	}

	for _, c := range cfg.CWrappers {
		b.WriteByte('\n')
		guard(&b, c.Feature)
		fmt.Fprintf(&b, "pub fn %s_mono(set_a: &[%s], set_b: &[%s], set_c: &mut [%s]) -> usize\n",
			c.Name, c.Elem, c.Elem, c.Elem)
		fmt.Fprintf(&b, "{\n    %s(set_a, set_b, set_c)\n}\n", c.Callee)
	}
	return b.Bytes(), nil
}

// Dispatch renders one match arm per table entry, ids formatted in the
// tier's literal style and operands bound per the entry's roles. The
// arms cover the builder's partition exactly, so the consuming match
// needs no catch-all.
func Dispatch(t dispatch.Tier, cat *dispatch.Catalog, entries []dispatch.Entry) ([]byte, error) {
	var b bytes.Buffer
	for _, e := range entries {
		if !cat.Contains(e.Kernel.Key) {
			return nil, fmt.Errorf("%w: kernel %s", setops.ErrTemplate, e.Kernel.Name())
		}
		pat := t.FormatID(e.Lo)
		if e.Lo != e.Hi {
			pat += "..=" + t.FormatID(e.Hi)
		}
		fmt.Fprintf(&b, "%s => unsafe { %s::%s(%s, %s, visitor) },\n",
			pat, t.KernelModule(), e.Kernel.Name(), e.Small, e.Small.Other())
	}
	return b.Bytes(), nil
}

// Experiments renders the comparison sets and experiment records the
// benchmark runner reads: one algorithm-set line per VariantSet, then
// one [[experiment]] block per set and dataset axis.
func Experiments(sets []variants.VariantSet, exps []variants.Experiment) []byte {
	var b bytes.Buffer
	for _, s := range sets {
		quoted := make([]string, len(s.Members))
		for i, m := range s.Members {
			quoted[i] = fmt.Sprintf("%q", m)
		}
		fmt.Fprintf(&b, "%s = [ %s ]\n", s.Name, strings.Join(quoted, ", "))
	}
	for _, e := range exps {
		fmt.Fprintf(&b, "\n[[experiment]]\nname = %q\ndataset = %q\nalgorithm_set = %q\n",
			e.Name, e.Dataset, e.Set)
	}
	return b.Bytes()
}
