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

package variants

import (
	"fmt"
	"strings"

	setops "github.com/UNSW-database/simd-set-operations"
)

// Variant is one benchmark entry point: a single cell of the
// algorithm x width x branch-style x visitor matrix.
type Variant struct {
	Name    string // e.g. "shuffling_sse_br_lut"
	Callee  string // underlying algorithm function, e.g. "shuffling_sse_branch"
	Family  string
	Width   string // "" for scalar families
	Style   BranchStyle
	Visitor string // visitor kind
	Feature setops.Feature
}

// Enumerate expands the configuration into the ordered variant list:
// family, then width, then branch style, then visitor, each axis in
// declaration order. A variant's feature is the strictest of the
// family floor, the width's feature and the visitor's floor. A family
// referencing an undeclared width or visitor kind fails the whole run.
func Enumerate(cfg Config) ([]Variant, error) {
	var out []Variant
	for _, fam := range cfg.Families {
		widths := []WidthTag{{}}
		if len(fam.Widths) > 0 {
			widths = widths[:0]
			for _, name := range fam.Widths {
				w, ok := cfg.Width(name)
				if !ok {
					return nil, fmt.Errorf("%w: family %q references width %q",
						setops.ErrTemplate, fam.Name, name)
				}
				widths = append(widths, w)
			}
		}
		kinds := fam.Visitors
		if kinds == nil {
			for _, v := range cfg.Visitors {
				kinds = append(kinds, v.Kind)
			}
		}
		for _, w := range widths {
			for _, style := range fam.Styles {
				for _, kind := range kinds {
					v, ok := cfg.Visitor(kind)
					if !ok {
						return nil, fmt.Errorf("%w: family %q references visitor %q",
							setops.ErrTemplate, fam.Name, kind)
					}
					out = append(out, buildVariant(fam, w, style, v))
				}
			}
		}
	}
	return out, nil
}

func buildVariant(fam Family, w WidthTag, style BranchStyle, v VisitorSpec) Variant {
	base := fam.Name
	if w.Name != "" {
		base += "_" + w.Name
	}
	parts := []string{base}
	if tag := style.Tag(); tag != "" {
		parts = append(parts, tag)
	}
	parts = append(parts, v.Kind)

	feature := setops.Strictest(fam.Feature, w.Feature)
	feature = setops.Strictest(feature, v.Floor)

	return Variant{
		Name:    strings.Join(parts, "_"),
		Callee:  base + style.CalleeSuffix(),
		Family:  fam.Name,
		Width:   w.Name,
		Style:   style,
		Visitor: v.Kind,
		Feature: feature,
	}
}
