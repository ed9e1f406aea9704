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
	setops "github.com/UNSW-database/simd-set-operations"
)

// VariantSet names an ordered group of variant identifiers compared
// against each other in one experiment.
type VariantSet struct {
	Name    string
	Members []string
}

// Experiment references a VariantSet and the dataset-variation axis
// the benchmark runner sweeps while measuring it. The runner matches
// these names against stored measurement results.
type Experiment struct {
	Name    string
	Dataset string
	Set     string
}

// compareAxes are the dataset parameters each comparison is swept over.
var compareAxes = []string{"size", "selectivity"}

// CompareSets groups the enumerated variants into per-algorithm
// comparison sets. Only SIMD entry points are compared, and only
// through writer visitors: the counter materializes no output to
// cross-check, and the scalar merges serve as baselines elsewhere.
// Members keep enumeration order (branch style, then visitor).
func CompareSets(cfg Config, vars []Variant) []VariantSet {
	var sets []VariantSet
	index := make(map[string]int)
	for _, v := range vars {
		if v.Feature == setops.FeatureNone {
			continue
		}
		spec, ok := cfg.Visitor(v.Visitor)
		if !ok || !spec.Writer {
			continue
		}
		base := v.Family
		if v.Width != "" {
			base += "_" + v.Width
		}
		name := "compare_" + base
		i, ok := index[name]
		if !ok {
			i = len(sets)
			index[name] = i
			sets = append(sets, VariantSet{Name: name})
		}
		sets[i].Members = append(sets[i].Members, v.Name)
	}
	return sets
}

// Experiments produces one experiment per comparison set and axis,
// referencing the generated two-set datasets by the naming scheme the
// benchmark runner expects.
func Experiments(sets []VariantSet) []Experiment {
	var out []Experiment
	for _, s := range sets {
		for _, axis := range compareAxes {
			out = append(out, Experiment{
				Name:    s.Name,
				Dataset: "2set_vary_" + axis,
				Set:     s.Name,
			})
		}
	}
	return out
}
