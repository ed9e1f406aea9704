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

// Command setopsgen generates the source artifacts of the SIMD
// set-intersection benchmark suite: the entry-point variant matrix,
// the fixed-width kernel dispatch table, and the experiment records
// the benchmark runner consumes.
//
// Usage:
//
//	setopsgen avx2                          # all artifacts for the 8-lane tier
//	setopsgen -emit dispatch sse            # dispatch table only
//	setopsgen -output gen.rs host           # widest tier this CPU supports
//
// The width tier argument is required: sse, avx2, avx512, or host.
// Output goes to standard output unless -output names a file. A
// configuration error aborts the run before anything is written; the
// generator never produces partial output.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/UNSW-database/simd-set-operations/dispatch"
	"github.com/UNSW-database/simd-set-operations/emit"
	"github.com/UNSW-database/simd-set-operations/internal/cpuinfo"
	"github.com/UNSW-database/simd-set-operations/variants"
)

var (
	emitFlag = flag.String("emit", "variants,dispatch,experiments",
		"Comma-separated artifacts to emit (variants,dispatch,experiments)")
	output = flag.String("output", "",
		"Output file (default: standard output)")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: setopsgen [flags] <tier>\n\ntier: %s, or host\n\n",
		strings.Join(dispatch.AvailableTiers(), ", "))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one width tier argument is required\n\n")
		usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *emitFlag, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(tierName, emitList, outPath string) error {
	if tierName == "host" {
		name, ok := cpuinfo.WidestTier()
		if !ok {
			return fmt.Errorf("host CPU supports no SIMD tier")
		}
		tierName = name
	}
	tier, err := dispatch.GetTier(tierName)
	if err != nil {
		return err
	}
	arts, err := parseArtifacts(emitList)
	if err != nil {
		return err
	}

	// Render everything before touching the sink so a failure leaves
	// no partial output behind.
	out, err := render(tier, arts)
	if err != nil {
		return err
	}

	sink := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		sink = f
	}
	_, err = sink.Write(out)
	return err
}

type artifactSet struct {
	variants    bool
	dispatch    bool
	experiments bool
}

func parseArtifacts(s string) (artifactSet, error) {
	var arts artifactSet
	for _, p := range strings.Split(s, ",") {
		switch strings.TrimSpace(p) {
		case "variants":
			arts.variants = true
		case "dispatch":
			arts.dispatch = true
		case "experiments":
			arts.experiments = true
		case "":
		default:
			return artifactSet{}, fmt.Errorf("unknown artifact %q (valid: variants, dispatch, experiments)", p)
		}
	}
	if arts == (artifactSet{}) {
		return artifactSet{}, fmt.Errorf("no artifacts selected")
	}
	return arts, nil
}

func render(tier dispatch.Tier, arts artifactSet) ([]byte, error) {
	cfg := variants.DefaultConfig()
	var b bytes.Buffer

	vars, err := variants.Enumerate(cfg)
	if err != nil {
		return nil, err
	}

	if arts.variants {
		text, err := emit.Variants(cfg, vars)
		if err != nil {
			return nil, err
		}
		b.WriteString(emit.Banner("variant entry points"))
		b.Write(text)
	}

	if arts.dispatch {
		cat := dispatch.NewCatalog(tier)
		entries, err := dispatch.BuildTable(tier, cat)
		if err != nil {
			return nil, err
		}
		text, err := emit.Dispatch(tier, cat, entries)
		if err != nil {
			return nil, err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(emit.Banner(tier.Name + " dispatch table"))
		b.Write(text)
	}

	if arts.experiments {
		sets := variants.CompareSets(cfg, vars)
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(emit.Banner("experiments"))
		b.Write(emit.Experiments(sets, variants.Experiments(sets)))
	}
	return b.Bytes(), nil
}
