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

	setops "github.com/UNSW-database/simd-set-operations"
)

// KernelKey identifies a kernel specialized for a fixed small operand
// length and a fixed large operand width bucket.
type KernelKey struct {
	Small      int // exact small operand run length
	LargeWidth int // Width or 2*Width
}

// Kernel is one catalog entry: a key plus the instruction-set feature
// the kernel body requires. Kernel bodies themselves are supplied by
// the benchmark suite; the catalog only names them.
type Kernel struct {
	Key     KernelKey
	Tier    string
	Feature setops.Feature
}

// Name returns the kernel's function name, e.g. "sse_1x8".
func (k Kernel) Name() string {
	return fmt.Sprintf("%s_%dx%d", k.Tier, k.Key.Small, k.Key.LargeWidth)
}

// Catalog is the immutable registry of kernels available to one tier.
type Catalog struct {
	tier    Tier
	byKey   map[KernelKey]Kernel
	ordered []Kernel
}

// NewCatalog registers the full kernel set for a tier: (small, Width)
// for small in [1, Width] and (small, 2*Width) for small in
// [1, 2*Width-1]. Together these cover every (min, max-bucket) pair the
// table builder can reach.
func NewCatalog(t Tier) *Catalog {
	c := &Catalog{tier: t, byKey: make(map[KernelKey]Kernel)}
	for small := 1; small <= t.Width; small++ {
		c.add(KernelKey{Small: small, LargeWidth: t.Width})
	}
	for small := 1; small <= 2*t.Width-1; small++ {
		c.add(KernelKey{Small: small, LargeWidth: 2 * t.Width})
	}
	return c
}

func (c *Catalog) add(key KernelKey) {
	k := Kernel{Key: key, Tier: c.tier.Name, Feature: c.tier.Feature}
	c.byKey[key] = k
	c.ordered = append(c.ordered, k)
}

// Lookup returns the kernel for a (small, largeWidth) pair.
func (c *Catalog) Lookup(small, largeWidth int) (Kernel, error) {
	k, ok := c.byKey[KernelKey{Small: small, LargeWidth: largeWidth}]
	if !ok {
		return Kernel{}, fmt.Errorf("%w: %s_%dx%d", setops.ErrMissingKernel,
			c.tier.Name, small, largeWidth)
	}
	return k, nil
}

// Contains reports whether the catalog holds a kernel with this key.
func (c *Catalog) Contains(key KernelKey) bool {
	_, ok := c.byKey[key]
	return ok
}

// Kernels returns the catalog entries in registration order.
func (c *Catalog) Kernels() []Kernel {
	out := make([]Kernel, len(c.ordered))
	copy(out, c.ordered)
	return out
}
