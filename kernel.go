// Copyright 2025 The Authors
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

package cdastar

import (
	"fmt"
	"sort"
	"strings"
)

// Invert applies De Morgan's law to a conflict: for every component bound
// in conflict, every OTHER mode in that component's domain is a way to
// break the conflict. The result is disjunctive — any single patch
// resolves it — so it is a Patches list, not a PropSet.
func Invert(conflict PropSet) Patches {
	var out []Proposition
	for c, p := range conflict {
		for _, mode := range c.RemainingModes(p.Mode) {
			out = append(out, NewProposition(c, mode, KernelSupport))
		}
	}
	return dedupePatches(out)
}

// Extend folds a newly discovered conflict into the existing kernel
// frontier.
//
// Kernels already a subset of the inverted conflict D are carried forward
// unchanged (they already resolve this conflict too) and their literals
// are removed from the pool used to grow the rest. Every other kernel is
// grown by exactly one literal from what remains of D, for every literal
// whose component isn't already bound in that kernel. The result is
// deduplicated and pruned to keep only subset-minimal kernels.
func Extend(kernels []PropSet, conflict PropSet) []PropSet {
	d := Invert(conflict)

	if len(kernels) == 0 {
		out := make([]PropSet, 0, len(d))
		for _, p := range d {
			out = append(out, PropSet{p.Component: p})
		}
		return dedupeMinimalKernels(out)
	}

	remaining := append(Patches{}, d...)
	var resolved, unresolved []PropSet
	for _, k := range kernels {
		if isSubsetOfPatches(k, d) {
			resolved = append(resolved, k)
			remaining = remaining.RemoveAll(k.Slice())
		} else {
			unresolved = append(unresolved, k)
		}
	}

	out := append([]PropSet{}, resolved...)
	for _, k := range unresolved {
		for _, p := range remaining {
			if k.Has(p.Component) {
				continue
			}
			child := k.Clone()
			child[p.Component] = p
			out = append(out, child)
		}
	}

	return dedupeMinimalKernels(out)
}

func isSubsetOfPatches(k PropSet, d Patches) bool {
	for _, p := range k {
		if !d.Contains(p) {
			return false
		}
	}
	return true
}

// AllKernels folds every conflict in conflicts into a kernel frontier,
// starting from no kernels at all.
func AllKernels(conflicts []PropSet) []PropSet {
	var frontier []PropSet
	for _, c := range conflicts {
		frontier = Extend(frontier, c)
	}
	return frontier
}

// Score returns a kernel's relative likelihood: the product of the priors
// of its constituent propositions.
func Score(kernel PropSet) float64 {
	return kernel.Score()
}

func dedupeMinimalKernels(kernels []PropSet) []PropSet {
	var unique []PropSet
	for _, k := range kernels {
		dup := false
		for _, u := range unique {
			if k.Equal(u) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, k)
		}
	}

	var minimal []PropSet
	for i, k := range unique {
		dominated := false
		for j, other := range unique {
			if i == j {
				continue
			}
			if other.IsProperSubsetOf(k) {
				dominated = true
				break
			}
		}
		if !dominated {
			minimal = append(minimal, k)
		}
	}
	return minimal
}

func kernelKey(k PropSet) string {
	parts := make([]string, 0, len(k))
	for c, p := range k {
		parts = append(parts, fmt.Sprintf("%p:%d", c, p.Mode))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
