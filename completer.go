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

import "log/slog"

// Complete expands a partial assignment into every complete assignment
// over model's components: the Cartesian product of the remaining
// domains of every component not already bound in partial, each combined
// with partial unchanged.
//
// logger, if non-nil, receives a warning for every assignable component
// missing from partial — assignable components are normally seeded by
// the caller before completion, so a missing one usually signals an
// incomplete seed rather than an intentional free variable.
func Complete(model *Model, partial PropSet, logger *slog.Logger) ([]PropSet, error) {
	var missing []*Component
	for _, c := range model.Components {
		if !partial.Has(c) {
			if c.Assignable && logger != nil {
				logger.Warn("assignable component missing from partial assignment", "component", c.Name.Value())
			}
			missing = append(missing, c)
		}
	}

	if len(missing) == 0 {
		return []PropSet{partial.Clone()}, nil
	}

	domains := make([][]Proposition, len(missing))
	for i, c := range missing {
		domains[i] = c.RemainingPropositions(GivenSupport)
	}

	combos := cartesianProduct(domains)
	out := make([]PropSet, 0, len(combos))
	for _, combo := range combos {
		full := partial.Clone()
		for _, p := range combo {
			full[p.Component] = p
		}
		out = append(out, full)
	}
	return out, nil
}

// cartesianProduct returns every combination picking exactly one element
// from each slice in domains, preserving domains' order.
func cartesianProduct(domains [][]Proposition) [][]Proposition {
	if len(domains) == 0 {
		return [][]Proposition{{}}
	}

	rest := cartesianProduct(domains[1:])
	out := make([][]Proposition, 0, len(domains[0])*len(rest))
	for _, p := range domains[0] {
		for _, combo := range rest {
			next := make([]Proposition, 0, len(combo)+1)
			next = append(next, p)
			next = append(next, combo...)
			out = append(out, next)
		}
	}
	return out
}
