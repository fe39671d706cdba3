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

import "fmt"

// Component is a named entity with a finite ordered domain of modes and a
// parallel vector of prior probabilities. Assignable components are free
// variables of the diagnosis problem (typically hardware that can fail);
// non-assignable components are fixed inputs, fixed outputs, or
// intermediate variables whose values are determined by the model.
//
// Component identity is reference identity: two distinct *Component values
// with the same Name are distinct entities. Components are built once and
// are immutable during search.
type Component struct {
	Name       Name
	Domain     []int
	Priors     []float64
	Assignable bool
}

// NewComponent validates and constructs a Component.
//
// Invariants enforced: len(domain) == len(priors); domain is non-empty;
// domain values are distinct; every prior is in (0, 1]. If domain has a
// single value, Assignable is forced to false regardless of the assignable
// argument, per the single-mode-components-are-never-assignable rule.
func NewComponent(name string, domain []int, priors []float64, assignable bool) (*Component, error) {
	if len(domain) == 0 {
		return nil, &StructuralError{Component: name, Message: "domain must be non-empty"}
	}
	if len(domain) != len(priors) {
		return nil, &StructuralError{Component: name, Message: fmt.Sprintf("domain has %d modes but priors has %d entries", len(domain), len(priors))}
	}
	seen := make(map[int]bool, len(domain))
	for _, mode := range domain {
		if seen[mode] {
			return nil, &StructuralError{Component: name, Message: fmt.Sprintf("duplicate domain value %d", mode)}
		}
		seen[mode] = true
	}
	for i, p := range priors {
		if p <= 0 || p > 1 {
			return nil, &StructuralError{Component: name, Message: fmt.Sprintf("prior for mode %d must be in (0,1], got %v", domain[i], p)}
		}
	}

	if len(domain) == 1 {
		assignable = false
	}

	return &Component{
		Name:       MakeName(name),
		Domain:     append([]int{}, domain...),
		Priors:     append([]float64{}, priors...),
		Assignable: assignable,
	}, nil
}

func (c *Component) String() string {
	kind := "unassignable"
	if c.Assignable {
		kind = "assignable"
	}
	return fmt.Sprintf("(%s, %v, %v, %s)", c.Name.Value(), c.Domain, c.Priors, kind)
}

func (c *Component) indexOf(mode int) (int, bool) {
	for i, m := range c.Domain {
		if m == mode {
			return i, true
		}
	}
	return -1, false
}

// probOf returns the prior for mode, or 0 if mode is outside the domain.
func (c *Component) probOf(mode int) float64 {
	if idx, ok := c.indexOf(mode); ok {
		return c.Priors[idx]
	}
	return 0
}

func excluded(modes []int, exclude []int) []int {
	if len(exclude) == 0 {
		return modes
	}
	skip := make(map[int]bool, len(exclude))
	for _, m := range exclude {
		skip[m] = true
	}
	out := make([]int, 0, len(modes))
	for _, m := range modes {
		if !skip[m] {
			out = append(out, m)
		}
	}
	return out
}

// RemainingModes returns the component's domain modes, excluding any given
// in exclude.
func (c *Component) RemainingModes(exclude ...int) []int {
	return excluded(append([]int{}, c.Domain...), exclude)
}

// RemainingPropositions returns a Proposition for every remaining mode
// (domain minus exclude), each tagged with support.
func (c *Component) RemainingPropositions(support Support, exclude ...int) []Proposition {
	modes := c.RemainingModes(exclude...)
	props := make([]Proposition, 0, len(modes))
	for _, m := range modes {
		props = append(props, NewProposition(c, m, support))
	}
	return props
}

// MaxProb returns the maximum prior among the remaining modes (domain
// minus exclude). Returns an error if every mode is excluded.
func (c *Component) MaxProb(exclude ...int) (float64, error) {
	modes := c.RemainingModes(exclude...)
	if len(modes) == 0 {
		return 0, &StructuralError{Component: c.Name.Value(), Message: "no remaining modes to query max prior over"}
	}
	max := c.probOf(modes[0])
	for _, m := range modes[1:] {
		if p := c.probOf(m); p > max {
			max = p
		}
	}
	return max, nil
}

// MaxProposition returns the Proposition over the remaining domain (domain
// minus exclude) with maximum prior probability, tagged with support.
//
// When several modes tie for the maximum prior and biasMode1 is true, mode
// 1 is preferred if it is among the tied modes; otherwise the first tied
// mode (in domain order) is returned.
func (c *Component) MaxProposition(support Support, biasMode1 bool, exclude ...int) (Proposition, error) {
	modes := c.RemainingModes(exclude...)
	if len(modes) == 0 {
		return Proposition{}, &StructuralError{Component: c.Name.Value(), Message: "no remaining modes to query max proposition over"}
	}

	candidates := make([]Proposition, len(modes))
	for i, m := range modes {
		candidates[i] = NewProposition(c, m, support)
	}

	return BiasMode1(candidates, biasMode1)[0], nil
}
