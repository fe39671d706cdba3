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
)

// SupportKind classifies why a Proposition is present in an assignment.
type SupportKind int

const (
	// SupportGiven marks a proposition bound because it is an observed
	// input or output, supplied by the caller.
	SupportGiven SupportKind = iota
	// SupportKernel marks a proposition bound because a kernel diagnosis
	// assigned it.
	SupportKernel
	// SupportClause marks a proposition that is a disjunct of some clause
	// (used for the members of Clause.Props themselves).
	SupportClause
)

func (k SupportKind) String() string {
	switch k {
	case SupportGiven:
		return "given"
	case SupportKernel:
		return "kernel"
	case SupportClause:
		return "clause"
	default:
		return "unknown"
	}
}

// Support is a tagged variant recording the provenance of a Proposition.
// It is never an object-graph back-reference into a *Clause: a clause is
// referenced by its id, resolved against the owning Model's arena.
type Support struct {
	Kind     SupportKind
	ClauseID ClauseID
}

// GivenSupport tags a proposition as an observed input or output.
var GivenSupport = Support{Kind: SupportGiven}

// KernelSupport tags a proposition as bound by a kernel diagnosis.
var KernelSupport = Support{Kind: SupportKernel}

// ClauseSupport tags a proposition as a disjunct of the clause with the
// given id.
func ClauseSupport(id ClauseID) Support {
	return Support{Kind: SupportClause, ClauseID: id}
}

// Proposition is a single (component, mode) binding, carrying the prior
// probability of that mode and its provenance.
//
// Identity and equality of a Proposition — for set membership and map
// keys — is (Component, Mode) only; Support never participates.
type Proposition struct {
	Component *Component
	Mode      int
	Prob      float64
	Support   Support
}

// NewProposition builds a Proposition for (c, mode), looking up the prior
// from c and tagging it with support.
func NewProposition(c *Component, mode int, support Support) Proposition {
	return Proposition{Component: c, Mode: mode, Prob: c.probOf(mode), Support: support}
}

func (p Proposition) String() string {
	return fmt.Sprintf("%s=%d", p.Component.Name.Value(), p.Mode)
}

// sameBinding reports whether p and q bind the same component to the same
// mode, ignoring Support and Prob.
func (p Proposition) sameBinding(q Proposition) bool {
	return p.Component == q.Component && p.Mode == q.Mode
}

// PropSet is a set of propositions with at most one entry per component,
// keyed by component identity. It is the shared representation for
// candidate assignments, complete assignments, and kernels.
type PropSet map[*Component]Proposition

// NewPropSet builds a PropSet from a list of propositions, reporting a
// DuplicateAssignmentError if any component is bound more than once.
func NewPropSet(props ...Proposition) (PropSet, error) {
	set := make(PropSet, len(props))
	for _, p := range props {
		if _, exists := set[p.Component]; exists {
			return nil, &DuplicateAssignmentError{Component: p.Component.Name.Value()}
		}
		set[p.Component] = p
	}
	return set, nil
}

// Clone returns a shallow copy of s.
func (s PropSet) Clone() PropSet {
	out := make(PropSet, len(s))
	for c, p := range s {
		out[c] = p
	}
	return out
}

// Get returns the proposition bound to c, if any.
func (s PropSet) Get(c *Component) (Proposition, bool) {
	p, ok := s[c]
	return p, ok
}

// Has reports whether s has a binding for c.
func (s PropSet) Has(c *Component) bool {
	_, ok := s[c]
	return ok
}

// Components returns the bound components, in no particular order.
func (s PropSet) Components() []*Component {
	out := make([]*Component, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

// Slice returns the propositions in s, sorted by component name (then by
// mode) for deterministic output.
func (s PropSet) Slice() []Proposition {
	out := make([]Proposition, 0, len(s))
	for _, p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := out[i].Component.Name.Value(), out[j].Component.Name.Value()
		if ni != nj {
			return ni < nj
		}
		return out[i].Mode < out[j].Mode
	})
	return out
}

// Equal reports whether s and other bind exactly the same (component,
// mode) pairs.
func (s PropSet) Equal(other PropSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c, p := range s {
		op, ok := other[c]
		if !ok || op.Mode != p.Mode {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every binding in s also appears in other.
func (s PropSet) IsSubsetOf(other PropSet) bool {
	for c, p := range s {
		op, ok := other[c]
		if !ok || op.Mode != p.Mode {
			return false
		}
	}
	return true
}

// IsProperSubsetOf reports whether s is a subset of other and strictly
// smaller.
func (s PropSet) IsProperSubsetOf(other PropSet) bool {
	return len(s) < len(other) && s.IsSubsetOf(other)
}

// Score returns the product of the priors of every proposition in s — the
// relative likelihood of this assignment.
func (s PropSet) Score() float64 {
	score := 1.0
	for _, p := range s {
		score *= p.Prob
	}
	return score
}

// Patches is a deduplicated list of propositions that may hold several
// entries for the same component — the disjunctive candidate pool
// produced by Invert, where "any one of these would break the conflict".
type Patches []Proposition

// Contains reports whether p (by component+mode) is present in d.
func (d Patches) Contains(p Proposition) bool {
	for _, q := range d {
		if q.sameBinding(p) {
			return true
		}
	}
	return false
}

// RemoveAll returns a copy of d with every proposition in props removed
// (matched by component+mode).
func (d Patches) RemoveAll(props []Proposition) Patches {
	out := make(Patches, 0, len(d))
	for _, q := range d {
		drop := false
		for _, p := range props {
			if q.sameBinding(p) {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, q)
		}
	}
	return out
}

func dedupePatches(props []Proposition) Patches {
	out := make(Patches, 0, len(props))
	for _, p := range props {
		if !Patches(out).Contains(p) {
			out = append(out, p)
		}
	}
	return out
}
