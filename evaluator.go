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

import "errors"

// ErrNoCompletions is returned by CheckModel when given an empty
// completion list — there is nothing to test consistency against.
var ErrNoCompletions = errors.New("cdastar: no completions to check")

// TestClause evaluates clause against a complete assignment. If the
// assignment is missing a binding for any component the clause
// references, it returns an IncompleteAssignmentError. If the clause is
// satisfied (some disjunct's binding matches), it returns a nil, nil
// conflict. Otherwise it returns the conflict: the assignable-component
// propositions of the clause bound in assignment, responsible for the
// contradiction.
//
// This is the canonical, purely structural test: it never inspects or
// records how a clause came to be contradicted beyond the propositions
// themselves.
func TestClause(clause *Clause, assignment PropSet) (PropSet, error) {
	for _, p := range clause.Props {
		if !assignment.Has(p.Component) {
			return nil, &IncompleteAssignmentError{Clause: clause.Name.Value(), Component: p.Component.Name.Value()}
		}
	}

	for _, p := range clause.Props {
		if bound, _ := assignment.Get(p.Component); bound.Mode == p.Mode {
			return nil, nil
		}
	}

	conflict := make(PropSet)
	for _, p := range clause.Props {
		if !p.Component.Assignable {
			continue
		}
		bound, _ := assignment.Get(p.Component)
		conflict[p.Component] = bound
	}
	return conflict, nil
}

// CheckModel tests every clause of model against every completion in
// completions. If any single completion satisfies every clause, the
// model is consistent for the (shared) assignable bindings and CheckModel
// returns a nil conflict. Otherwise it returns the union, across every
// completion and every contradicted clause, of the assignable-component
// propositions responsible — the conflict to invert next.
func CheckModel(model *Model, completions []PropSet) (PropSet, error) {
	if len(completions) == 0 {
		return nil, ErrNoCompletions
	}

	union := make(PropSet)
	for _, assignment := range completions {
		satisfiable := true
		perCompletion := make(PropSet)
		for _, clause := range model.Clauses {
			conflict, err := TestClause(clause, assignment)
			if err != nil {
				return nil, err
			}
			if conflict == nil {
				continue
			}
			satisfiable = false
			for c, p := range conflict {
				perCompletion[c] = p
			}
		}
		if satisfiable {
			return nil, nil
		}
		for c, p := range perCompletion {
			union[c] = p
		}
	}
	return union, nil
}
