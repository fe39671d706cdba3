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

// Model is a CNF model: a fixed set of clauses over a set of components
// derived by scanning those clauses. A Model is built once and never
// edited afterward — there is no incremental-model-editing operation.
type Model struct {
	Clauses    []*Clause
	Components []*Component
}

// NewModel derives a Model from clauses. Components is populated with
// every distinct component referenced by any clause, in first-appearance
// order.
func NewModel(clauses []*Clause) (*Model, error) {
	if len(clauses) == 0 {
		return nil, &StructuralError{Message: "model must have at least one clause"}
	}

	seen := make(map[*Component]bool)
	var components []*Component
	for _, cl := range clauses {
		if len(cl.Props) == 0 {
			return nil, &StructuralError{Clause: cl.Name.Value(), Message: "clause must have at least one proposition"}
		}
		for _, p := range cl.Props {
			if !seen[p.Component] {
				seen[p.Component] = true
				components = append(components, p.Component)
			}
		}
	}

	return &Model{
		Clauses:    append([]*Clause{}, clauses...),
		Components: components,
	}, nil
}

// AssignableComponents returns the subset of m.Components that are
// assignable, in Components order.
func (m *Model) AssignableComponents() []*Component {
	out := make([]*Component, 0, len(m.Components))
	for _, c := range m.Components {
		if c.Assignable {
			out = append(out, c)
		}
	}
	return out
}
