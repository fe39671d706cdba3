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

// ClauseID identifies a Clause within the arena of the Model that owns it.
// A Proposition's Support references a clause by ClauseID, never by a
// pointer back into the clause itself.
type ClauseID int

// Clause is a disjunction of propositions: at least one of Props must
// hold for the clause to be satisfied by an assignment.
type Clause struct {
	ID    ClauseID
	Name  Name
	Props []Proposition
}

func (c *Clause) String() string {
	return fmt.Sprintf("%s: %v", c.Name.Value(), c.Props)
}

// ClauseArena constructs Clauses and assigns each a unique ClauseID,
// tagging every proposition passed to NewClause with that id's
// ClauseSupport.
type ClauseArena struct {
	next    ClauseID
	clauses []*Clause
}

// NewClauseArena returns an empty arena.
func NewClauseArena() *ClauseArena {
	return &ClauseArena{}
}

// NewClause builds a clause named name from props, assigns it the next
// ClauseID, and retags each proposition's Support to reference that id.
func (a *ClauseArena) NewClause(name string, props ...Proposition) *Clause {
	id := a.next
	a.next++

	tagged := make([]Proposition, len(props))
	for i, p := range props {
		p.Support = ClauseSupport(id)
		tagged[i] = p
	}

	c := &Clause{ID: id, Name: MakeName(name), Props: tagged}
	a.clauses = append(a.clauses, c)
	return c
}

// Clauses returns every clause built by this arena, in construction order.
func (a *ClauseArena) Clauses() []*Clause {
	return append([]*Clause{}, a.clauses...)
}
