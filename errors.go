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

// StructuralError reports a malformed Component, Clause, or Model — a
// precondition violated before any search could begin.
type StructuralError struct {
	Component string
	Clause    string
	Message   string
}

func (e *StructuralError) Error() string {
	switch {
	case e.Component != "" && e.Clause != "":
		return fmt.Sprintf("cdastar: structural error in clause %q, component %q: %s", e.Clause, e.Component, e.Message)
	case e.Component != "":
		return fmt.Sprintf("cdastar: structural error in component %q: %s", e.Component, e.Message)
	case e.Clause != "":
		return fmt.Sprintf("cdastar: structural error in clause %q: %s", e.Clause, e.Message)
	default:
		return fmt.Sprintf("cdastar: structural error: %s", e.Message)
	}
}

// IncompleteAssignmentError reports that a clause was tested against an
// assignment missing a binding for one of the components the clause
// references.
type IncompleteAssignmentError struct {
	Clause    string
	Component string
}

func (e *IncompleteAssignmentError) Error() string {
	return fmt.Sprintf("cdastar: clause %q references component %q, which has no binding in the assignment", e.Clause, e.Component)
}

// DuplicateAssignmentError reports that a raw proposition list bound the
// same component more than once while being converted into a PropSet.
type DuplicateAssignmentError struct {
	Component string
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("cdastar: component %q is bound more than once in the same assignment", e.Component)
}

var (
	_ error = (*StructuralError)(nil)
	_ error = (*IncompleteAssignmentError)(nil)
	_ error = (*DuplicateAssignmentError)(nil)
)
