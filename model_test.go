package cdastar

import "testing"

func TestNewModelRejectsNoClauses(t *testing.T) {
	if _, err := NewModel(nil); err == nil {
		t.Fatalf("expected error for model with no clauses")
	}
}

func TestNewModelRejectsEmptyClause(t *testing.T) {
	empty := &Clause{ID: 0, Name: MakeName("empty")}
	if _, err := NewModel([]*Clause{empty}); err == nil {
		t.Fatalf("expected error for clause with no propositions")
	}
}

func TestNewModelDerivesComponents(t *testing.T) {
	p1 := mustComponent(t, "P1", []int{0, 1}, []float64{0.9, 0.1}, true)
	p2 := mustComponent(t, "P2", []int{0, 1}, []float64{0.8, 0.2}, true)

	arena := NewClauseArena()
	c1 := arena.NewClause("c1", NewProposition(p1, 1, GivenSupport), NewProposition(p2, 0, GivenSupport))
	c2 := arena.NewClause("c2", NewProposition(p1, 0, GivenSupport))

	model, err := NewModel([]*Clause{c1, c2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.Components) != 2 {
		t.Fatalf("expected 2 derived components, got %d", len(model.Components))
	}
	if model.Components[0] != p1 || model.Components[1] != p2 {
		t.Fatalf("expected components in first-appearance order")
	}

	assignable := model.AssignableComponents()
	if len(assignable) != 2 {
		t.Fatalf("expected both components assignable, got %d", len(assignable))
	}
}
