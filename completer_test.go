package cdastar

import "testing"

func TestCompleteReturnsSingleAssignmentWhenNothingMissing(t *testing.T) {
	model := buildSingleRelayModel(t)
	in := findComponent(t, model, "IN")
	relay := findComponent(t, model, "RELAY")
	out := findComponent(t, model, "OUT")

	partial, _ := NewPropSet(
		NewProposition(in, 1, GivenSupport),
		NewProposition(relay, 0, GivenSupport),
		NewProposition(out, 1, GivenSupport),
	)

	completions, err := Complete(model, partial, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(completions) != 1 {
		t.Fatalf("expected exactly 1 completion, got %d", len(completions))
	}
	if !completions[0].Equal(partial) {
		t.Fatalf("expected the single completion to equal the fully-bound partial")
	}
}

func TestCompleteExpandsCartesianProductOfMissingComponents(t *testing.T) {
	model := buildSingleRelayModel(t)
	relay := findComponent(t, model, "RELAY")

	partial, _ := NewPropSet(NewProposition(relay, 0, GivenSupport))

	completions, err := Complete(model, partial, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// IN and OUT are each 2-valued and missing: 2*2 = 4 completions.
	if len(completions) != 4 {
		t.Fatalf("expected 4 completions, got %d", len(completions))
	}
	for _, c := range completions {
		if len(c) != 3 {
			t.Fatalf("expected every completion to bind all 3 components, got %d", len(c))
		}
	}
}
