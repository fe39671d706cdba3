package cdastar

import "testing"

// This file recreates, as unexported test helpers only, the shape of the
// device-family clause builders used to assemble a full example system:
// power relays, AND-gated power control units, and passive camera outputs.
// These are not part of the library's public API — the engine itself never
// inspects clause content, only clause shape (satisfied/contradicted).

// buildPowerRelayClauses wires relay into the arena as a single-input
// pass-through gate: when relay is healthy (mode 0) and in is asserted
// (mode 1), out is asserted; when relay is stuck open (mode 1), out is
// forced low regardless of in.
func buildPowerRelayClauses(arena *ClauseArena, name string, relay, in, out *Component) {
	arena.NewClause(name+"-closed-passes",
		NewProposition(relay, 1, GivenSupport),
		NewProposition(in, 0, GivenSupport),
		NewProposition(out, 1, GivenSupport),
	)
	arena.NewClause(name+"-open-blocks",
		NewProposition(relay, 0, GivenSupport),
		NewProposition(out, 0, GivenSupport),
	)
}

// buildPCUGateClauses wires gate into the arena as an AND gate over
// inputs: out is asserted iff gate is healthy (mode 0) and every input is
// asserted (mode 1). gate, inputs, and out are all 2-valued components.
func buildPCUGateClauses(arena *ClauseArena, name string, gate *Component, inputs []*Component, out *Component) {
	forward := make([]Proposition, 0, len(inputs)+2)
	forward = append(forward, NewProposition(gate, 1, GivenSupport))
	for _, in := range inputs {
		forward = append(forward, NewProposition(in, 0, GivenSupport))
	}
	forward = append(forward, NewProposition(out, 1, GivenSupport))
	arena.NewClause(name+"-forward", forward...)

	for _, in := range inputs {
		arena.NewClause(name+"-requires-input",
			NewProposition(out, 0, GivenSupport),
			NewProposition(in, 1, GivenSupport),
		)
	}
	arena.NewClause(name+"-requires-health",
		NewProposition(out, 0, GivenSupport),
		NewProposition(gate, 0, GivenSupport),
	)
}

// buildCameraClauses wires camera as a passive mirror of powerIn: the
// camera has no fault mode of its own, it simply reports whatever power
// state reaches it.
func buildCameraClauses(arena *ClauseArena, name string, camera, powerIn *Component) {
	arena.NewClause(name+"-mirrors-high",
		NewProposition(camera, 1, GivenSupport),
		NewProposition(powerIn, 0, GivenSupport),
	)
	arena.NewClause(name+"-mirrors-low",
		NewProposition(camera, 0, GivenSupport),
		NewProposition(powerIn, 1, GivenSupport),
	)
}

// exampleSystem is the full example system used by the driver's scenario
// tests: two power relays feed an AND-gated power control unit that in
// turn powers a camera; a third relay feeds a second, single-input PCU
// powering a second camera.
type exampleSystem struct {
	model *Model

	p1, p2, p3   *Component
	pcu1, pcu2   *Component
	pcu1Out      *Component
	pcu2Out      *Component
	c1, c2       *Component
	powerInValue int
}

// buildExampleSystem assembles the system with the external power input
// fixed at powerInValue (1 = present, 0 = absent) and both cameras fixed
// at their observed readings — powerIn and the cameras are the
// given/observed components of a diagnosis query, not fault modes.
func buildExampleSystem(t *testing.T, powerInValue, c1Value, c2Value int) *exampleSystem {
	t.Helper()

	powerIn := mustComponent(t, "POWER_IN", []int{powerInValue}, []float64{1.0}, false)

	p1 := mustComponent(t, "P1", []int{0, 1}, []float64{0.95, 0.05}, true)
	p2 := mustComponent(t, "P2", []int{0, 1}, []float64{0.95, 0.05}, true)
	p3 := mustComponent(t, "P3", []int{0, 1}, []float64{0.95, 0.05}, true)

	p1Out := mustComponent(t, "P1_OUT", []int{0, 1}, []float64{0.5, 0.5}, false)
	p2Out := mustComponent(t, "P2_OUT", []int{0, 1}, []float64{0.5, 0.5}, false)
	p3Out := mustComponent(t, "P3_OUT", []int{0, 1}, []float64{0.5, 0.5}, false)

	pcu1 := mustComponent(t, "PCU1", []int{0, 1}, []float64{0.9, 0.1}, true)
	pcu2 := mustComponent(t, "PCU2", []int{0, 1}, []float64{0.9, 0.1}, true)

	pcu1Out := mustComponent(t, "PCU1_OUT", []int{0, 1}, []float64{0.5, 0.5}, false)
	pcu2Out := mustComponent(t, "PCU2_OUT", []int{0, 1}, []float64{0.5, 0.5}, false)

	c1 := mustComponent(t, "C1", []int{c1Value}, []float64{1.0}, false)
	c2 := mustComponent(t, "C2", []int{c2Value}, []float64{1.0}, false)

	arena := NewClauseArena()
	buildPowerRelayClauses(arena, "relay-p1", p1, powerIn, p1Out)
	buildPowerRelayClauses(arena, "relay-p2", p2, powerIn, p2Out)
	buildPowerRelayClauses(arena, "relay-p3", p3, powerIn, p3Out)

	buildPCUGateClauses(arena, "pcu1", pcu1, []*Component{p1Out, p2Out}, pcu1Out)
	buildPCUGateClauses(arena, "pcu2", pcu2, []*Component{p3Out}, pcu2Out)

	buildCameraClauses(arena, "camera-c1", c1, pcu1Out)
	buildCameraClauses(arena, "camera-c2", c2, pcu2Out)

	model, err := NewModel(arena.Clauses())
	if err != nil {
		t.Fatalf("unexpected error building example system: %v", err)
	}

	return &exampleSystem{
		model:        model,
		p1:           p1,
		p2:           p2,
		p3:           p3,
		pcu1:         pcu1,
		pcu2:         pcu2,
		pcu1Out:      pcu1Out,
		pcu2Out:      pcu2Out,
		c1:           c1,
		c2:           c2,
		powerInValue: powerInValue,
	}
}
