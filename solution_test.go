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

import "testing"

func TestConfigurationsAllYieldsInOrder(t *testing.T) {
	relay := mustComponent(t, "RELAY", []int{0, 1}, []float64{0.95, 0.05}, true)

	first, _ := NewPropSet(NewProposition(relay, 0, GivenSupport))
	second, _ := NewPropSet(NewProposition(relay, 1, KernelSupport))
	cs := Configurations{first, second}

	var seen []Configuration
	for cfg := range cs.All() {
		seen = append(seen, cfg)
	}

	if len(seen) != 2 {
		t.Fatalf("expected 2 configurations, got %d", len(seen))
	}
	if !seen[0].Equal(first) || !seen[1].Equal(second) {
		t.Fatalf("expected configurations yielded in order, got %v", seen)
	}
}

func TestConfigurationsAllStopsOnFalse(t *testing.T) {
	relay := mustComponent(t, "RELAY", []int{0, 1}, []float64{0.95, 0.05}, true)

	first, _ := NewPropSet(NewProposition(relay, 0, GivenSupport))
	second, _ := NewPropSet(NewProposition(relay, 1, KernelSupport))
	cs := Configurations{first, second}

	count := 0
	for range cs.All() {
		count++
		break
	}

	if count != 1 {
		t.Fatalf("expected iteration to stop after 1, got %d", count)
	}
}
