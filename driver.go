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

// Diagnoser runs Conflict-Directed A* search over a fixed Model.
//
// A Diagnoser is safe to share across concurrently running
// ReturnConsistentConfigurations calls: each call owns its own frontier,
// tested set, and children ledger exclusively.
type Diagnoser struct {
	model *Model
	opts  DiagnoserOptions
}

// NewDiagnoser builds a Diagnoser over model, applying opts.
func NewDiagnoser(model *Model, opts ...DiagnoserOption) *Diagnoser {
	o := defaultDiagnoserOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Diagnoser{model: model, opts: o}
}

// childrenLedger is an insertion-ordered map from a tested kernel's key to
// the child kernels discovered by expanding it, mirroring a FIFO queue
// paired with a membership map.
type childrenLedger struct {
	order []string
	byKey map[string][]PropSet
}

func newChildrenLedger() *childrenLedger {
	return &childrenLedger{byKey: make(map[string][]PropSet)}
}

func (l *childrenLedger) record(key string, children []PropSet) {
	if _, exists := l.byKey[key]; !exists {
		l.order = append(l.order, key)
	}
	l.byKey[key] = children
}

// nextWave walks every recorded key in insertion order and collects every
// child not yet tested.
func (l *childrenLedger) nextWave(tested map[string]bool) []PropSet {
	var out []PropSet
	for _, key := range l.order {
		for _, child := range l.byKey[key] {
			if !tested[kernelKey(child)] {
				out = append(out, child)
			}
		}
	}
	return out
}

// ReturnConsistentConfigurations seeds an assignment from knownInputs and
// knownOutputs (each given its highest-prior proposition), assigns every
// assignable component its highest-prior mode, and searches for up to n
// model-consistent configurations.
//
// If the seed itself is already consistent, it is returned as the sole
// configuration. Otherwise the engine extracts the seed's conflict,
// inverts it into a kernel frontier, and repeatedly applies the
// highest-scoring untested kernel to the seed, testing the result and
// expanding it into further kernels on failure, until n configurations
// are found or the frontier is exhausted.
//
// Configurations are returned in the order their kernels were tested:
// highest kernel score first within a frontier, then wave by wave. The
// returned likelihoods are not sorted and need not be non-increasing.
func (d *Diagnoser) ReturnConsistentConfigurations(knownInputs, knownOutputs []*Component, n int) ([]Configuration, []float64, FrontierLog, error) {
	if n <= 0 {
		return nil, nil, FrontierLog{}, &StructuralError{Message: "requested configuration count must be positive"}
	}

	seed, err := d.seedAssignment(knownInputs, knownOutputs)
	if err != nil {
		return nil, nil, FrontierLog{}, err
	}
	if d.opts.Logger != nil {
		d.opts.Logger.Debug("seed constructed", "bindings", len(seed))
	}

	completions, err := Complete(d.model, seed, d.opts.Logger)
	if err != nil {
		return nil, nil, FrontierLog{}, err
	}
	conflict, err := CheckModel(d.model, completions)
	if err != nil {
		return nil, nil, FrontierLog{}, err
	}
	if conflict == nil {
		cfg := d.filterConfiguration(seed)
		log := FrontierLog{Requested: n, Found: 1, Message: "seed assignment is already model-consistent"}
		return []Configuration{cfg}, []float64{seed.Score()}, log, nil
	}

	frontier := AllKernels([]PropSet{conflict})
	tested := make(map[string]bool)
	ledger := newChildrenLedger()

	var results []Configuration
	var likelihoods []float64
	waves := 0
	kernelsTested := 0

	for len(results) < n {
		if len(frontier) == 0 {
			next := ledger.nextWave(tested)
			if len(next) == 0 {
				break
			}
			frontier = dedupeMinimalKernels(next)
			waves++
			if d.opts.Logger != nil {
				d.opts.Logger.Debug("wave succession", "wave", waves, "candidates", len(frontier))
			}
			if d.opts.MaxWaves > 0 && waves > d.opts.MaxWaves {
				break
			}
			continue
		}

		idx := argmaxKernelScore(frontier)
		best := frontier[idx]
		frontier = append(append([]PropSet{}, frontier[:idx]...), frontier[idx+1:]...)

		key := kernelKey(best)
		if tested[key] {
			continue
		}
		tested[key] = true
		kernelsTested++

		candidate := ApplyKernel(seed, best)
		if d.opts.Logger != nil {
			d.opts.Logger.Debug("testing kernel", "score", Score(best), "bindings", len(best))
		}

		completions, err := Complete(d.model, candidate, d.opts.Logger)
		if err != nil {
			return nil, nil, FrontierLog{}, err
		}
		kernelConflict, err := CheckModel(d.model, completions)
		if err != nil {
			return nil, nil, FrontierLog{}, err
		}

		if kernelConflict == nil {
			results = append(results, d.filterConfiguration(candidate))
			likelihoods = append(likelihoods, candidate.Score())
			continue
		}

		children := Extend([]PropSet{best}, kernelConflict)
		ledger.record(key, children)
	}

	log := FrontierLog{
		Requested:     n,
		Found:         len(results),
		KernelsTested: kernelsTested,
		Waves:         waves,
	}
	if len(results) < n {
		log.Exhausted = true
		log.Message = fmt.Sprintf("found %d of %d requested configurations before the kernel frontier was exhausted", len(results), n)
		if d.opts.Logger != nil {
			d.opts.Logger.Warn("kernel frontier exhausted", "found", len(results), "requested", n)
		}
	} else {
		log.Message = fmt.Sprintf("returning the %d most likely configuration(s)", n)
	}

	return results, likelihoods, log, nil
}

func (d *Diagnoser) seedAssignment(knownInputs, knownOutputs []*Component) (PropSet, error) {
	seed := make(PropSet)

	for _, c := range knownInputs {
		p, err := c.MaxProposition(GivenSupport, d.opts.BiasMode1)
		if err != nil {
			return nil, err
		}
		seed[c] = p
	}
	for _, c := range knownOutputs {
		p, err := c.MaxProposition(GivenSupport, d.opts.BiasMode1)
		if err != nil {
			return nil, err
		}
		seed[c] = p
	}
	for _, c := range d.model.AssignableComponents() {
		if seed.Has(c) {
			continue
		}
		p, err := c.MaxProposition(GivenSupport, d.opts.BiasMode1)
		if err != nil {
			return nil, err
		}
		seed[c] = p
	}

	return seed, nil
}

func (d *Diagnoser) filterConfiguration(ps PropSet) Configuration {
	if d.opts.IncludeGiven {
		return ps.Clone()
	}
	out := make(PropSet)
	for c, p := range ps {
		if c.Assignable {
			out[c] = p
		}
	}
	return out
}

// argmaxKernelScore returns the index of the highest-scoring kernel in
// frontier, breaking ties by first occurrence.
func argmaxKernelScore(frontier []PropSet) int {
	best := 0
	bestScore := Score(frontier[0])
	for i, k := range frontier[1:] {
		if s := Score(k); s > bestScore {
			bestScore = s
			best = i + 1
		}
	}
	return best
}
