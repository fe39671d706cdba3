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
	"strings"
)

// FrontierLog summarizes one ReturnConsistentConfigurations run: how much
// of the kernel frontier was explored and why the search stopped.
type FrontierLog struct {
	// Requested is N, the number of configurations asked for.
	Requested int
	// Found is how many configurations were actually returned.
	Found int
	// KernelsTested is how many distinct kernels were applied and checked.
	KernelsTested int
	// Waves is how many succession waves were expanded.
	Waves int
	// Exhausted is true when the search stopped before Found reached
	// Requested: either the kernel frontier ran dry or the MaxWaves limit
	// was reached.
	Exhausted bool
	// Message is a short human-readable summary of the outcome.
	Message string
}

// Reporter formats a FrontierLog into a human-readable trace.
type Reporter interface {
	Report(log FrontierLog) string
}

// DefaultReporter renders a FrontierLog as a short multi-line summary.
type DefaultReporter struct{}

// Report implements Reporter.
func (r *DefaultReporter) Report(log FrontierLog) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("requested %d configuration(s), found %d", log.Requested, log.Found))
	lines = append(lines, fmt.Sprintf("tested %d kernel(s) across %d wave(s)", log.KernelsTested, log.Waves))

	if log.Exhausted {
		lines = append(lines, "kernel frontier exhausted before reaching the requested count")
	} else if log.Found == log.Requested {
		lines = append(lines, "search stopped after satisfying the request")
	}

	if log.Message != "" {
		lines = append(lines, log.Message)
	}

	return strings.Join(lines, "\n")
}

// CollapsedReporter renders a FrontierLog as a single line, for callers that
// log one search per line rather than a multi-line block.
type CollapsedReporter struct{}

// Report implements Reporter with a collapsed, single-line format.
func (r *CollapsedReporter) Report(log FrontierLog) string {
	outcome := "satisfied"
	if log.Exhausted {
		outcome = "exhausted"
	}
	return fmt.Sprintf("%s: %d/%d found, %d kernel(s), %d wave(s)",
		outcome, log.Found, log.Requested, log.KernelsTested, log.Waves)
}
