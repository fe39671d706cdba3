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

import "log/slog"

// DiagnoserOptions configures the behavior of a Diagnoser.
type DiagnoserOptions struct {
	// BiasMode1 prefers mode 1 when seeding a component whose highest
	// prior is tied across several modes.
	BiasMode1 bool

	// MaxWaves bounds how many succession waves ReturnConsistentConfigurations
	// will expand before giving up and returning whatever it has found.
	// 0 disables the limit.
	MaxWaves int

	// IncludeGiven controls whether returned configurations carry the
	// caller-supplied input/output propositions alongside the assignable
	// ones. Default: true.
	IncludeGiven bool

	// Logger enables debug logging of seed construction, kernel selection,
	// and wave succession, and a warning when the search ends with fewer
	// configurations than requested. When nil, no logging is performed.
	Logger *slog.Logger
}

// DiagnoserOption is a functional option for configuring a Diagnoser.
type DiagnoserOption func(*DiagnoserOptions)

// defaultDiagnoserOptions returns the default diagnoser configuration.
func defaultDiagnoserOptions() DiagnoserOptions {
	return DiagnoserOptions{
		BiasMode1:    false,
		MaxWaves:     0,
		IncludeGiven: true,
	}
}

// WithBiasMode1 enables or disables the mode-1 tie-break when seeding
// components whose highest prior is shared by several modes.
func WithBiasMode1(enabled bool) DiagnoserOption {
	return func(opts *DiagnoserOptions) {
		opts.BiasMode1 = enabled
	}
}

// WithMaxWaves bounds the number of succession waves the driver expands
// before returning early. Use 0 to disable the limit.
func WithMaxWaves(waves int) DiagnoserOption {
	return func(opts *DiagnoserOptions) {
		if waves <= 0 {
			opts.MaxWaves = 0
		} else {
			opts.MaxWaves = waves
		}
	}
}

// WithIncludeGiven controls whether returned configurations include the
// caller-supplied given propositions alongside the assignable ones.
func WithIncludeGiven(include bool) DiagnoserOption {
	return func(opts *DiagnoserOptions) {
		opts.IncludeGiven = include
	}
}

// WithLogger sets a structured logger for diagnoser diagnostics.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	d := NewDiagnoser(model, WithLogger(logger))
func WithLogger(logger *slog.Logger) DiagnoserOption {
	return func(opts *DiagnoserOptions) {
		opts.Logger = logger
	}
}
