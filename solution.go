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

import "iter"

// Configuration is a complete, model-consistent mode assignment: the
// result of applying a kernel diagnosis to a seed and completing it
// without contradiction.
type Configuration = PropSet

// Configurations is the list of configurations
// ReturnConsistentConfigurations returns, in the order the search found
// them.
//
// Example:
//
//	configs, _, _, err := diagnoser.ReturnConsistentConfigurations(inputs, outputs, 3)
//	for cfg := range Configurations(configs).All() {
//	    fmt.Println(cfg.Slice())
//	}
type Configurations []Configuration

// All returns an iterator over every configuration in cs, in order.
func (cs Configurations) All() iter.Seq[Configuration] {
	return func(yield func(Configuration) bool) {
		for _, cfg := range cs {
			if !yield(cfg) {
				return
			}
		}
	}
}
