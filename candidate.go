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

// ApplyKernel returns a new candidate assignment: partial with every
// binding in kernel overlaid, tagged as kernel-supported. partial is
// never mutated.
func ApplyKernel(partial PropSet, kernel PropSet) PropSet {
	out := partial.Clone()
	for c, p := range kernel {
		p.Support = KernelSupport
		out[c] = p
	}
	return out
}
