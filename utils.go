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

// BiasMode1 returns the subset of props with maximum Prob. When more than
// one proposition ties for the maximum and bias is true, propositions
// whose Mode is 1 are preferred over other tied propositions; otherwise
// every tied proposition is returned.
//
// Returns nil if props is empty.
func BiasMode1(props []Proposition, bias bool) []Proposition {
	if len(props) == 0 {
		return nil
	}

	max := props[0].Prob
	for _, p := range props[1:] {
		if p.Prob > max {
			max = p.Prob
		}
	}

	var tied []Proposition
	for _, p := range props {
		if p.Prob == max {
			tied = append(tied, p)
		}
	}

	if !bias || len(tied) == 1 {
		return tied
	}

	var modeOne []Proposition
	for _, p := range tied {
		if p.Mode == 1 {
			modeOne = append(modeOne, p)
		}
	}
	if len(modeOne) > 0 {
		return modeOne
	}
	return tied
}
