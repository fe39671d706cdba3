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

import "unique"

// Name is an interned display name, used for component and clause labels
// and for any map key where string identity (not object identity) is
// what's being compared.
//
// Name is NOT used for Component identity: two distinct *Component values
// sharing a Name are distinct entities (see Component). Name exists purely
// so that diagnostics, clause labels, and lookups by label are cheap and
// consistently comparable.
type Name = unique.Handle[string]

// MakeName interns a string into a Name. Equal strings produce equal Names.
func MakeName(s string) Name {
	return unique.Make(s)
}
