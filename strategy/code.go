/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy

import (
	"strings"

	"dirpx.dev/enumx/apis"
)

// ByCode creates an apis.Strategy matching entities whose Code equals code
// under m.
func ByCode(code string, m apis.Match) apis.Strategy {
	if m.IgnoreCase() {
		return foldStrategy(code)
	}
	return ordinalStrategy(code)
}

// ordinalStrategy compares codes byte for byte.
type ordinalStrategy string

// Ensure ordinalStrategy implements apis.Strategy.
var _ apis.Strategy = ordinalStrategy("")

// Matches reports whether e's code is exactly s.
func (s ordinalStrategy) Matches(e apis.Entity) bool {
	return e.Code() == string(s)
}

// foldStrategy compares codes under Unicode simple case folding.
type foldStrategy string

// Ensure foldStrategy implements apis.Strategy.
var _ apis.Strategy = foldStrategy("")

// Matches reports whether e's code equals s ignoring case.
func (s foldStrategy) Matches(e apis.Entity) bool {
	return strings.EqualFold(e.Code(), string(s))
}
