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

import "dirpx.dev/enumx/apis"

// ByValue creates an apis.Strategy matching entities whose Value is v.
func ByValue(v int64) apis.Strategy {
	return valueStrategy(v)
}

// valueStrategy compares the canonical numeric identity.
type valueStrategy int64

// Ensure valueStrategy implements apis.Strategy.
var _ apis.Strategy = valueStrategy(0)

// Matches reports whether e carries the value.
func (s valueStrategy) Matches(e apis.Entity) bool {
	return e.Value() == int64(s)
}
