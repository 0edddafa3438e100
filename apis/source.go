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

package apis

// Source yields the instance set of one concrete enumeration type.
// A Registry calls Instances at most once per type and caches the result,
// so implementations must be deterministic and free of side effects.
type Source interface {
	// Instances returns the declared instances in declaration order.
	Instances() ([]Entity, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() ([]Entity, error)

// Instances calls f.
func (f SourceFunc) Instances() ([]Entity, error) { return f() }
