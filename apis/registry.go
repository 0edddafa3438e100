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

import "reflect"

// Registry maps concrete enumeration types to their instance sets.
//
// Declarations are cheap and lazy: the instance set of a type is computed
// from its Source on first use and cached for the lifetime of the Registry.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Declare records src as the origin of t's instance set.
	// A type can be declared once, and only before it is first populated.
	Declare(t reflect.Type, src Source) error
	// All returns t's instances in declaration order. A type that implements
	// Entity but declares nothing yields an empty slice. The returned slice
	// is a copy owned by the caller.
	All(t reflect.Type) ([]Entity, error)
	// Range calls fn for each of t's instances in declaration order until fn
	// returns false. It does not copy the cached instance set.
	Range(t reflect.Type, fn func(e Entity) bool) error
	// Declarations returns a snapshot of declared types in declaration order.
	Declarations() []Declaration
	// Stats returns population and cache counters.
	Stats() Stats
	// Reset drops all declarations and cached instance sets.
	Reset()
}

// Declaration is a single (type, source) association in a Registry snapshot.
type Declaration struct {
	// Type is the declared concrete type.
	Type reflect.Type
	// Source produces the instances of Type.
	Source Source
}

// Stats is a point-in-time view of a Registry's counters.
type Stats struct {
	// Declared is the number of types with a declared Source.
	Declared int
	// Populations counts instance sets computed and published.
	Populations uint64
	// Hits counts reads served from the cache.
	Hits uint64
	// Misses counts reads that had to populate the cache first.
	Misses uint64
	// Populated lists every type with a published instance set.
	Populated []TypeStats
}

// TypeStats describes one populated type.
type TypeStats struct {
	// Type is the populated type.
	Type reflect.Type
	// Instances is the size of its instance set.
	Instances int
}
