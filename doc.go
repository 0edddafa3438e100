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

// Package enumx provides smart enumerations: closed sets of named, strongly
// typed singleton instances that carry an int64 value, a string code and any
// behavior the declaring type adds.
//
// Go constants cannot carry methods beyond their underlying type or extra
// metadata. enumx lets a package declare a struct type whose instances play
// the part of enum members, discover that set at run time, and look members
// up by value, by code or by an associated native integer enumeration.
//
// # Declaring a type
//
//	type Status struct{ entity.Base }
//
//	var (
//		Active   = Status{entity.MustNew(1, "Active")}
//		Disabled = Status{entity.MustNew(2, "Disabled")}
//	)
//
//	func init() { enumx.MustDeclare(Active, Disabled) }
//
// The declaration records the instance list; nothing is computed until the
// first lookup. The enumgen command writes such init functions for every
// type of a package. A namespace struct works too:
//
//	var Statuses = struct{ Active, Disabled Status }{...}
//
//	func init() { enumx.MustDeclareFields[Status](Statuses) }
//
// Unexported fields of the namespace are not discovered, which is the way to
// keep instances out of lookups. A type that declares nothing has an empty
// instance set.
//
// # Lookups
//
//	s, err := enumx.FromValue[Status](1)
//	s, err := enumx.FromCode[Status]("active", true)
//	s, ok := enumx.TryFromCode[Status]("Active", false)
//
// Strict lookups fail with an error matching lookup.ErrInvalidState whose
// message reads "'99' is not a valid value in Status". Try lookups report a
// miss as false.
//
// Types embedding entity.Bridged[E] pair each instance with a native
// enumeration value of type E and can be looked up with FromEnum.
//
// # Identity
//
// Two instances are equal when they have the same dynamic type and the same
// value; the code is not part of identity. Use entity.Equal, entity.KeyOf
// and entity.Hash rather than == when instances may be built twice.
//
// # Global state
//
// The package keeps a read-mostly snapshot of a Config, a Registry and the
// Builder that makes registries. Reads load an atomic pointer and never take
// locks. Writers (SetConfig, SetRegistry, SetBuilder, SetAll) take a short
// mutex, assemble a new snapshot and publish it. SetBuilder rebuilds the
// registry, carrying declarations over, unless it was pinned by SetRegistry
// or PinRegistry. SetConfig only replaces the config and keeps populated
// instance sets.
//
// Code that needs isolation, tests in particular, builds its own registry
// with registry.New and calls the lookup package directly.
//
// # Serialization
//
// Packages under codec bind concrete types to JSON (codec/jsonenum), YAML
// (codec/yamlenum) and SQL columns (codec/sqlenum). They write the code,
// except sqlenum.Number which stores the value, and read either the code or
// the value. The metrics package exports registry statistics to Prometheus.
package enumx
