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

// Entity is a single named instance of a smart enumeration type.
//
// Concrete enumeration types are named structs embedding entity.Base (or
// entity.Bridged). Every legal instance of such a type is created once, at
// package initialisation, and never mutated afterwards.
type Entity interface {
	// Value returns the canonical numeric identity of the instance.
	Value() int64
	// Code returns the non-empty string identity used for lookups and
	// serialization.
	Code() string
	// String returns Code.
	String() string
}

// EntityType is the reflect.Type of the Entity interface.
var EntityType = reflect.TypeFor[Entity]()
