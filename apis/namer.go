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

// Namer lets a concrete entity type choose the name that lookup and decode
// errors use for it.
//
// EntityName is a type-level name: it is called on the zero value and must
// not depend on instance state. An empty result falls back to the Go type
// name.
type Namer interface {
	EntityName() string
}

// NamerType is the reflect.Type of the Namer interface.
var NamerType = reflect.TypeFor[Namer]()
