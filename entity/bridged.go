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

package entity

import "dirpx.dev/enumx/bridge"

// Bridged is a Base paired with a native integer enumeration E.
//
//	type Level int64
//
//	const LevelVeryLarge Level = 5000000000
//
//	type Size struct{ entity.Bridged[Level] }
//
//	var VeryLarge = Size{entity.MustNewBridged(LevelVeryLarge, "VeryLarge")}
type Bridged[E bridge.Integer] struct {
	Base
}

// NewBridged builds a Bridged whose value is the canonical form of id.
func NewBridged[E bridge.Integer](id E, code string) (Bridged[E], error) {
	v, err := bridge.ToCanonical(id)
	if err != nil {
		return Bridged[E]{}, err
	}
	b, err := New(v, code)
	if err != nil {
		return Bridged[E]{}, err
	}
	return Bridged[E]{Base: b}, nil
}

// MustNewBridged is like NewBridged but panics on error.
func MustNewBridged[E bridge.Integer](id E, code string) Bridged[E] {
	b, err := NewBridged(id, code)
	if err != nil {
		panic(err)
	}
	return b
}

// ID projects the value back into E. It is computed on each call.
func (b Bridged[E]) ID() E {
	// Values only enter through NewBridged, so they always fit E.
	return bridge.MustFromCanonical[E](b.value)
}
