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

// Package entity provides the base value types embedded by concrete smart
// enumeration types, and the identity rules shared by all of them.
//
// A concrete type is a named struct embedding Base:
//
//	type Color struct{ entity.Base }
//
//	var (
//		Red   = Color{entity.MustNew(1, "Red")}
//		Green = Color{entity.MustNew(2, "Green")}
//	)
//
// Two entities are equal when they have the same dynamic type and the same
// Value. The Code takes no part in identity.
package entity

import (
	"cmp"
	"errors"
	"fmt"
	"hash/maphash"
	"reflect"
	"strings"

	"dirpx.dev/enumx/apis"
)

// ErrEmptyCode is returned when an entity is built with an empty or
// whitespace-only code.
var ErrEmptyCode = errors.New("enumx(entity): code must not be empty")

// Base carries the value and code of an entity. Its zero value stands for
// an absent entity and is never a legal instance.
type Base struct {
	value int64
	code  string
}

// Ensure Base implements apis.Entity.
var _ apis.Entity = Base{}

// New builds a Base. The code must contain a non-space character.
func New(value int64, code string) (Base, error) {
	if strings.TrimSpace(code) == "" {
		return Base{}, fmt.Errorf("%w (value %d)", ErrEmptyCode, value)
	}
	return Base{value: value, code: code}, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// instance declarations.
func MustNew(value int64, code string) Base {
	b, err := New(value, code)
	if err != nil {
		panic(err)
	}
	return b
}

// Value returns the canonical numeric identity.
func (b Base) Value() int64 { return b.value }

// Code returns the string identity.
func (b Base) Code() string { return b.code }

// String returns the code.
func (b Base) String() string { return b.code }

// IsZero reports whether b is the zero Base, which no constructor returns.
func (b Base) IsZero() bool { return b.code == "" }

// Key is a comparable identity of an entity: its dynamic type and value.
// It is suitable as a map key.
type Key struct {
	Type  reflect.Type
	Value int64
}

// KeyOf returns e's identity. A nil entity maps to the zero Key.
func KeyOf(e apis.Entity) Key {
	if IsNil(e) {
		return Key{}
	}
	return Key{Type: reflect.TypeOf(e), Value: e.Value()}
}

// Equal reports whether a and b have the same dynamic type and value.
// Two nil entities are equal; nil never equals a non-nil entity.
func Equal(a, b apis.Entity) bool {
	return KeyOf(a) == KeyOf(b)
}

var seed = maphash.MakeSeed()

// Hash returns a process-local hash of e consistent with Equal.
func Hash(e apis.Entity) uint64 {
	return maphash.Comparable(seed, KeyOf(e))
}

// Compare orders entities by value. It does not look at types.
func Compare(a, b apis.Entity) int {
	return cmp.Compare(a.Value(), b.Value())
}

// IsNil reports whether e is nil or a nil pointer.
func IsNil(e apis.Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
