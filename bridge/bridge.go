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

// Package bridge converts between native Go integer enumerations and the
// canonical int64 identity carried by every entity.
//
// A native enumeration is any named integer type with a set of constants:
//
//	type Level int8
//
//	const (
//		LevelLow Level = iota + 1
//		LevelHigh
//	)
//
// The conversion dispatches on the underlying kind of the type parameter, so
// a uint64 enumeration is checked against the int64 range while narrower
// kinds always widen losslessly.
package bridge

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var (
	// ErrOverflow is returned when a value does not fit the target width.
	ErrOverflow = errors.New("enumx(bridge): value out of range")
	// ErrUnsupportedKind is returned for a type whose underlying kind is not
	// a fixed or platform sized integer.
	ErrUnsupportedKind = errors.New("enumx(bridge): unsupported underlying kind")
)

// Integer is the set of types usable as native enumerations.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ToCanonical widens e to the canonical int64 identity.
// Every signed value and every unsigned value up to math.MaxInt64 converts
// losslessly; larger unsigned values fail with ErrOverflow.
func ToCanonical[E Integer](e E) (int64, error) {
	t := reflect.TypeFor[E]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int64(e), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(e), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		u := uint64(e)
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d of %s exceeds int64", ErrOverflow, u, t)
		}
		return int64(u), nil
	default:
		return 0, fmt.Errorf("%w: %s (%s)", ErrUnsupportedKind, t, t.Kind())
	}
}

// FromCanonical narrows v to E.
// Values outside E's range fail with ErrOverflow instead of wrapping.
func FromCanonical[E Integer](v int64) (E, error) {
	t := reflect.TypeFor[E]()
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if bits < 64 {
			lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
			if v < lo || v > hi {
				return 0, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, v, t)
			}
		}
		return E(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v < 0 || (bits < 64 && uint64(v) > uint64(1)<<bits-1) {
			return 0, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, v, t)
		}
		return E(v), nil
	default:
		return 0, fmt.Errorf("%w: %s (%s)", ErrUnsupportedKind, t, t.Kind())
	}
}

// MustToCanonical is like ToCanonical but panics on error.
func MustToCanonical[E Integer](e E) int64 {
	v, err := ToCanonical(e)
	if err != nil {
		panic(err)
	}
	return v
}

// MustFromCanonical is like FromCanonical but panics on error.
func MustFromCanonical[E Integer](v int64) E {
	e, err := FromCanonical[E](v)
	if err != nil {
		panic(err)
	}
	return e
}

// Width reports the size in bits and the signedness of E's underlying kind.
func Width[E Integer]() (bits int, signed bool, err error) {
	t := reflect.TypeFor[E]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return t.Bits(), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return t.Bits(), false, nil
	default:
		return 0, false, fmt.Errorf("%w: %s (%s)", ErrUnsupportedKind, t, t.Kind())
	}
}
