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

// Package lookup finds instances of concrete entity types by value, by code
// or by native enumeration.
//
// Each operation comes in a strict form returning an error and a try form
// returning a boolean. Strict forms fail with a *NotFoundError (matching
// ErrInvalidState) when nothing matches. Try forms report every documented
// lookup failure as a miss; a type whose instance source is broken is a
// programming error and makes them panic.
//
// Matches are resolved by scanning the cached instance set in declaration
// order; the first match wins.
package lookup

import (
	"reflect"
	"strconv"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/bridge"
	"dirpx.dev/enumx/strategy"
	uref "dirpx.dev/enumx/utils/reflect"
)

// Find returns the first instance of t matched by s.
// input and field only shape the error message.
func Find(reg apis.Registry, t reflect.Type, s apis.Strategy, input, field string) (apis.Entity, error) {
	var found apis.Entity
	err := reg.Range(t, func(e apis.Entity) bool {
		if s.Matches(e) {
			found = e
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, &NotFoundError{Input: input, Field: field, Type: uref.DisplayName(t)}
	}
	return found, nil
}

// FindValue returns the first instance of t whose Value is v.
func FindValue(reg apis.Registry, t reflect.Type, v int64) (apis.Entity, error) {
	return Find(reg, t, strategy.ByValue(v), strconv.FormatInt(v, 10), "value")
}

// FindCode returns the first instance of t whose Code matches code under m.
func FindCode(reg apis.Registry, t reflect.Type, code string, m apis.Match) (apis.Entity, error) {
	if code == "" {
		return nil, ErrNullArgument
	}
	return Find(reg, t, strategy.ByCode(code, m), code, "code")
}

// FromValue returns the first instance of T whose Value is v.
func FromValue[T apis.Entity](reg apis.Registry, v int64) (T, error) {
	return typed[T](FindValue(reg, reflect.TypeFor[T](), v))
}

// TryFromValue is FromValue reporting a miss as false.
func TryFromValue[T apis.Entity](reg apis.Registry, v int64) (T, bool) {
	return try(FromValue[T](reg, v))
}

// MustFromValue is like FromValue but panics on error.
func MustFromValue[T apis.Entity](reg apis.Registry, v int64) T {
	e, err := FromValue[T](reg, v)
	if err != nil {
		panic(err)
	}
	return e
}

// FromCode returns the first instance of T whose Code is code, compared
// ordinally, or case-insensitively when ignoreCase is set.
// An empty code fails with ErrNullArgument.
func FromCode[T apis.Entity](reg apis.Registry, code string, ignoreCase bool) (T, error) {
	return typed[T](FindCode(reg, reflect.TypeFor[T](), code, apis.MatchFor(ignoreCase)))
}

// TryFromCode is FromCode reporting a miss, or an empty code, as false.
func TryFromCode[T apis.Entity](reg apis.Registry, code string, ignoreCase bool) (T, bool) {
	return try(FromCode[T](reg, code, ignoreCase))
}

// MustFromCode is like FromCode but panics on error.
func MustFromCode[T apis.Entity](reg apis.Registry, code string, ignoreCase bool) T {
	e, err := FromCode[T](reg, code, ignoreCase)
	if err != nil {
		panic(err)
	}
	return e
}

// FromEnum returns the instance of T whose Value is the canonical form of e.
// Bridge failures (bridge.ErrOverflow) are returned as they are.
func FromEnum[T apis.Entity, E bridge.Integer](reg apis.Registry, e E) (T, error) {
	v, err := bridge.ToCanonical(e)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromValue[T](reg, v)
}

// TryFromEnum is FromEnum reporting any lookup or bridge failure as false.
func TryFromEnum[T apis.Entity, E bridge.Integer](reg apis.Registry, e E) (T, bool) {
	return try(FromEnum[T](reg, e))
}

// Codes returns the codes of T's instances in declaration order.
func Codes[T apis.Entity](reg apis.Registry) ([]string, error) {
	return CodesOf(reg, reflect.TypeFor[T](), 0)
}

// CodesOf returns up to limit codes of t's instances in declaration order.
// A limit <= 0 returns all of them.
func CodesOf(reg apis.Registry, t reflect.Type, limit int) ([]string, error) {
	var out []string
	err := reg.Range(t, func(e apis.Entity) bool {
		if limit > 0 && len(out) == limit {
			return false
		}
		out = append(out, e.Code())
		return true
	})
	return out, err
}

// Values returns the values of T's instances in declaration order.
func Values[T apis.Entity](reg apis.Registry) ([]int64, error) {
	var out []int64
	err := reg.Range(reflect.TypeFor[T](), func(e apis.Entity) bool {
		out = append(out, e.Value())
		return true
	})
	return out, err
}

// typed asserts e to T, passing errors through.
func typed[T apis.Entity](e apis.Entity, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return e.(T), nil
}
