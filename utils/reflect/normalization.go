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

package reflect

import (
	"errors"
	"reflect"
	"strings"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/entity"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectAbstract is returned for interface types, which cannot own
	// an instance set.
	ErrReflectAbstract = errors.New("reflect: type is abstract")
	// ErrReflectNotEntity is returned for types that do not implement apis.Entity.
	ErrReflectNotEntity = errors.New("reflect: type does not implement apis.Entity")
	// ErrReflectTypeNotNamed indicates an anonymous type (e.g. struct{ entity.Base }).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
	// ErrReflectNotStruct is returned when a namespace is not a struct or a
	// pointer to one.
	ErrReflectNotStruct = errors.New("reflect: namespace is not a struct")
)

// basePkgPath is the package declaring the abstract base entity types.
var basePkgPath = reflect.TypeFor[entity.Base]().PkgPath()

// Normalize checks that t can own an instance set and returns it.
//
// Accepted types are named, non-interface types implementing apis.Entity.
// Pointer types are accepted as distinct types from their element, the same
// way the runtime treats them; no unwrapping takes place.
func Normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if t.Kind() == reflect.Interface {
		return nil, ErrReflectAbstract
	}
	if !t.Implements(apis.EntityType) {
		return nil, ErrReflectNotEntity
	}
	named := t
	if named.Kind() == reflect.Pointer {
		named = named.Elem()
	}
	if named.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}

// IsConcrete reports whether t is a concrete entity type: Normalize accepts
// it and it is not one of the base types of package entity.
func IsConcrete(t reflect.Type) bool {
	if _, err := Normalize(t); err != nil {
		return false
	}
	named := t
	if named.Kind() == reflect.Pointer {
		named = named.Elem()
	}
	return named.PkgPath() != basePkgPath
}

// TypeName returns the short name of t used in messages: the package-less
// type name with generic instantiation parameters removed ("Set[int]" -> "Set").
// Pointer types keep their star.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		return "*" + TypeName(t.Elem())
	}
	if t.Name() == "" {
		return t.String()
	}
	return stripTypeParams(t.Name())
}

// DisplayName returns the name of t used in lookup and decode errors: the
// apis.Namer name when a non-pointer t provides a non-empty one, TypeName
// otherwise.
func DisplayName(t reflect.Type) string {
	if t != nil && t.Kind() != reflect.Pointer && t.Implements(apis.NamerType) {
		if n := reflect.Zero(t).Interface().(apis.Namer).EntityName(); n != "" {
			return n
		}
	}
	return TypeName(t)
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// Namespace unwraps ns to a struct value. ns may be a struct or a non-nil
// pointer to one.
func Namespace(ns any) (reflect.Value, error) {
	v := reflect.ValueOf(ns)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, ErrReflectNotStruct
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, ErrReflectNotStruct
	}
	return v, nil
}

// Fields returns the values of ns's own exported fields whose declared type
// is exactly t, in declaration order. Fields of other types, including
// unnamed types with t's underlying struct, are skipped.
//
// Unexported fields are skipped, which lets a namespace keep instances out
// of discovery. Embedded fields are skipped too: only fields declared by the
// namespace itself count.
func Fields(ns reflect.Value, t reflect.Type) []reflect.Value {
	st := ns.Type()
	out := make([]reflect.Value, 0, st.NumField())
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if f.Type != t {
			continue
		}
		out = append(out, ns.Field(i))
	}
	return out
}
