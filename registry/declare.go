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

package registry

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/enumx/apis"
	uref "dirpx.dev/enumx/utils/reflect"
)

// ErrInvalidNamespace is returned by DeclareFields for a namespace that is
// not a struct or a pointer to one.
var ErrInvalidNamespace = errors.New("enumx(registry): namespace must be a struct")

// Declare declares instances, in order, as the instance set of T.
func Declare[T apis.Entity](reg apis.Registry, instances ...T) error {
	items := make([]apis.Entity, len(instances))
	for i, e := range instances {
		items[i] = e
	}
	return reg.Declare(reflect.TypeFor[T](), apis.SourceFunc(func() ([]apis.Entity, error) {
		return items, nil
	}))
}

// DeclareFunc declares fn as the source of T's instance set. fn is called
// at most once, on first use of T.
func DeclareFunc[T apis.Entity](reg apis.Registry, fn func() []T) error {
	if fn == nil {
		return ErrNilSource
	}
	return reg.Declare(reflect.TypeFor[T](), apis.SourceFunc(func() ([]apis.Entity, error) {
		instances := fn()
		items := make([]apis.Entity, len(instances))
		for i, e := range instances {
			items[i] = e
		}
		return items, nil
	}))
}

// DeclareFields declares the exported fields of namespace whose type is T,
// in field order, as the instance set of T. The scan runs on first use.
//
//	var Colors = struct {
//		Red, Green Color
//		internal   Color // not discovered
//	}{...}
//
//	registry.DeclareFields[Color](reg, Colors)
func DeclareFields[T apis.Entity](reg apis.Registry, namespace any) error {
	ns, err := uref.Namespace(namespace)
	if err != nil {
		return fmt.Errorf("%w: %T", ErrInvalidNamespace, namespace)
	}
	t := reflect.TypeFor[T]()
	return reg.Declare(t, apis.SourceFunc(func() ([]apis.Entity, error) {
		fields := uref.Fields(ns, t)
		items := make([]apis.Entity, 0, len(fields))
		for _, f := range fields {
			items = append(items, f.Interface().(apis.Entity))
		}
		return items, nil
	}))
}

// All returns T's instance set as a typed slice.
func All[T apis.Entity](reg apis.Registry) ([]T, error) {
	items, err := reg.All(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	for i, e := range items {
		out[i] = e.(T)
	}
	return out, nil
}
