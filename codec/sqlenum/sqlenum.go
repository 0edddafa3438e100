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

// Package sqlenum stores entities in SQL columns.
//
// A concrete entity type cannot implement driver.Valuer itself because its
// Value method already returns the canonical value, so columns go through
// wrapper types: Column stores the code, Number stores the value. Both are
// nullable and resolve scanned data against the global registry.
package sqlenum

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/codec"
)

const format = "sql"

// Column is a nullable text column holding an entity by code.
type Column[T apis.Entity] struct {
	Entity T
	// Valid is false for SQL NULL.
	Valid bool
}

// NewColumn wraps e; an absent e is stored as NULL.
func NewColumn[T apis.Entity](e T) Column[T] {
	return Column[T]{Entity: e, Valid: !codec.IsAbsent(e)}
}

// Value implements driver.Valuer.
func (c Column[T]) Value() (driver.Value, error) {
	if !c.Valid || codec.IsAbsent(c.Entity) {
		return nil, nil
	}
	return c.Entity.Code(), nil
}

// Scan implements sql.Scanner. Text is matched against codes; integers are
// matched against values so that numeric rows still load.
func (c *Column[T]) Scan(src any) error {
	b, err := bind[T]()
	if err != nil {
		return err
	}
	var e apis.Entity
	switch v := src.(type) {
	case nil:
	case string:
		e, err = b.Code(v)
	case []byte:
		e, err = b.Code(string(v))
	case int64:
		e, err = b.Value(v)
	default:
		return b.Unexpected(fmt.Sprintf("%T", src))
	}
	if err != nil {
		return err
	}
	var zero T
	c.Entity, c.Valid = zero, e != nil
	if e != nil {
		c.Entity = e.(T)
	}
	return nil
}

// Number is a nullable integer column holding an entity by value.
type Number[T apis.Entity] struct {
	Entity T
	// Valid is false for SQL NULL.
	Valid bool
}

// NewNumber wraps e; an absent e is stored as NULL.
func NewNumber[T apis.Entity](e T) Number[T] {
	return Number[T]{Entity: e, Valid: !codec.IsAbsent(e)}
}

// Value implements driver.Valuer.
func (n Number[T]) Value() (driver.Value, error) {
	if !n.Valid || codec.IsAbsent(n.Entity) {
		return nil, nil
	}
	return n.Entity.Value(), nil
}

// Scan implements sql.Scanner. Drivers returning integers as text are
// accepted.
func (n *Number[T]) Scan(src any) error {
	b, err := bind[T]()
	if err != nil {
		return err
	}
	var e apis.Entity
	switch v := src.(type) {
	case nil:
	case int64:
		e, err = b.Value(v)
	case string:
		e, err = scanText(b, v)
	case []byte:
		e, err = scanText(b, string(v))
	default:
		return b.Unexpected(fmt.Sprintf("%T", src))
	}
	if err != nil {
		return err
	}
	var zero T
	n.Entity, n.Valid = zero, e != nil
	if e != nil {
		n.Entity = e.(T)
	}
	return nil
}

func scanText(b codec.Binding, s string) (apis.Entity, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, b.Malformed(strconv.Quote(s), err)
	}
	return b.Value(v)
}

func bind[T apis.Entity]() (codec.Binding, error) {
	return codec.Bind(format, reflect.TypeFor[T](), enumx.Registry(), enumx.Config())
}
