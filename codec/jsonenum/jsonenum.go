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

// Package jsonenum reads and writes entities as JSON tokens.
//
// An entity is written as its code, a JSON string, and an absent entity as
// null. Reading accepts a string (matched against codes), a number (matched
// against values, for payloads written before codes were used) or null.
// Anything else is a *codec.DecodeError.
//
// Concrete types opt in with two methods:
//
//	func (s Status) MarshalJSON() ([]byte, error) { return jsonenum.Marshal(s) }
//	func (s *Status) UnmarshalJSON(b []byte) error { return jsonenum.Unmarshal(b, s) }
package jsonenum

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"sync"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/codec"
)

const format = "json"

var null = []byte("null")

// Factory produces converters bound to one registry and config.
type Factory struct {
	reg apis.Registry
	cfg apis.Config
	// converters memoizes converters by type.
	converters sync.Map // map[reflect.Type]*Converter
}

// NewFactory returns a Factory resolving instances in reg.
func NewFactory(reg apis.Registry, cfg apis.Config) *Factory {
	return &Factory{reg: reg, cfg: cfg}
}

// CanConvert reports whether the factory serves t. It holds for every
// concrete entity type and never for the base types themselves.
func (f *Factory) CanConvert(t reflect.Type) bool {
	return codec.CanConvert(t)
}

// Converter returns the converter for t.
func (f *Factory) Converter(t reflect.Type) (*Converter, error) {
	if c, ok := f.converters.Load(t); ok {
		return c.(*Converter), nil
	}
	b, err := codec.Bind(format, t, f.reg, f.cfg)
	if err != nil {
		return nil, err
	}
	c, _ := f.converters.LoadOrStore(t, &Converter{b: b})
	return c.(*Converter), nil
}

// Converter reads and writes one concrete type.
type Converter struct {
	b codec.Binding
}

// Type returns the bound type.
func (c *Converter) Type() reflect.Type { return c.b.Type }

// Write encodes e as a JSON string holding its code, or null when e is absent.
func (c *Converter) Write(e apis.Entity) ([]byte, error) {
	if err := c.b.Check(e); err != nil {
		return nil, err
	}
	if codec.IsAbsent(e) {
		return null, nil
	}
	return json.Marshal(e.Code())
}

// Read decodes a single JSON token. A nil entity and a nil error mean the
// token denoted an absent entity.
func (c *Converter) Read(data []byte) (apis.Entity, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, c.b.Malformed(string(data), err)
	}
	var e apis.Entity
	switch v := tok.(type) {
	case nil:
	case string:
		e, err = c.b.Code(v)
	case json.Number:
		n, nerr := v.Int64()
		if nerr != nil {
			return nil, c.b.Malformed(v.String(), nerr)
		}
		e, err = c.b.Value(n)
	case bool:
		return nil, c.b.Unexpected("boolean")
	case json.Delim:
		if v == '{' {
			return nil, c.b.Unexpected("object")
		}
		return nil, c.b.Unexpected("array")
	default:
		return nil, c.b.Unexpected(reflect.TypeOf(tok).String())
	}
	if err != nil {
		return nil, err
	}
	if _, terr := dec.Token(); !errors.Is(terr, io.EOF) {
		return nil, c.b.Malformed(string(data), errors.New("trailing data after token"))
	}
	return e, nil
}

// Marshal encodes v with the global registry and config.
func Marshal[T apis.Entity](v T) ([]byte, error) {
	c, err := converterFor[T]()
	if err != nil {
		return nil, err
	}
	return c.Write(v)
}

// Unmarshal decodes data into dst with the global registry and config. An
// absent entity leaves dst at T's zero value.
func Unmarshal[T apis.Entity](data []byte, dst *T) error {
	c, err := converterFor[T]()
	if err != nil {
		return err
	}
	e, err := c.Read(data)
	if err != nil {
		return err
	}
	var zero T
	*dst = zero
	if e != nil {
		*dst = e.(T)
	}
	return nil
}

// converterFor builds a converter over the current global snapshot.
func converterFor[T apis.Entity]() (*Converter, error) {
	b, err := codec.Bind(format, reflect.TypeFor[T](), enumx.Registry(), enumx.Config())
	if err != nil {
		return nil, err
	}
	return &Converter{b: b}, nil
}
