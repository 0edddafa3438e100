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

// Package yamlenum reads and writes entities as YAML scalars.
//
// Entities are written as their code and absent entities as null. Reading
// accepts a !!str scalar (matched against codes), an !!int scalar (matched
// against values) or !!null. Concrete types opt in with:
//
//	func (s Status) MarshalYAML() (any, error)      { return yamlenum.Marshal(s) }
//	func (s *Status) UnmarshalYAML(n *yaml.Node) error { return yamlenum.Unmarshal(n, s) }
package yamlenum

import (
	"errors"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/codec"
)

const format = "yaml"

// Factory produces converters bound to one registry and config.
type Factory struct {
	reg        apis.Registry
	cfg        apis.Config
	converters sync.Map // map[reflect.Type]*Converter
}

// NewFactory returns a Factory resolving instances in reg.
func NewFactory(reg apis.Registry, cfg apis.Config) *Factory {
	return &Factory{reg: reg, cfg: cfg}
}

// CanConvert reports whether the factory serves t.
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

// Write returns the code of e, or nil when e is absent. The result is meant
// to be returned from MarshalYAML.
func (c *Converter) Write(e apis.Entity) (any, error) {
	if err := c.b.Check(e); err != nil {
		return nil, err
	}
	if codec.IsAbsent(e) {
		return nil, nil
	}
	return e.Code(), nil
}

// Read decodes n. A nil entity and a nil error mean n denoted an absent
// entity.
func (c *Converter) Read(n *yaml.Node) (apis.Entity, error) {
	n = resolve(n)
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
	case yaml.MappingNode:
		return nil, c.b.Unexpected("mapping")
	case yaml.SequenceNode:
		return nil, c.b.Unexpected("sequence")
	default:
		return nil, c.b.Malformed(n.Value, errors.New("unsupported node"))
	}

	switch tag := n.ShortTag(); tag {
	case "!!null":
		return nil, nil
	case "!!str":
		return c.b.Code(n.Value)
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			return nil, c.b.Malformed(n.Value, err)
		}
		return c.b.Value(v)
	default:
		return nil, c.b.Unexpected(tag)
	}
}

// resolve unwraps documents and follows aliases.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Marshal returns the YAML form of v using the global registry and config.
func Marshal[T apis.Entity](v T) (any, error) {
	c, err := converterFor[T]()
	if err != nil {
		return nil, err
	}
	return c.Write(v)
}

// Unmarshal decodes n into dst using the global registry and config. An
// absent entity leaves dst at T's zero value.
func Unmarshal[T apis.Entity](n *yaml.Node, dst *T) error {
	c, err := converterFor[T]()
	if err != nil {
		return err
	}
	e, err := c.Read(n)
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

func converterFor[T apis.Entity]() (*Converter, error) {
	b, err := codec.Bind(format, reflect.TypeFor[T](), enumx.Registry(), enumx.Config())
	if err != nil {
		return nil, err
	}
	return &Converter{b: b}, nil
}
