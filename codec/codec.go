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

// Package codec holds what the wire adapters under it share: the decode
// error, the type check deciding which types an adapter serves, and the
// resolution of incoming codes and values against a registry.
package codec

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/entity"
	"dirpx.dev/enumx/lookup"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("enumx(codec): cannot decode")
	// ErrNotConvertible is returned when an adapter is asked for a type it
	// does not serve.
	ErrNotConvertible = errors.New("enumx(codec): type is not a concrete entity type")
)

// DecodeError describes a wire value that does not denote an instance.
type DecodeError struct {
	// Format is the wire format, e.g. "json".
	Format string
	// Type is the short name of the target type.
	Type string
	// Token renders the offending token, e.g. `"bogus"` or `99`.
	Token string
	// Kind names the token kind when the kind itself is unexpected.
	Kind string
	// ValidCodes lists valid codes, capped by Config.MaxListedCodes.
	ValidCodes []string
	// Truncated reports whether ValidCodes was capped.
	Truncated bool
	// Err is the underlying failure, if any.
	Err error
}

// Error implements error.
func (e *DecodeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "enumx(%s): ", e.Format)
	switch {
	case e.Kind != "":
		fmt.Fprintf(&b, "cannot decode %s from unexpected token kind %s", e.Type, e.Kind)
	case e.ValidCodes != nil:
		fmt.Fprintf(&b, "%s is not a valid code for %s; valid codes: %s", e.Token, e.Type, strings.Join(e.ValidCodes, ", "))
		if e.Truncated {
			b.WriteString(", ...")
		}
	default:
		fmt.Fprintf(&b, "%s does not denote an instance of %s", e.Token, e.Type)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrDecode) hold.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Unwrap returns the underlying failure.
func (e *DecodeError) Unwrap() error { return e.Err }

// CanConvert reports whether adapters serve t: a concrete type implementing
// apis.Entity other than the base types of package entity.
func CanConvert(t reflect.Type) bool {
	return uref.IsConcrete(t)
}

// Binding resolves wire values of one concrete type.
type Binding struct {
	// Format names the wire format in errors.
	Format string
	// Type is the bound concrete type.
	Type reflect.Type
	// Registry holds the instance set of Type.
	Registry apis.Registry
	// Config tunes decoding.
	Config apis.Config
}

// Bind checks t and returns a Binding for it.
func Bind(format string, t reflect.Type, reg apis.Registry, cfg apis.Config) (Binding, error) {
	if !CanConvert(t) {
		return Binding{}, fmt.Errorf("%w: %v", ErrNotConvertible, t)
	}
	return Binding{Format: format, Type: t, Registry: reg, Config: cfg}, nil
}

// Code resolves a string token. An empty string is absent when
// Config.EmptyAsAbsent is set.
func (b Binding) Code(s string) (apis.Entity, error) {
	if s == "" && b.Config.EmptyAsAbsent {
		return nil, nil
	}
	e, err := lookup.FindCode(b.Registry, b.Type, s, b.Config.CodeMatch)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, lookup.ErrInvalidState) && !errors.Is(err, lookup.ErrNullArgument) {
		return nil, b.fail(fmt.Sprintf("%q", s), err)
	}
	de := &DecodeError{Format: b.Format, Type: uref.DisplayName(b.Type), Token: fmt.Sprintf("%q", s)}
	max := b.Config.MaxListedCodes
	limit := 0
	if max > 0 {
		limit = max + 1
	}
	codes, cerr := lookup.CodesOf(b.Registry, b.Type, limit)
	if cerr != nil {
		de.Err = cerr
		return nil, de
	}
	if max > 0 && len(codes) > max {
		codes, de.Truncated = codes[:max], true
	}
	if codes == nil {
		codes = []string{}
	}
	de.ValidCodes = codes
	return nil, de
}

// Value resolves a numeric token. It fails when Config.AcceptNumeric is off.
func (b Binding) Value(v int64) (apis.Entity, error) {
	if !b.Config.AcceptNumeric {
		return nil, b.Unexpected("number")
	}
	e, err := lookup.FindValue(b.Registry, b.Type, v)
	if err == nil {
		return e, nil
	}
	if errors.Is(err, lookup.ErrInvalidState) {
		return nil, &DecodeError{Format: b.Format, Type: uref.DisplayName(b.Type), Token: fmt.Sprint(v)}
	}
	return nil, b.fail(fmt.Sprint(v), err)
}

// Unexpected reports a token of the wrong kind.
func (b Binding) Unexpected(kind string) error {
	return &DecodeError{Format: b.Format, Type: uref.DisplayName(b.Type), Kind: kind}
}

// Malformed reports a token that could not be read at all.
func (b Binding) Malformed(token string, err error) error {
	return b.fail(token, err)
}

// IsAbsent reports whether e stands for no entity: nil, a nil pointer, or
// the zero value of a concrete type.
func IsAbsent(e apis.Entity) bool {
	return entity.IsNil(e) || e.Code() == ""
}

// Check verifies that e is an instance of the bound type before it is
// written. Absent entities always pass.
func (b Binding) Check(e apis.Entity) error {
	if IsAbsent(e) {
		return nil
	}
	if t := reflect.TypeOf(e); t != b.Type {
		return fmt.Errorf("enumx(%s): cannot encode %v with a converter for %v", b.Format, t, b.Type)
	}
	return nil
}

func (b Binding) fail(token string, err error) error {
	return &DecodeError{Format: b.Format, Type: uref.DisplayName(b.Type), Token: token, Err: err}
}
