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

package apis

import (
	"fmt"
	"strings"
)

// Match controls how a code lookup compares an input with declared codes.
//
// # Values
//
//   - Ordinal: byte-for-byte comparison.
//   - OrdinalIgnoreCase: comparison under Unicode simple case folding.
//
// Match is a plain integer and is safe to share across goroutines. New
// values may be added; existing values keep their semantics.
type Match int

const (
	// Ordinal compares codes byte for byte. "ABC" does not match "abc".
	Ordinal Match = iota

	// OrdinalIgnoreCase compares codes under Unicode simple case folding,
	// as strings.EqualFold does. "ABC" matches "abc".
	OrdinalIgnoreCase
)

// MatchFor returns OrdinalIgnoreCase when ignoreCase is set, Ordinal otherwise.
func MatchFor(ignoreCase bool) Match {
	if ignoreCase {
		return OrdinalIgnoreCase
	}
	return Ordinal
}

// String returns the canonical name of m.
func (m Match) String() string {
	switch m {
	case Ordinal:
		return "Ordinal"
	case OrdinalIgnoreCase:
		return "OrdinalIgnoreCase"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// IgnoreCase reports whether m folds case.
func (m Match) IgnoreCase() bool { return m == OrdinalIgnoreCase }

// ParseMatch parses a Match from its name, case-insensitively.
func ParseMatch(s string) (Match, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Ordinal, fmt.Errorf("enumx: empty match")
	}

	switch strings.ToUpper(trimmed) {
	case "ORDINAL":
		return Ordinal, nil
	case "ORDINALIGNORECASE":
		return OrdinalIgnoreCase, nil
	default:
		return Ordinal, fmt.Errorf("enumx: unknown match %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Match) MarshalText() ([]byte, error) {
	switch m {
	case Ordinal, OrdinalIgnoreCase:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("enumx: cannot marshal unknown match %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Match) UnmarshalText(text []byte) error {
	v, err := ParseMatch(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
