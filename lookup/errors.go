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

package lookup

import (
	"errors"
	"fmt"

	"dirpx.dev/enumx/bridge"
	"dirpx.dev/enumx/registry"
)

var (
	// ErrInvalidState is matched by every "no such instance" failure.
	ErrInvalidState = errors.New("enumx(lookup): no matching instance")
	// ErrNullArgument is returned for an absent (empty) code.
	ErrNullArgument = errors.New("enumx(lookup): code must not be empty")
)

// NotFoundError reports a strict lookup without a match. Its message is
// stable: "'<input>' is not a valid <field> in <Type>".
type NotFoundError struct {
	// Input is the offending value or code as given.
	Input string
	// Field is "value" or "code".
	Field string
	// Type is the short name of the concrete type searched.
	Type string
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s' is not a valid %s in %s", e.Input, e.Field, e.Type)
}

// Is makes errors.Is(err, ErrInvalidState) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrInvalidState
}

// isLookupFailure reports whether err is one of the failures a try variant
// turns into a plain miss. Anything else means a misconfigured type.
func isLookupFailure(err error) bool {
	return errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrNullArgument) ||
		errors.Is(err, registry.ErrNotEntity) ||
		errors.Is(err, bridge.ErrOverflow) ||
		errors.Is(err, bridge.ErrUnsupportedKind)
}

// try converts a strict result into a try result. Unexpected failures panic.
func try[T any](v T, err error) (T, bool) {
	if err == nil {
		return v, true
	}
	if isLookupFailure(err) {
		var zero T
		return zero, false
	}
	panic(err)
}
