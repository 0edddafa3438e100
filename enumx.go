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

package enumx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/bridge"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/lookup"
	"dirpx.dev/enumx/registry"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.bld = b
	st.Store(s)
}

// ErrNilRegistry is raised when a builder returns a nil registry.
var ErrNilRegistry = errors.New("enumx: builder returned nil registry")

// Declare declares instances, in order, as the instance set of T in the
// global registry. It is meant to be called from an init function.
func Declare[T apis.Entity](instances ...T) error {
	return registry.Declare(Registry(), instances...)
}

// MustDeclare is like Declare but panics on error.
func MustDeclare[T apis.Entity](instances ...T) {
	if err := Declare(instances...); err != nil {
		panic(err)
	}
}

// DeclareFields declares the exported fields of type T of namespace as the
// instance set of T in the global registry.
func DeclareFields[T apis.Entity](namespace any) error {
	return registry.DeclareFields[T](Registry(), namespace)
}

// MustDeclareFields is like DeclareFields but panics on error.
func MustDeclareFields[T apis.Entity](namespace any) {
	if err := DeclareFields[T](namespace); err != nil {
		panic(err)
	}
}

// All returns the instances of T from the global registry.
func All[T apis.Entity]() ([]T, error) {
	return registry.All[T](Registry())
}

// FromValue looks up T by value in the global registry.
func FromValue[T apis.Entity](v int64) (T, error) {
	return lookup.FromValue[T](Registry(), v)
}

// TryFromValue looks up T by value in the global registry.
func TryFromValue[T apis.Entity](v int64) (T, bool) {
	return lookup.TryFromValue[T](Registry(), v)
}

// FromCode looks up T by code in the global registry.
func FromCode[T apis.Entity](code string, ignoreCase bool) (T, error) {
	return lookup.FromCode[T](Registry(), code, ignoreCase)
}

// TryFromCode looks up T by code in the global registry.
func TryFromCode[T apis.Entity](code string, ignoreCase bool) (T, bool) {
	return lookup.TryFromCode[T](Registry(), code, ignoreCase)
}

// FromEnum looks up T by native enumeration value in the global registry.
func FromEnum[T apis.Entity, E bridge.Integer](e E) (T, error) {
	return lookup.FromEnum[T](Registry(), e)
}

// TryFromEnum looks up T by native enumeration value in the global registry.
func TryFromEnum[T apis.Entity, E bridge.Integer](e E) (T, bool) {
	return lookup.TryFromEnum[T](Registry(), e)
}

// SetAll explicitly sets all global state components.
//
// A nil cfg or bld leaves the corresponding component unchanged. A nil reg
// rebuilds the registry through the builder and unpins it; a non-nil reg is
// installed and pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	nreg := reg
	npreg := true
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg)
		npreg = false
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}

	st.Store(&state{cfg: ncfg, reg: nreg, bld: nbld, preg: npreg})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration. The registry is kept as is,
// populated instance sets and counters included: the config only tunes the
// adapters and is handed to the builder on the next rebuild.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, reg: old.reg, bld: old.bld, preg: old.preg})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the global registry and pins it.
// A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: reg, bld: old.bld, preg: true})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds the registry with it
// unless the registry is pinned. A nil builder is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg)
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}

	st.Store(&state{cfg: old.cfg, reg: nreg, bld: b, preg: old.preg})
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops rebuilds of the global registry.
func PinRegistry() {
	setPinned(true)
}

// UnpinRegistry lets SetBuilder and SetAll rebuild the registry again.
func UnpinRegistry() {
	setPinned(false)
}

func setPinned(pinned bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: old.reg, bld: old.bld, preg: pinned})
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable once published via st.Store; writers create a new state and
// swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
}
