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
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/entity"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNotEntity is returned for a type that cannot own an instance set:
	// nil, an interface, an anonymous type or a type not implementing apis.Entity.
	ErrNotEntity = errors.New("enumx(registry): not a concrete entity type")
	// ErrNilSource is returned when a nil source is declared.
	ErrNilSource = errors.New("enumx(registry): nil source provided")
	// ErrDuplicateDeclaration indicates a second declaration for a type.
	ErrDuplicateDeclaration = errors.New("enumx(registry): type already declared")
	// ErrSealed indicates a declaration for a type whose instance set has
	// already been populated.
	ErrSealed = errors.New("enumx(registry): instance set already populated")
	// ErrInvalidSource wraps failures of a source while populating a type.
	ErrInvalidSource = errors.New("enumx(registry): invalid instance source")
)

// Option configures a registry.
type Option func(*registry)

// WithLogger sets the logger used for declaration and population events.
// A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(r *registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New constructs an empty Registry.
func New(opts ...Option) apis.Registry {
	r := &registry{
		log:   slog.New(slog.DiscardHandler),
		decls: make(map[reflect.Type]apis.Source),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// registry caches instance sets in a sync.Map keyed by reflect.Type.
// Populated sets are immutable; readers never take a lock.
type registry struct {
	// log receives debug events.
	log *slog.Logger
	// mu guards decls, order and the sealing of undeclared types.
	mu sync.Mutex
	// decls maps a declared type to its source.
	decls map[reflect.Type]apis.Source
	// order keeps declaration order for Declarations.
	order []reflect.Type
	// cache maps reflect.Type to its published []apis.Entity.
	cache sync.Map
	// group collapses concurrent first-time populations of the same type.
	group singleflight.Group

	populations atomic.Uint64
	hits        atomic.Uint64
	misses      atomic.Uint64
}

// Declare records src as the source of t's instance set.
func (r *registry) Declare(t reflect.Type, src apis.Source) error {
	if _, err := uref.Normalize(t); err != nil {
		return fmt.Errorf("%w: %v: %w", ErrNotEntity, t, err)
	}
	if src == nil {
		return ErrNilSource
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cache.Load(t); ok {
		return fmt.Errorf("%w: %v", ErrSealed, t)
	}
	if _, ok := r.decls[t]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateDeclaration, t)
	}
	r.decls[t] = src
	r.order = append(r.order, t)
	r.log.Debug("enumx: type declared", slog.String("type", t.String()))
	return nil
}

// All returns a copy of t's instance set.
func (r *registry) All(t reflect.Type) ([]apis.Entity, error) {
	items, err := r.load(t)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

// Range iterates t's instance set without copying it.
func (r *registry) Range(t reflect.Type, fn func(e apis.Entity) bool) error {
	items, err := r.load(t)
	if err != nil {
		return err
	}
	for _, e := range items {
		if !fn(e) {
			return nil
		}
	}
	return nil
}

// load returns the published instance set of t, populating it on first use.
func (r *registry) load(t reflect.Type) ([]apis.Entity, error) {
	if _, err := uref.Normalize(t); err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrNotEntity, t, err)
	}

	// Fast path: already published.
	if v, ok := r.cache.Load(t); ok {
		r.hits.Add(1)
		return v.([]apis.Entity), nil
	}
	r.misses.Add(1)

	v, err, _ := r.group.Do(flightKey(t), func() (any, error) {
		// Another flight may have published while we were queued.
		if v, ok := r.cache.Load(t); ok {
			return v, nil
		}
		return r.populate(t)
	})
	if err != nil {
		return nil, err
	}
	return v.([]apis.Entity), nil
}

// populate computes and publishes the instance set of t.
func (r *registry) populate(t reflect.Type) ([]apis.Entity, error) {
	r.mu.Lock()
	src, ok := r.decls[t]
	if !ok {
		// Nothing declared: publish an empty set under the lock so a later
		// Declare observes the seal.
		v, _ := r.cache.LoadOrStore(t, []apis.Entity{})
		r.mu.Unlock()
		r.populations.Add(1)
		r.log.Debug("enumx: type has no declared instances", slog.String("type", t.String()))
		return v.([]apis.Entity), nil
	}
	r.mu.Unlock()

	items, err := src.Instances()
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrInvalidSource, t, err)
	}
	out := make([]apis.Entity, 0, len(items))
	for i, e := range items {
		if entity.IsNil(e) {
			return nil, fmt.Errorf("%w: %v: instance #%d is nil", ErrInvalidSource, t, i)
		}
		if et := reflect.TypeOf(e); et != t {
			return nil, fmt.Errorf("%w: %v: instance #%d has type %v", ErrInvalidSource, t, i, et)
		}
		if e.Code() == "" {
			return nil, fmt.Errorf("%w: %v: instance #%d: %w", ErrInvalidSource, t, i, entity.ErrEmptyCode)
		}
		out = append(out, e)
	}

	v, _ := r.cache.LoadOrStore(t, out)
	r.populations.Add(1)
	r.log.Debug("enumx: instance set populated",
		slog.String("type", t.String()),
		slog.Int("count", len(out)),
	)
	return v.([]apis.Entity), nil
}

// Declarations returns declared types and sources in declaration order.
func (r *registry) Declarations() []apis.Declaration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]apis.Declaration, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, apis.Declaration{Type: t, Source: r.decls[t]})
	}
	return out
}

// Stats returns a snapshot of the registry counters.
func (r *registry) Stats() apis.Stats {
	r.mu.Lock()
	declared := len(r.decls)
	r.mu.Unlock()

	st := apis.Stats{
		Declared:    declared,
		Populations: r.populations.Load(),
		Hits:        r.hits.Load(),
		Misses:      r.misses.Load(),
	}
	r.cache.Range(func(key, value any) bool {
		st.Populated = append(st.Populated, apis.TypeStats{
			Type:      key.(reflect.Type),
			Instances: len(value.([]apis.Entity)),
		})
		return true
	})
	slices.SortFunc(st.Populated, func(a, b apis.TypeStats) int {
		return cmp.Compare(a.Type.String(), b.Type.String())
	})
	return st
}

// Reset clears all declarations, cached sets and counters.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decls = make(map[reflect.Type]apis.Source)
	r.order = nil
	r.cache.Clear()
	r.populations.Store(0)
	r.hits.Store(0)
	r.misses.Store(0)
}

// flightKey identifies t within the singleflight group. Type strings are not
// unique across packages, so the rtype address is part of the key.
func flightKey(t reflect.Type) string {
	return fmt.Sprintf("%p/%s", t, t)
}
