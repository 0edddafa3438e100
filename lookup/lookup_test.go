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

package lookup_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/bridge"
	"dirpx.dev/enumx/entity"
	"dirpx.dev/enumx/lookup"
	"dirpx.dev/enumx/registry"
)

// T is a plain smart enumeration with two instances.
type T struct{ entity.Base }

var (
	OptionOne = T{entity.MustNew(1, "OptionOne")}
	OptionTwo = T{entity.MustNew(2, "OptionTwo")}
)

// Letters has a code whose case matters.
type Letters struct{ entity.Base }

var ABC = Letters{entity.MustNew(1, "ABC")}

// Dup declares two instances sharing a value and a code.
type Dup struct{ entity.Base }

var (
	DupFirst  = Dup{entity.MustNew(1, "Same")}
	DupSecond = Dup{entity.MustNew(1, "Same")}
)

// Hidden declares no public instances.
type Hidden struct{ entity.Base }

// Broken has a failing source.
type Broken struct{ entity.Base }

// Size is bridged to a 64-bit native enumeration.
type SizeID int64

const (
	SizeSmall     SizeID = 1
	SizeVeryLarge SizeID = 5000000000
	SizeUnknown   SizeID = 42
)

type Size struct{ entity.Bridged[SizeID] }

var (
	Small     = Size{entity.MustNewBridged(SizeSmall, "Small")}
	VeryLarge = Size{entity.MustNewBridged(SizeVeryLarge, "VeryLarge")}
)

// Flag is bridged to an unsigned 64-bit native enumeration.
type FlagID uint64

type Flag struct{ entity.Bridged[FlagID] }

var FlagOn = Flag{entity.MustNewBridged(FlagID(1), "On")}

// Region names itself in error messages.
type Region struct{ entity.Base }

func (Region) EntityName() string { return "geo.region" }

var EU = Region{entity.MustNew(1, "EU")}

func newRegistry(t *testing.T) apis.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, registry.Declare(reg, OptionOne, OptionTwo))
	require.NoError(t, registry.Declare(reg, ABC))
	require.NoError(t, registry.Declare(reg, DupFirst, DupSecond))
	require.NoError(t, registry.Declare(reg, Small, VeryLarge))
	require.NoError(t, registry.Declare(reg, FlagOn))
	require.NoError(t, registry.Declare(reg, EU))
	require.NoError(t, registry.DeclareFunc(reg, func() []Broken { return []Broken{{}} }))
	return reg
}

func TestFromValue(t *testing.T) {
	reg := newRegistry(t)

	got, err := lookup.FromValue[T](reg, 1)
	require.NoError(t, err)
	assert.Equal(t, "OptionOne", got.Code())
	assert.True(t, entity.Equal(OptionOne, got))

	_, err = lookup.FromValue[T](reg, 99)
	require.ErrorIs(t, err, lookup.ErrInvalidState)
	assert.EqualError(t, err, "'99' is not a valid value in T")

	var nf *lookup.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "99", nf.Input)
	assert.Equal(t, "value", nf.Field)
	assert.Equal(t, "T", nf.Type)
}

func TestFromCode(t *testing.T) {
	reg := newRegistry(t)

	got, err := lookup.FromCode[T](reg, "OptionTwo", false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Value())

	_, err = lookup.FromCode[T](reg, "bogus", false)
	require.ErrorIs(t, err, lookup.ErrInvalidState)
	assert.EqualError(t, err, "'bogus' is not a valid code in T")

	_, err = lookup.FromCode[T](reg, "", false)
	require.ErrorIs(t, err, lookup.ErrNullArgument)
}

func TestNotFound_UsesEntityName(t *testing.T) {
	_, err := lookup.FromCode[Region](newRegistry(t), "US", false)
	assert.EqualError(t, err, "'US' is not a valid code in geo.region")
}

func TestFromCode_CaseSensitivity(t *testing.T) {
	reg := newRegistry(t)

	_, err := lookup.FromCode[Letters](reg, "abc", false)
	require.ErrorIs(t, err, lookup.ErrInvalidState)

	got, err := lookup.FromCode[Letters](reg, "abc", true)
	require.NoError(t, err)
	assert.True(t, entity.Equal(ABC, got))
}

func TestFirstMatchWins(t *testing.T) {
	reg := newRegistry(t)

	byValue, err := lookup.FromValue[Dup](reg, 1)
	require.NoError(t, err)
	assert.Equal(t, DupFirst, byValue)

	byCode, err := lookup.FromCode[Dup](reg, "Same", false)
	require.NoError(t, err)
	assert.Equal(t, DupFirst, byCode)
}

func TestHiddenTypeHasNoInstances(t *testing.T) {
	reg := newRegistry(t)

	_, err := lookup.FromValue[Hidden](reg, 1)
	require.ErrorIs(t, err, lookup.ErrInvalidState)
	_, ok := lookup.TryFromValue[Hidden](reg, 1)
	assert.False(t, ok)
}

func TestFromEnum(t *testing.T) {
	reg := newRegistry(t)

	got, err := lookup.FromEnum[Size](reg, SizeVeryLarge)
	require.NoError(t, err)
	assert.Equal(t, int64(5000000000), got.Value())
	assert.Equal(t, SizeVeryLarge, got.ID())

	_, err = lookup.FromEnum[Size](reg, SizeUnknown)
	require.ErrorIs(t, err, lookup.ErrInvalidState)
	assert.EqualError(t, err, "'42' is not a valid value in Size")

	_, err = lookup.FromEnum[Flag](reg, FlagID(math.MaxUint64))
	require.ErrorIs(t, err, bridge.ErrOverflow)
}

func TestEnumRoundTrip(t *testing.T) {
	reg := newRegistry(t)

	for _, id := range []SizeID{SizeSmall, SizeVeryLarge} {
		got, err := lookup.FromEnum[Size](reg, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
	}
}

func TestRoundTrip_ValueAndCode(t *testing.T) {
	reg := newRegistry(t)

	all, err := registry.All[T](reg)
	require.NoError(t, err)
	for _, x := range all {
		byValue, err := lookup.FromValue[T](reg, x.Value())
		require.NoError(t, err)
		assert.True(t, entity.Equal(x, byValue))

		byCode, err := lookup.FromCode[T](reg, x.Code(), false)
		require.NoError(t, err)
		assert.True(t, entity.Equal(x, byCode))
	}
}

func TestUniqueValuesInWellFormedTypes(t *testing.T) {
	reg := newRegistry(t)

	values, err := lookup.Values[T](reg)
	require.NoError(t, err)
	seen := map[int64]bool{}
	for _, v := range values {
		assert.False(t, seen[v], "duplicate value %d", v)
		seen[v] = true
	}

	codes, err := lookup.Codes[T](reg)
	require.NoError(t, err)
	assert.Equal(t, []string{"OptionOne", "OptionTwo"}, codes)
}

// TestTryStrictConsistency checks that try succeeds exactly when strict does.
func TestTryStrictConsistency(t *testing.T) {
	reg := newRegistry(t)

	for _, v := range []int64{-1, 0, 1, 2, 3, math.MaxInt64} {
		strict, err := lookup.FromValue[T](reg, v)
		tried, ok := lookup.TryFromValue[T](reg, v)
		assert.Equal(t, err == nil, ok, "value %d", v)
		if err == nil {
			assert.Equal(t, strict, tried)
		} else {
			assert.ErrorIs(t, err, lookup.ErrInvalidState)
			assert.Equal(t, T{}, tried)
		}
	}

	for _, code := range []string{"", "OptionOne", "optionone", "OptionTwo", "nope"} {
		for _, fold := range []bool{false, true} {
			strict, err := lookup.FromCode[T](reg, code, fold)
			tried, ok := lookup.TryFromCode[T](reg, code, fold)
			assert.Equal(t, err == nil, ok, "code %q fold %v", code, fold)
			if err == nil {
				assert.Equal(t, strict, tried)
			}
		}
	}

	for _, id := range []SizeID{SizeSmall, SizeVeryLarge, SizeUnknown} {
		strict, err := lookup.FromEnum[Size](reg, id)
		tried, ok := lookup.TryFromEnum[Size](reg, id)
		assert.Equal(t, err == nil, ok, "id %d", id)
		if err == nil {
			assert.Equal(t, strict, tried)
		}
	}

	_, ok := lookup.TryFromEnum[Flag](reg, FlagID(math.MaxUint64))
	assert.False(t, ok)
}

func TestTry_NotEntityIsAMiss(t *testing.T) {
	reg := newRegistry(t)
	_, ok := lookup.TryFromValue[apis.Entity](reg, 1)
	assert.False(t, ok)
}

func TestTry_BrokenSourcePanics(t *testing.T) {
	reg := newRegistry(t)

	_, err := lookup.FromValue[Broken](reg, 1)
	require.ErrorIs(t, err, registry.ErrInvalidSource)
	assert.Panics(t, func() { lookup.TryFromValue[Broken](reg, 1) })
	assert.Panics(t, func() { lookup.TryFromCode[Broken](reg, "x", false) })
}

// Shade is declared through a namespace that also holds a look-alike field.
type Shade struct{ entity.Base }

func TestTry_NamespaceWithLookAlikeField(t *testing.T) {
	reg := registry.New()
	ns := struct {
		Light Shade
		Dark  struct{ entity.Base }
	}{
		Light: Shade{entity.MustNew(1, "Light")},
		Dark:  struct{ entity.Base }{entity.MustNew(2, "Dark")},
	}
	require.NoError(t, registry.DeclareFields[Shade](reg, ns))

	var (
		got Shade
		ok  bool
	)
	require.NotPanics(t, func() { got, ok = lookup.TryFromValue[Shade](reg, 1) })
	assert.True(t, ok)
	assert.Equal(t, "Light", got.Code())

	_, ok = lookup.TryFromValue[Shade](reg, 2)
	assert.False(t, ok)
}

func TestMust(t *testing.T) {
	reg := newRegistry(t)

	assert.Equal(t, OptionTwo, lookup.MustFromValue[T](reg, 2))
	assert.Equal(t, OptionOne, lookup.MustFromCode[T](reg, "optionone", true))
	assert.Panics(t, func() { lookup.MustFromValue[T](reg, 3) })
	assert.Panics(t, func() { lookup.MustFromCode[T](reg, "", false) })
}

func TestCodesOf_Limit(t *testing.T) {
	reg := newRegistry(t)

	codes, err := lookup.CodesOf(reg, entity.KeyOf(OptionOne).Type, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"OptionOne"}, codes)
}

func BenchmarkFromValue(b *testing.B) {
	reg := registry.New()
	if err := registry.Declare(reg, OptionOne, OptionTwo); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lookup.FromValue[T](reg, 2)
	}
}

func BenchmarkFromCode_IgnoreCase(b *testing.B) {
	reg := registry.New()
	if err := registry.Declare(reg, OptionOne, OptionTwo); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lookup.FromCode[T](reg, "optiontwo", true)
	}
}
