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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	assert.Equal(t, config.DefaultCodeMatch, got.CodeMatch)
	assert.Equal(t, config.DefaultMaxListedCodes, got.MaxListedCodes)
	assert.Equal(t, config.DefaultAcceptNumeric, got.AcceptNumeric)
	assert.Equal(t, config.DefaultEmptyAsAbsent, got.EmptyAsAbsent)
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	assert.Equal(t, config.DefaultConfig(), config.NewConfig())
}

func TestWithCodeMatch(t *testing.T) {
	c := config.NewConfig(config.WithCodeMatch(apis.OrdinalIgnoreCase))
	assert.Equal(t, apis.OrdinalIgnoreCase, c.CodeMatch)

	c = config.NewConfig(config.WithIgnoreCase(true), config.WithIgnoreCase(false))
	assert.Equal(t, apis.Ordinal, c.CodeMatch)
}

func TestWithMaxListedCodes(t *testing.T) {
	c := config.NewConfig(config.WithMaxListedCodes(3))
	assert.Equal(t, 3, c.MaxListedCodes)

	c = config.NewConfig(config.WithMaxListedCodes(-1))
	assert.Equal(t, config.DefaultMaxListedCodes, c.MaxListedCodes)
}

func TestWithAcceptNumericAndEmptyAsAbsent(t *testing.T) {
	c := config.NewConfig(config.WithAcceptNumeric(false), config.WithEmptyAsAbsent(false))
	assert.False(t, c.AcceptNumeric)
	assert.False(t, c.EmptyAsAbsent)
}

// Options apply in order; the last write wins.
func TestOptions_LastWins(t *testing.T) {
	c := config.NewConfig(config.WithMaxListedCodes(5), config.WithMaxListedCodes(7))
	assert.Equal(t, 7, c.MaxListedCodes)
}
