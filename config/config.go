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

package config

import (
	"dirpx.dev/enumx/apis"
)

const (
	// DefaultCodeMatch represents the default for CodeMatch.
	// Codes on the wire are compared byte for byte.
	DefaultCodeMatch = apis.Ordinal
	// DefaultMaxListedCodes represents the default for MaxListedCodes.
	// Decode errors quote at most this many valid codes.
	DefaultMaxListedCodes = 20
	// DefaultAcceptNumeric represents the default for AcceptNumeric.
	// When true, codecs also accept the numeric value on the wire.
	DefaultAcceptNumeric = true
	// DefaultEmptyAsAbsent represents the default for EmptyAsAbsent.
	// When true, an empty string decodes to an absent entity.
	DefaultEmptyAsAbsent = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxListedCodes is valid.
	if cfg.MaxListedCodes <= 0 {
		cfg.MaxListedCodes = DefaultMaxListedCodes
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		CodeMatch:      DefaultCodeMatch,
		MaxListedCodes: DefaultMaxListedCodes,
		AcceptNumeric:  DefaultAcceptNumeric,
		EmptyAsAbsent:  DefaultEmptyAsAbsent,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithCodeMatch sets the CodeMatch option.
func WithCodeMatch(m apis.Match) Option {
	return func(c *apis.Config) {
		c.CodeMatch = m
	}
}

// WithIgnoreCase sets CodeMatch to OrdinalIgnoreCase when ignore is true
// and to Ordinal otherwise.
func WithIgnoreCase(ignore bool) Option {
	return WithCodeMatch(apis.MatchFor(ignore))
}

// WithMaxListedCodes sets the MaxListedCodes option.
// A non-positive value resets to the default.
func WithMaxListedCodes(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxListedCodes = DefaultMaxListedCodes
			return
		}
		c.MaxListedCodes = max
	}
}

// WithAcceptNumeric sets the AcceptNumeric option.
func WithAcceptNumeric(accept bool) Option {
	return func(c *apis.Config) {
		c.AcceptNumeric = accept
	}
}

// WithEmptyAsAbsent sets the EmptyAsAbsent option.
func WithEmptyAsAbsent(absent bool) Option {
	return func(c *apis.Config) {
		c.EmptyAsAbsent = absent
	}
}
