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

// Config carries read-only knobs for lookups and codecs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// CodeMatch selects how codecs compare incoming codes with declared ones.
	CodeMatch Match

	// MaxListedCodes caps the number of valid codes quoted in decode errors.
	MaxListedCodes int

	// AcceptNumeric lets codecs decode numeric tokens through the value
	// identity, for payloads written before codes were used on the wire.
	AcceptNumeric bool

	// EmptyAsAbsent makes codecs decode an empty string as an absent entity.
	EmptyAsAbsent bool
}
