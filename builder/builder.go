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

package builder

import (
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/registry"
)

// New creates and returns a new instance of an apis.Builder. The options are
// applied to every registry it builds.
func New(opts ...registry.Option) apis.Builder {
	return &builder{opts: opts}
}

// builder carries the registry options shared by every build.
type builder struct {
	opts []registry.Option
}

// BuildRegistry builds and returns a new apis.Registry. If a previous
// registry is provided, its declarations are copied into the new registry in
// declaration order. Instance sets are not copied; they are populated again
// on first use.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New(b.opts...)
	if prev != nil {
		for _, d := range prev.Declarations() {
			_ = nreg.Declare(d.Type, d.Source)
		}
	}
	return nreg
}
