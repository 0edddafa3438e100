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

package sample

import "dirpx.dev/enumx/entity"

type Status struct{ entity.Base }

var (
	Active   = Status{entity.MustNew(1, "active")}
	Inactive = Status{entity.MustNew(2, "inactive")}
)

type Mode struct{ entity.Base }

var Auto = Mode{entity.MustNew(1, "auto")}
