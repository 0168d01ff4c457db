// Copyright 2020 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compilation

import "svlang.org/sv/internal/core/sym"

// AddSystemSubroutine registers sub under its own name (spec §4.6). A
// later registration with the same name silently replaces the earlier
// one, matching the original header's unique_ptr-keyed map semantics
// (last write wins, no diagnostic — system subroutines are registered by
// the driver, not by user source text, so a name collision here is a
// driver bug rather than a user-visible error).
func (c *Compilation) AddSystemSubroutine(sub *SystemSubroutine) {
	c.checkMutable()
	c.subroutines[sub.Name] = sub
}

// SystemSubroutine looks up a registered built-in subroutine by name.
func (c *Compilation) SystemSubroutine(name string) *SystemSubroutine {
	return c.subroutines[name]
}

// AddSystemMethod registers method under (typeKind, method.Name).
func (c *Compilation) AddSystemMethod(typeKind sym.Kind, method *SystemSubroutine) {
	c.checkMutable()
	c.methods[methodKey{typeKind, method.Name}] = method
}

// SystemMethod looks up a registered built-in method by (typeKind,
// name).
func (c *Compilation) SystemMethod(typeKind sym.Kind, name string) *SystemSubroutine {
	return c.methods[methodKey{typeKind, name}]
}
