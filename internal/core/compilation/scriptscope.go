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

import (
	"fmt"

	"svlang.org/sv/internal/core/sym"
)

// CreateScriptScope returns a fresh compilation-unit scope usable for
// runtime-scripting scenarios (spec §4.6). Unlike AddSyntaxTree, this
// succeeds even after finalization — but any instantiation recorded
// inside a post-finalization script scope never influences top-level
// instance selection, since that selection already ran during GetRoot.
//
// The scope is named after this Compilation's id and its ordinal among
// script scopes created so far, so names stay distinct when several
// Compilations' script scopes are logged or displayed side by side.
func (c *Compilation) CreateScriptScope() *sym.Scope {
	name := fmt.Sprintf("$unit$%s$%d", c.id, len(c.scriptScopes))
	scope := sym.NewScope(sym.KindCompilationUnit, name)
	c.scriptScopes = append(c.scriptScopes, scope)
	if c.state != stateFinalized {
		c.compilationUnits = append(c.compilationUnits, scope)
	}
	return scope
}

// ScriptScopes returns every scope created via CreateScriptScope, in
// creation order.
func (c *Compilation) ScriptScopes() []*sym.Scope {
	return append([]*sym.Scope(nil), c.scriptScopes...)
}
