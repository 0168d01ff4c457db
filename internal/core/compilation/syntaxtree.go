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

// AddSyntaxTree retains tree and registers a new compilation-unit symbol
// for it (spec §4.6). Panics if the compilation has already been
// finalized.
func (c *Compilation) AddSyntaxTree(tree *SyntaxTree) *sym.Scope {
	c.checkMutable()

	unit := c.AllocScope(sym.KindCompilationUnit, "")
	unit.Loc = tree.Unit.Pos()

	c.syntaxTrees = append(c.syntaxTrees, tree)
	c.compilationUnits = append(c.compilationUnits, unit)
	if tree.Diags != nil {
		for _, d := range *tree.Diags {
			c.parseDiags.Add(d)
		}
	}
	c.invalidateDiagCache()
	return unit
}

// SyntaxTrees returns the syntax trees added so far, in AddSyntaxTree
// order.
func (c *Compilation) SyntaxTrees() []*SyntaxTree {
	return append([]*SyntaxTree(nil), c.syntaxTrees...)
}

// CompilationUnits returns the compilation-unit symbols registered so
// far, in registration order (one per added tree, plus any script
// scopes created via CreateScriptScope before finalization; script
// scopes created after finalization are listed only by ScriptScopes).
func (c *Compilation) CompilationUnits() []*sym.Scope {
	return append([]*sym.Scope(nil), c.compilationUnits...)
}
