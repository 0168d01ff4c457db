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
	"svlang.org/sv/ast"
	"svlang.org/sv/internal/core/styp"
	"svlang.org/sv/internal/core/sym"
	"svlang.org/sv/token"
)

// GetType resolves a data-type syntax node to its canonical *styp.Type,
// appending a diagnostic to the semantic stream on any resolution
// failure instead of raising an error (spec §4.3/§4.6).
func (c *Compilation) GetType(syntax ast.DataTypeSyntax, lookupLoc token.Pos, parentScope *sym.Scope, allowNetType, forceSigned bool) *styp.Type {
	t := c.Types.FromSyntax(syntax, lookupLoc, parentScope, allowNetType, forceSigned, c.semanticDiags)
	c.invalidateDiagCache()
	return t
}

// GetPackedType returns the canonical packed integral type for (width,
// flags), caching on first request (spec §4.3).
func (c *Compilation) GetPackedType(width int, flags styp.PackedFlags) *styp.Type {
	t := c.Types.GetPacked(width, flags)
	c.Stats.PackedTypesCached = int64(c.Types.CacheSize())
	return t
}

// GetNetType looks up a net-type keyword.
func (c *Compilation) GetNetType(name string) *styp.NetType { return c.Types.LookupNetType(name) }

// WireNetType returns the implicit default net type.
func (c *Compilation) WireNetType() *styp.NetType { return c.Types.WireNetType() }
