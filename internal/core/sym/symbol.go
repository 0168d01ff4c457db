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

package sym

import "svlang.org/sv/token"

// Symbol is the universal semantic entity (spec §3). Every symbol carries
// a kind tag, a possibly-empty name, a source location, a pointer to its
// parent scope, and kind-specific payload.
//
// Symbols are allocated from the Compilation's arena and live for the
// Compilation's lifetime; this type itself holds no allocator reference,
// since ownership is singular (the arena owns, this is just the shape of
// what it owns).
type Symbol struct {
	Kind   Kind
	Name   string
	Loc    token.Pos
	Parent *Scope

	// Payload is kind-specific data (e.g. *styp.Type for KindType
	// members, a *defs.Definition for KindDefinition, a
	// constant.Value for a finalized KindParameter). Exported because
	// every owning package needs to populate it and Go generics would
	// not simplify a genuinely heterogeneous field.
	Payload any
}

// ParentChainRoot walks Parent until it finds a Root or CompilationUnit
// symbol, as required by the invariant in spec §3 ("Every symbol's parent
// scope chain terminates at a Root or a CompilationUnit"). It panics if
// the chain is broken, since that indicates a construction bug rather
// than a recoverable condition.
func (s *Symbol) ParentChainRoot() *Scope {
	cur := s.Parent
	for cur != nil {
		if cur.Kind == KindRoot || cur.Kind == KindCompilationUnit {
			return cur
		}
		cur = cur.Parent
	}
	panic("sym: symbol's parent chain does not terminate at a Root or CompilationUnit")
}

// Path returns the names from the nearest enclosing compilation unit
// down to this symbol, outermost first. Empty names are skipped and the
// Root is never included.
func (s *Symbol) Path() []string {
	var parts []string
	for cur := s; cur != nil && cur.Kind != KindRoot; {
		if cur.Name != "" {
			parts = append([]string{cur.Name}, parts...)
		}
		if cur.Kind == KindCompilationUnit {
			break
		}
		var parentSym *Symbol
		if cur.Parent != nil {
			parentSym = &cur.Parent.Symbol
		}
		if parentSym == nil {
			break
		}
		cur = parentSym
	}
	return parts
}
