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

// Compilation implements sym.Host: it owns the side-band
// deferred-member and wildcard-import tables that scopes address via
// opaque indices, exactly as the original header's Compilation owns
// deferredData/importData keyed by Scope::DeferredMemberIndex /
// Scope::ImportDataIndex. This package uses the scope pointer itself as
// the map key rather than a SafeIndexedVector slot, since Go scopes are
// arena-stable pointers already; the index fields on sym.Scope still
// exist to mirror the spec's "opaque handle" shape for anything that
// wants to reason about identity without an exposed pointer.
var _ sym.Host = (*Compilation)(nil)

// GetOrAddDeferredData lazily allocates s's deferred-member record.
func (c *Compilation) GetOrAddDeferredData(s *sym.Scope) *sym.DeferredMemberData {
	if d, ok := c.deferredData[s]; ok {
		return d
	}
	d := &sym.DeferredMemberData{}
	c.deferredData[s] = d
	s.SetDeferredIndex(sym.DeferredMemberIndex(len(c.deferredData)))
	return d
}

// TrackImport appends imp to s's wildcard-import list.
func (c *Compilation) TrackImport(s *sym.Scope, imp *sym.WildcardImport) {
	d, ok := c.importData[s]
	if !ok {
		d = &sym.ImportData{}
		c.importData[s] = d
		s.SetImportIndex(sym.ImportDataIndex(len(c.importData)))
	}
	d.Imports = append(d.Imports, imp)
	c.Stats.WildcardImportsConsulted++
}

// QueryImports returns s's wildcard-import snapshot.
func (c *Compilation) QueryImports(s *sym.Scope) []*sym.WildcardImport {
	d, ok := c.importData[s]
	if !ok {
		return nil
	}
	return d.Imports
}
