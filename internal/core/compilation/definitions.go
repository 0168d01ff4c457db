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
	"svlang.org/sv/internal/core/defs"
	"svlang.org/sv/internal/core/sym"
)

// AddDefinition registers def under declScope (spec §4.6 addDefinition).
// Panics if the compilation is no longer Open; a duplicate (name, scope)
// pair produces a diagnostic rather than an exception, per §7.
func (c *Compilation) AddDefinition(def *defs.Definition, declScope *sym.Scope) {
	c.checkMutable()
	c.Defs.Add(def, declScope, c.semanticDiags)
	c.invalidateDiagCache()
}

// Definition resolves name starting at origin and walking outward to the
// global (name, nil) key (spec §4.4/§4.6 getDefinition).
func (c *Compilation) Definition(name string, origin *sym.Scope) *defs.Definition {
	return c.Defs.Get(name, origin)
}

// AddPackage registers pkg in the flat package namespace. Duplicate
// names produce a diagnostic; the first-registered package is retained
// (spec §8 boundary scenario 2).
func (c *Compilation) AddPackage(pkg *defs.Package) {
	c.checkMutable()
	c.Defs.AddPackage(pkg, c.semanticDiags)
	c.invalidateDiagCache()
}

// Package looks up a registered package by name.
func (c *Compilation) Package(name string) *defs.Package {
	return c.Defs.Package(name)
}
