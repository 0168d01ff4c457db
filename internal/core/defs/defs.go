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

// Package defs implements the Definition registry of spec §4.4: a
// (name, declaring scope) keyed map of module/interface/program
// definitions, plus a flat package namespace, generalized from the
// teacher's keyed side-table idiom in internal/core/runtime.Index.
package defs

import (
	"svlang.org/sv/errors"
	"svlang.org/sv/internal/core/sym"
)

// DuplicateDefinition is emitted when two definitions with the same name
// are registered in the same declaring scope.
const DuplicateDefinition errors.Code = "duplicate-definition"

// DuplicatePackage is emitted when two packages share a name; the first
// registered wins (spec §8 boundary scenario 2).
const DuplicatePackage errors.Code = "duplicate-package"

// Definition is a module/interface/program/checker definition (spec
// §4.4). Its Symbol carries the definition's own Scope (ports,
// parameters, body members); Instantiated tracks whether any instance
// has bound to it, which gates top-level-instance selection.
type Definition struct {
	Symbol      *sym.Scope
	DeclScope   *sym.Scope // enclosing scope the name was registered against
	Instantiated bool
}

// Package is a `package ... endpackage` namespace (spec §4.4).
type Package struct {
	Symbol *sym.Scope
}

type key struct {
	name  string
	scope *sym.Scope
}

// Registry owns the (name, scope) -> Definition map and the flat package
// namespace for one Compilation.
type Registry struct {
	defs     map[key]*Definition
	Packages map[string]*Package
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:     map[key]*Definition{},
		Packages: map[string]*Package{},
	}
}

// Add registers def under (def.Symbol.Name, declScope). A duplicate
// (name, scope) pair produces a diagnostic rather than an error return,
// mirroring Compilation::addDefinition in the original header: the
// first registration wins and is what later lookups observe.
func (r *Registry) Add(def *Definition, declScope *sym.Scope, diags *errors.List) {
	def.DeclScope = declScope
	k := key{def.Symbol.Name, declScope}
	if _, exists := r.defs[k]; exists {
		diags.AddNewf(DuplicateDefinition, def.Symbol.Loc, "redefinition of %q", def.Symbol.Name)
		return
	}
	r.defs[k] = def
}

// Get resolves name starting at origin and walking outward through
// enclosing scopes to the global (name, nil) key, mirroring how a
// module name declared at the compilation unit level is visible from
// any nested scope without an explicit import.
func (r *Registry) Get(name string, origin *sym.Scope) *Definition {
	for s := origin; ; {
		if d, ok := r.defs[key{name, s}]; ok {
			return d
		}
		if s == nil {
			return nil
		}
		s = s.Parent
	}
}

// AddPackage registers pkg under its own name. A duplicate name produces
// a diagnostic and getPackage continues to return the first-registered
// package (spec §8 boundary scenario 2).
func (r *Registry) AddPackage(pkg *Package, diags *errors.List) {
	name := pkg.Symbol.Name
	if _, exists := r.Packages[name]; exists {
		diags.AddNewf(DuplicatePackage, pkg.Symbol.Loc, "redefinition of package %q", name)
		return
	}
	r.Packages[name] = pkg
}

// Package looks up a registered package by name.
func (r *Registry) Package(name string) *Package { return r.Packages[name] }

// MarkInstantiated records that some instance now binds to def.
func (r *Registry) MarkInstantiated(def *Definition) { def.Instantiated = true }

// TopLevelInstances returns every registered definition that is eligible
// for implicit top-level instantiation (declared directly in a
// compilation unit or the root) and remains un-instantiated once every
// compilation unit has been walked (spec §4.4, §4.6 GetRoot algorithm).
func (r *Registry) TopLevelInstances() []*Definition {
	var top []*Definition
	for _, d := range r.defs {
		if d.Instantiated {
			continue
		}
		if d.DeclScope == nil {
			continue
		}
		switch d.DeclScope.Kind {
		case sym.KindCompilationUnit, sym.KindRoot:
			top = append(top, d)
		}
	}
	return top
}
