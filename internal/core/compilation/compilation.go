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

// Package compilation implements the elaboration lifecycle of spec §4.6:
// the Compilation manager that owns the arena, the symbol/scope tree,
// the type and definition registries, and the Open -> Finalizing ->
// Finalized state machine. Grounded on internal/core/runtime.Runtime's
// lazy-Init idiom and on
// original_source/include/slang/compilation/Compilation.h's exact
// operation list and side tables.
package compilation

import (
	"github.com/google/uuid"

	"svlang.org/sv/ast"
	"svlang.org/sv/errors"
	"svlang.org/sv/internal/core/arenapkg"
	"svlang.org/sv/internal/core/defs"
	"svlang.org/sv/internal/core/stats"
	"svlang.org/sv/internal/core/styp"
	"svlang.org/sv/internal/core/sym"
	"svlang.org/sv/token"
)

// FinalizedCode tags the contract-violation panics raised when a
// structural mutation or a re-entrant GetRoot call is attempted outside
// the Open state (spec §7: contract violations "fail loudly,
// non-recoverable", unlike ordinary diagnostics).
const FinalizedCode = errors.Finalized

type lifecycleState int

const (
	stateOpen lifecycleState = iota
	stateFinalizing
	stateFinalized
)

// SyntaxTree is the opaque handle the (out-of-scope) parser hands to
// AddSyntaxTree: a compilation-unit-shaped syntax node plus its own
// parse diagnostics.
type SyntaxTree struct {
	Unit  ast.Node
	Diags *errors.List
}

// Compilation is the central manager described in spec §4.6. A zero
// Compilation is not usable; construct one with New.
type Compilation struct {
	arena *arenapkg.TypedArena[sym.Scope]

	Types *styp.Registry
	Defs  *defs.Registry
	Stats stats.Counts

	id uuid.UUID

	state lifecycleState
	root  *sym.Scope

	parseDiags    *errors.List
	semanticDiags *errors.List

	allDiagsCache []errors.Error

	syntaxTrees      []*SyntaxTree
	compilationUnits []*sym.Scope

	scriptScopes []*sym.Scope

	subroutines map[string]*SystemSubroutine
	methods     map[methodKey]*SystemSubroutine

	deferredData map[*sym.Scope]*sym.DeferredMemberData
	importData   map[*sym.Scope]*sym.ImportData

	parseConfig ast.ParseConfig
}

type methodKey struct {
	typeKind sym.Kind
	name     string
}

// SystemSubroutine is a built-in subroutine or method handler registered
// with the compilation (spec §4.6 AddSystemSubroutine/AddSystemMethod).
// Handler is opaque to this package; it is whatever the (out-of-scope)
// expression binder expects to invoke.
type SystemSubroutine struct {
	Name    string
	Handler any
}

// New returns an empty, Open-state Compilation with the standard type
// and net-type catalog initialized.
func New(cfg ast.ParseConfig) *Compilation {
	c := &Compilation{
		arena:         arenapkg.NewTyped[sym.Scope](64),
		Types:         styp.NewRegistry(),
		Defs:          defs.NewRegistry(),
		id:            uuid.New(),
		parseDiags:    errors.NewList(),
		semanticDiags: errors.NewList(),
		subroutines:   map[string]*SystemSubroutine{},
		methods:       map[methodKey]*SystemSubroutine{},
		deferredData:  map[*sym.Scope]*sym.DeferredMemberData{},
		importData:    map[*sym.Scope]*sym.ImportData{},
		parseConfig:   cfg,
	}
	c.Types.Stats = &c.Stats
	return c
}

// ID returns this compilation's unique identity, used to tag diagnostics
// and instance names when a driver runs several compilations side by
// side.
func (c *Compilation) ID() uuid.UUID { return c.id }

// IsFinalized reports whether GetRoot has already elaborated the design.
func (c *Compilation) IsFinalized() bool { return c.state == stateFinalized }

// AllocScope allocates a Scope from the compilation's arena (spec §4.1:
// "any object returned by the arena is valid until Compilation
// destruction; addresses are stable") and initializes it as kind/name.
func (c *Compilation) AllocScope(kind sym.Kind, name string) *sym.Scope {
	s := c.arena.Alloc()
	sym.Init(s, kind, name)
	c.Stats.Allocations++
	if kind.IsScopeKind() {
		c.Stats.ScopesMaterialized++
	}
	return s
}

// checkMutable panics if the compilation can no longer accept structural
// mutations. Per spec §7 this is a contract violation (programmer
// error), not a diagnostic: callers are expected to check IsFinalized
// before mutating if they cannot guarantee the compilation is still
// Open.
func (c *Compilation) checkMutable() {
	if c.state != stateOpen {
		panic(errors.Newf(FinalizedCode, token.NoPos, "compilation has been finalized; no further modifications are permitted"))
	}
}
