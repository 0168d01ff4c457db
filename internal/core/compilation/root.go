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
	"svlang.org/sv/errors"
	"svlang.org/sv/internal/core/sym"
	"svlang.org/sv/token"
)

// GetRoot elaborates the design on its first call — registering every
// compilation unit under a fresh Root symbol and instantiating every
// top-level-eligible, still-un-instantiated definition — and moves the
// state machine Open -> Finalizing -> Finalized (spec §4.6). Subsequent
// calls return the same Root without re-elaborating. A call that
// re-enters GetRoot while already Finalizing (e.g. from a binder invoked
// during elaboration) panics, per the contract-violation tier of §7.
func (c *Compilation) GetRoot() *sym.Scope {
	switch c.state {
	case stateFinalized:
		return c.root
	case stateFinalizing:
		panic(errors.Newf(FinalizedCode, token.NoPos, "getRoot called re-entrantly during finalization"))
	}

	c.state = stateFinalizing
	c.root = c.AllocScope(sym.KindRoot, "$root")

	for _, unit := range c.compilationUnits {
		unit.Materialize(c, noopBinder)
		c.root.AddMember(&unit.Symbol)
	}

	for _, def := range c.Defs.TopLevelInstances() {
		inst := c.AllocScope(sym.KindInstance, def.Symbol.Name)
		inst.Loc = def.Symbol.Loc
		inst.Payload = def
		c.Defs.MarkInstantiated(def)
		c.root.AddMember(&inst.Symbol)
	}

	c.state = stateFinalized
	c.invalidateDiagCache()
	return c.root
}

// noopBinder materializes a scope's deferred syntax into no symbols.
// The real statement/expression binder that knows how to turn
// port-list/generate-block/import syntax into member symbols lives
// outside this module (spec §1); this package only sequences the call
// so that Materialize's "exactly once" invariant holds even before a
// binder is wired in.
func noopBinder(scope *sym.Scope, pending []sym.DeferredSyntax) []*sym.Symbol {
	return nil
}
