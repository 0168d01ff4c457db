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

// Package ceval implements the constant-expression evaluation context of
// spec §4.5: a frame stack with locals, a global frame that is always
// present, and call-stack diagnostic notes emitted exactly once per
// evaluation, in top-down frame order. It is a direct Go port of
// original_source/source/binding/EvalContext.cpp, restructured in the
// teacher's struct-of-state-plus-method-receivers idiom
// (internal/core/adt.OpContext, internal/core/adt/context.go).
package ceval

import (
	"svlang.org/sv/constant"
	"svlang.org/sv/internal/core/sym"
	"svlang.org/sv/token"
)

// Frame is one entry in the evaluation call stack: the global frame (the
// one always present at stack[0]) has a nil Subroutine.
type Frame struct {
	Subroutine *sym.Symbol
	Locals     map[*sym.Symbol]constant.Value

	// Arguments is the subroutine's formal argument list in declaration
	// order, used only to render a deterministic NoteInCallTo call
	// signature (reportStack formats "name(arg1, arg2, ...)" from the
	// same ordered list the original walks via subroutine->arguments).
	Arguments []*sym.Symbol

	// CallLoc is the call-site position used to anchor this frame's
	// NoteInCallTo diagnostic; LookupLoc is the position lookups inside
	// the callee should resolve forward-reference visibility against.
	CallLoc   token.Pos
	LookupLoc token.Pos

	HasReturned bool
}

func newFrame() *Frame {
	return &Frame{Locals: map[*sym.Symbol]constant.Value{}}
}

// createLocal installs value (or symbol's default when value is unset)
// as a new local in the current (top-of-stack) frame and returns it.
// Mirrors EvalContext::createLocal.
func (c *Context) createLocal(symbol *sym.Symbol, value constant.Value, defaultValue constant.Value) constant.Value {
	top := c.top()
	if _, exists := top.Locals[symbol]; exists {
		panic("ceval: createLocal called twice for the same symbol in one frame")
	}
	if value.Unset() {
		value = defaultValue
	}
	top.Locals[symbol] = value
	return value
}

// findLocal returns the current frame's binding for symbol, if any.
// Mirrors EvalContext::findLocal.
func (c *Context) findLocal(symbol *sym.Symbol) (constant.Value, bool) {
	v, ok := c.top().Locals[symbol]
	return v, ok
}

// setLocal overwrites an existing local's value, used by assignment and
// by setReturned. Panics if symbol has no existing binding, matching the
// ASSERT(storage) in the original.
func (c *Context) setLocal(symbol *sym.Symbol, value constant.Value) {
	top := c.top()
	if _, exists := top.Locals[symbol]; !exists {
		panic("ceval: setLocal called for a symbol with no existing binding")
	}
	top.Locals[symbol] = value
}
