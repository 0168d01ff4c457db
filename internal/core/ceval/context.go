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

package ceval

import (
	"fmt"
	"strings"

	"svlang.org/sv/constant"
	"svlang.org/sv/errors"
	"svlang.org/sv/internal/core/stats"
	"svlang.org/sv/internal/core/sym"
	"svlang.org/sv/token"
)

// Context is the evaluation call stack for one constant-expression
// evaluation (or one script-mode session). stack[0] is the global
// frame, created by New and never popped — the frame stack is never
// empty (spec §4.5 invariant).
type Context struct {
	stack []*Frame

	diags             *errors.List
	reportedCallstack bool
	isScriptEval      bool
	counts            *stats.Counts
}

// New returns a Context with its global frame installed. diags receives
// every diagnostic AddDiag reports, including the call-stack notes.
// counts may be nil; when non-nil, every PushFrame/PopFrame is tallied
// in counts.FramesPushed/FramesPopped.
func New(diags *errors.List, isScriptEval bool, counts *stats.Counts) *Context {
	return &Context{
		stack:        []*Frame{newFrame()},
		diags:        diags,
		isScriptEval: isScriptEval,
		counts:       counts,
	}
}

// IsScriptEval reports whether this context evaluates top-level script
// statements rather than a single constant expression (spec §4.6
// CreateScriptScope).
func (c *Context) IsScriptEval() bool { return c.isScriptEval }

func (c *Context) top() *Frame { return c.stack[len(c.stack)-1] }

// CreateLocal installs a new local in the current frame, defaulting to
// defaultValue when value is unset (ConstantValue{} / KindUnset).
func (c *Context) CreateLocal(symbol *sym.Symbol, value, defaultValue constant.Value) constant.Value {
	return c.createLocal(symbol, value, defaultValue)
}

// FindLocal returns the current frame's binding for symbol, if any.
func (c *Context) FindLocal(symbol *sym.Symbol) (constant.Value, bool) {
	return c.findLocal(symbol)
}

// PushFrame pushes a new call frame for invoking subroutine, to be
// popped by a matching PopFrame once the call completes. arguments is
// the subroutine's formal parameter list in declaration order, used
// only to render a deterministic NoteInCallTo call signature.
func (c *Context) PushFrame(subroutine *sym.Symbol, callLoc, lookupLoc token.Pos, arguments []*sym.Symbol) {
	f := newFrame()
	f.Subroutine = subroutine
	f.Arguments = arguments
	f.CallLoc = callLoc
	f.LookupLoc = lookupLoc
	c.stack = append(c.stack, f)
	if c.counts != nil {
		c.counts.FramesPushed++
	}
}

// PopFrame pops the current frame and returns its subroutine's return
// value (the zero Value if the frame has no subroutine, i.e. it is the
// global frame — callers must never pop that one).
func (c *Context) PopFrame() constant.Value {
	frame := c.top()
	var result constant.Value
	if frame.Subroutine != nil {
		if v, ok := c.findLocal(frame.Subroutine); ok {
			result = v
		}
	}
	c.stack = c.stack[:len(c.stack)-1]
	if c.counts != nil {
		c.counts.FramesPopped++
	}
	return result
}

// SetReturned records subroutine's return value in the current frame and
// marks it as having returned, ending further statement execution within
// that frame (spec §4.5).
func (c *Context) SetReturned(value constant.Value) {
	frame := c.top()
	frame.HasReturned = true
	if frame.Subroutine == nil {
		panic("ceval: SetReturned called on the global frame")
	}
	if _, ok := c.findLocal(frame.Subroutine); ok {
		c.setLocal(frame.Subroutine, value)
	} else {
		c.top().Locals[frame.Subroutine] = value
	}
}

// HasReturned reports whether the current frame has already executed a
// return statement.
func (c *Context) HasReturned() bool { return c.top().HasReturned }

// Depth returns the number of frames currently on the stack, including
// the global frame.
func (c *Context) Depth() int { return len(c.stack) }

// AddDiag appends a diagnostic at pos and, on the first call for this
// Context's lifetime, also appends one errors.NoteInCallTo diagnostic
// per subroutine frame on the stack (none for the global frame), in
// top-down order (innermost frame
// first), exactly mirroring EvalContext::reportStack. Subsequent calls
// to AddDiag on the same Context do not repeat the call-stack notes.
func (c *Context) AddDiag(code errors.Code, pos token.Pos, format string, args ...any) errors.Error {
	diag := errors.Newf(code, pos, format, args...)
	c.diags.Add(diag)
	c.reportStack()
	return diag
}

// reportStack appends one NoteInCallTo diagnostic per subroutine frame,
// from the innermost (top of stack) outward, stopping at the first frame
// with no subroutine (the global frame) — mirroring the original's
// `make_reverse_range(stack)` loop that `break`s on `!frame.subroutine`.
func (c *Context) reportStack() {
	if c.reportedCallstack {
		return
	}
	c.reportedCallstack = true

	for i := len(c.stack) - 1; i >= 0; i-- {
		frame := c.stack[i]
		if frame.Subroutine == nil {
			break
		}
		c.diags.Add(errors.Newf(errors.NoteInCallTo, frame.CallLoc, "in call to %s", callSignature(frame)))
	}
}

func callSignature(frame *Frame) string {
	var b strings.Builder
	b.WriteString(frame.Subroutine.Name)
	b.WriteByte('(')
	for i, arg := range frame.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		if v, ok := frame.Locals[arg]; ok {
			fmt.Fprint(&b, v.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}
