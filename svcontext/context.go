// Copyright 2021 CUE Authors
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

// Package svcontext is the public constructor for a Compilation, in the
// style of cuecontext.New: a functional-options wrapper that keeps the
// internal/core/compilation package itself free of API-stability
// concerns.
package svcontext

import (
	"svlang.org/sv/ast"
	"svlang.org/sv/internal/core/compilation"
)

type settings struct {
	cfg         ast.ParseConfig
	scriptMode  bool
	subroutines []*compilation.SystemSubroutine
}

// Option configures a Compilation at construction time.
type Option struct {
	apply func(*settings)
}

// New creates a new Compilation, applying options in order.
func New(options ...Option) *compilation.Compilation {
	var s settings
	for _, o := range options {
		o.apply(&s)
	}

	c := compilation.New(s.cfg)
	for _, sub := range s.subroutines {
		c.AddSystemSubroutine(sub)
	}
	if s.scriptMode {
		c.CreateScriptScope()
	}
	return c
}

// WithMaxRecursionDepth sets MaxRecursionDepth in the ast.ParseConfig the
// Compilation is constructed with. The Compilation stores that config
// but none of its methods read it; ast.ParseParenExpr takes its own
// ParseConfig argument.
func WithMaxRecursionDepth(depth int) Option {
	return Option{func(s *settings) { s.cfg.MaxRecursionDepth = depth }}
}

// WithScriptMode pre-creates a script scope on the returned Compilation,
// for callers embedding the core in an interactive/runtime-scripting
// driver (spec §4.6 CreateScriptScope).
func WithScriptMode() Option {
	return Option{func(s *settings) { s.scriptMode = true }}
}

// WithSystemSubroutines registers a bundle of built-in subroutines on
// the returned Compilation before it is handed back to the caller.
func WithSystemSubroutines(subs ...*compilation.SystemSubroutine) Option {
	return Option{func(s *settings) { s.subroutines = append(s.subroutines, subs...) }}
}
