// Copyright 2018 The CUE Authors
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

package ast

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"svlang.org/sv/errors"
	"svlang.org/sv/token"
)

// DefaultMaxRecursionDepth is used when a ParseConfig does not specify
// one explicitly.
const DefaultMaxRecursionDepth = 100

// CodeTooDeeplyNested is emitted when parenthesized-expression nesting
// exceeds a ParseConfig's MaxRecursionDepth (spec §6, boundary scenario
// 4).
const CodeTooDeeplyNested errors.Code = "language-constructs-too-deeply-nested"

// ParseConfig carries the out-of-scope parser's externally observable
// knobs: only MaxRecursionDepth is relevant to the elaboration core.
type ParseConfig struct {
	MaxRecursionDepth int
}

func (c ParseConfig) maxDepth() int {
	if c.MaxRecursionDepth <= 0 {
		return DefaultMaxRecursionDepth
	}
	return c.MaxRecursionDepth
}

// IsValidIdent reports whether s is a legal (unescaped) SystemVerilog
// identifier: a letter or underscore followed by letters, digits,
// underscores or '$'. Escaped identifiers (`\foo`) and `$`-prefixed
// system names are handled by their respective callers.
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '$'):
		default:
			return false
		}
	}
	return true
}

// ParseName parses a name string into a [NameSyntax]. It supports plain
// identifiers, dotted hierarchical names, and the four forms of scoped
// name named in spec §4.2: `pkg::x`, `$unit::x`, `$root.x`, `local::x`.
//
// ParseName(s).String() == s for every well-formed s (spec §8 round-trip
// property), modulo no whitespace normalization being required since this
// reference parser rejects embedded whitespace outright.
func ParseName(s string) (NameSyntax, error) {
	if strings.ContainsAny(s, " \t\n\r") {
		return nil, errors.Newf("", token.NoPos, "name %q contains whitespace", s)
	}
	if s == "" {
		return nil, errors.Newf("", token.NoPos, "empty name")
	}

	switch {
	case strings.HasPrefix(s, "$unit::"):
		rest := s[len("$unit::"):]
		segs, err := splitScoped(rest, "::")
		if err != nil {
			return nil, err
		}
		return &ScopedName{Anchor: AnchorCompilationUnit, Segments: segs}, nil

	case strings.HasPrefix(s, "$root."):
		rest := s[len("$root."):]
		segs, err := splitScoped(rest, ".")
		if err != nil {
			return nil, err
		}
		return &ScopedName{Anchor: AnchorRoot, Segments: segs}, nil

	case strings.HasPrefix(s, "local::"):
		rest := s[len("local::"):]
		segs, err := splitScoped(rest, "::")
		if err != nil {
			return nil, err
		}
		return &ScopedName{Anchor: AnchorLocal, Segments: segs}, nil
	}

	if i := strings.Index(s, "::"); i >= 0 {
		pkg := s[:i]
		rest := s[i+2:]
		if !IsValidIdent(pkg) {
			return nil, errors.Newf("", token.NoPos, "invalid package name %q", pkg)
		}
		segs, err := splitScoped(rest, "::")
		if err != nil {
			return nil, err
		}
		return &ScopedName{Anchor: AnchorPackage, AnchorName: pkg, Segments: segs}, nil
	}

	if strings.Contains(s, ".") {
		segs := strings.Split(s, ".")
		for _, seg := range segs {
			if !IsValidIdent(seg) {
				return nil, errors.Newf("", token.NoPos, "invalid hierarchical segment %q in %q", seg, s)
			}
		}
		return &HierarchicalName{Segments: segs}, nil
	}

	if !IsValidIdent(s) {
		return nil, errors.Newf("", token.NoPos, "invalid identifier %q", s)
	}
	return &IdentifierName{Ident: s}, nil
}

func splitScoped(rest string, sep string) ([]string, error) {
	if rest == "" {
		return nil, errors.Newf("", token.NoPos, "name ends with separator %q", sep)
	}
	segs := strings.Split(rest, sep)
	for _, seg := range segs {
		if !IsValidIdent(seg) {
			return nil, errors.Newf("", token.NoPos, "invalid name segment %q", seg)
		}
	}
	return segs, nil
}

// ParenExpr is a minimal expression node used only to exercise the
// parser's recursion-depth contract: either a bare identifier or a
// parenthesized sub-expression.
type ParenExpr struct {
	Loc   token.Pos
	Ident string     // set when Inner == nil
	Inner *ParenExpr // set for `(...)`
}

func (e *ParenExpr) Kind() SyntaxKind {
	if e.Inner != nil {
		return SyntaxKindParenthesizedExpression
	}
	return SyntaxKindIdentifierExpression
}
func (e *ParenExpr) Pos() token.Pos { return e.Loc }

// exprParser is a tiny recursive-descent parser over `(`, `)`, and
// identifier characters, used solely to demonstrate and test the
// recursion-limit contract described in spec §6: when nesting exceeds
// MaxRecursionDepth, the parser emits exactly one CodeTooDeeplyNested
// diagnostic at the offending token and recovers by treating the
// remainder of the run of '(' as flat, rather than recursing further.
type exprParser struct {
	src   string
	pos   int
	cfg   ParseConfig
	file  *token.File
	diags errors.List
}

// ParseParenExpr parses src (a run of '(' / ')' / identifier characters)
// into a ParenExpr tree, returning the best-effort tree and any
// diagnostics produced. It never returns a nil tree.
func ParseParenExpr(src string, cfg ParseConfig) (*ParenExpr, errors.List) {
	p := &exprParser{src: src, cfg: cfg, file: token.NewFile("", len(src))}
	e := p.parseExpr(0)
	return e, p.diags
}

func (p *exprParser) peek() (rune, int) {
	if p.pos >= len(p.src) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	return r, size
}

func (p *exprParser) parseExpr(depth int) *ParenExpr {
	r, size := p.peek()
	if r != '(' {
		return p.parseIdent()
	}

	loc := p.file.Pos(p.pos)

	if depth >= p.cfg.maxDepth() {
		p.diags.AddNewf(CodeTooDeeplyNested, loc,
			"language constructs nested too deeply at column %d", p.pos+1)
		// Recover: consume the remaining run of '(' flatly instead of
		// recursing further, then parse whatever sits inside once.
		for {
			r, size = p.peek()
			if r != '(' {
				break
			}
			p.pos += size
		}
		inner := p.parseExpr(depth) // depth held constant: no further nesting errors
		p.expect(')')
		return &ParenExpr{Loc: loc, Inner: inner}
	}

	p.pos += size // consume '('
	inner := p.parseExpr(depth + 1)
	p.expect(')')
	return &ParenExpr{Loc: loc, Inner: inner}
}

func (p *exprParser) expect(want rune) {
	r, size := p.peek()
	if r == want {
		p.pos += size
	}
	// Recovery per spec §6: a missing/mismatched token does not panic;
	// the caller already has a diagnostic if this was reached due to
	// depth overflow, and absent that, malformed input outside the
	// recursion-depth scenario is out of this parser's narrow scope.
}

func (p *exprParser) parseIdent() *ParenExpr {
	start := p.pos
	loc := p.file.Pos(p.pos)
	for {
		r, size := p.peek()
		if r == 0 || r == '(' || r == ')' {
			break
		}
		p.pos += size
	}
	return &ParenExpr{Loc: loc, Ident: p.src[start:p.pos]}
}
