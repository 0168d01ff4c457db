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

	"svlang.org/sv/token"
)

// NameSyntax is the parsed form of a name string as produced by
// Compilation.ParseName and consumed by hierarchical/scoped lookup.
//
// Round-trip property (spec §8): ParseName(s).String() == s for every
// well-formed s.
type NameSyntax interface {
	Node
	String() string
}

// Anchor identifies the scope a scoped name resolves against.
type Anchor int

const (
	// AnchorNone means the name has no `::`/`$unit`/`$root`/`local::`
	// anchor and should use ordinary scope-chain lookup.
	AnchorNone Anchor = iota
	AnchorPackage
	AnchorCompilationUnit // $unit::
	AnchorRoot            // $root.
	AnchorLocal           // local::
)

// IdentifierName is a single unqualified identifier.
type IdentifierName struct {
	Loc   token.Pos
	Ident string
}

func (n *IdentifierName) Kind() SyntaxKind { return SyntaxKindIdentifierName }
func (n *IdentifierName) Pos() token.Pos   { return n.Loc }
func (n *IdentifierName) String() string   { return n.Ident }

// HierarchicalName is a dotted path of identifiers, e.g. `a.b.c`.
type HierarchicalName struct {
	Loc         token.Pos
	Segments    []string
}

func (n *HierarchicalName) Kind() SyntaxKind { return SyntaxKindHierarchicalName }
func (n *HierarchicalName) Pos() token.Pos   { return n.Loc }
func (n *HierarchicalName) String() string   { return strings.Join(n.Segments, ".") }

// ScopedName is a name anchored by `pkg::`, `$unit::`, `$root.`, or
// `local::`, possibly followed by further `::`/`.`-separated segments.
// Segments holds the parts of the name that follow the anchor, in order;
// the anchor itself is recorded only in Anchor (and AnchorName), never as
// an element of Segments, so `$unit::foo::bar` has the two segments
// `foo` and `bar`. String re-emits the anchor from Anchor.
type ScopedName struct {
	Loc      token.Pos
	Anchor   Anchor
	// AnchorName is the package name when Anchor == AnchorPackage; empty
	// otherwise ($unit/$root/local carry no name of their own).
	AnchorName string
	// Segments are the `::`-joined path segments following the anchor.
	// The segments of a $root-anchored name are dot-joined instead of
	// double-colon-joined, matching `$root.x.y` syntax.
	Segments []string
}

func (n *ScopedName) Kind() SyntaxKind { return SyntaxKindScopedName }
func (n *ScopedName) Pos() token.Pos   { return n.Loc }

func (n *ScopedName) String() string {
	var b strings.Builder
	switch n.Anchor {
	case AnchorPackage:
		b.WriteString(n.AnchorName)
		b.WriteString("::")
	case AnchorCompilationUnit:
		b.WriteString("$unit::")
	case AnchorRoot:
		b.WriteString("$root.")
	case AnchorLocal:
		b.WriteString("local::")
	}
	sep := "::"
	if n.Anchor == AnchorRoot {
		sep = "."
	}
	for i, s := range n.Segments {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s)
	}
	return b.String()
}
