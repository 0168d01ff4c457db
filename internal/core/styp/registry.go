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

package styp

import (
	"svlang.org/sv/ast"
	"svlang.org/sv/errors"
	"svlang.org/sv/internal/core/stats"
	"svlang.org/sv/internal/core/sym"
	"svlang.org/sv/token"
)

// WrongKind is emitted when FromSyntax encounters a reference that
// resolves to a symbol that is not a type.
const WrongKind errors.Code = "not-a-type"

// UnresolvedType is emitted when FromSyntax cannot resolve a named type
// reference at all.
const UnresolvedType errors.Code = "unresolved-type"

// Registry interns packed-array and net types for a single Compilation,
// so that structurally identical syntax always yields the same *Type
// pointer (spec §4.3). It holds no reference to the Compilation itself
// to avoid an import cycle; FromSyntax takes the scope it needs to
// resolve named-type references as an explicit argument.
//
// Single-threaded ownership (spec §5): no mutex guards the caches.
type Registry struct {
	packed  map[uint32]*Type
	nets    map[string]*NetType
	wireNet *NetType

	// Stats, when non-nil, receives PackedTypeHits and Lookups tallies.
	// Compilation.New sets this to &Compilation.Stats; tests may leave it
	// nil.
	Stats *stats.Counts
}

// NewRegistry returns a Registry with the standard net-type catalog
// pre-populated (spec §4.3).
func NewRegistry() *Registry {
	r := &Registry{
		packed: map[uint32]*Type{},
		nets:   map[string]*NetType{},
	}
	for _, name := range []string{
		"wire", "wand", "wor", "tri", "triand", "trior",
		"trireg", "tri0", "tri1", "uwire", "supply0", "supply1",
	} {
		nt := &NetType{Name: name}
		r.nets[name] = nt
		if name == "wire" {
			r.wireNet = nt
		}
	}
	return r
}

// NetType is a net-type keyword (spec §4.3), distinct from the integral
// Type family since nets additionally carry resolution/charge semantics
// that the (out-of-scope) simulator layer interprets.
type NetType struct {
	Name string
}

// WireNetType returns the implicit default net type, as in the original
// header's dedicated accessor.
func (r *Registry) WireNetType() *NetType { return r.wireNet }

// LookupNetType returns the net type for a keyword, or nil if name is not
// a recognized net-type keyword.
func (r *Registry) LookupNetType(name string) *NetType { return r.nets[name] }

// GetPacked returns the canonical packed integral Type for (width,
// flags), allocating and caching it on first request. Builtin scalar
// combinations (width == 1) are served from the package-level singleton
// table rather than the cache.
func (r *Registry) GetPacked(width int, flags PackedFlags) *Type {
	if width == 1 {
		if t, ok := Scalar(flags); ok {
			return t
		}
	}
	key := packKey(width, flags)
	if t, ok := r.packed[key]; ok {
		if r.Stats != nil {
			r.Stats.PackedTypeHits++
		}
		return t
	}
	t := &Type{
		Family:    FamilyIntegral,
		Width:     width,
		Signed:    flags&FlagSigned != 0,
		FourState: flags&FlagFourState != 0,
		Reg:       flags&FlagReg != 0,
	}
	r.packed[key] = t
	return t
}

// CacheSize reports the number of distinct packed types interned so far,
// for stats reporting.
func (r *Registry) CacheSize() int { return len(r.packed) }

// FromSyntax resolves a DataTypeSyntax node into a canonical *Type (spec
// §4.3). Unresolved named-type references yield the absorbing Error type
// plus a diagnostic appended to diags; FromSyntax itself never panics
// and never returns nil.
//
// forceSigned overrides the type's signedness only when the syntax
// carries no explicit sign keyword (resolves the spec's Open Question
// on forceSigned/allowNetType semantics; see DESIGN.md). allowNetType
// gates whether SyntaxKindNetType syntax is accepted at all; when false,
// net-type syntax yields Error plus a diagnostic, mirroring contexts
// (e.g. function return types) where net types are never legal.
func (r *Registry) FromSyntax(
	syntax ast.DataTypeSyntax,
	lookupLoc token.Pos,
	parentScope *sym.Scope,
	allowNetType bool,
	forceSigned bool,
	diags *errors.List,
) *Type {
	if syntax == nil {
		return Void
	}

	base := r.baseType(syntax, parentScope, allowNetType, diags)
	if base.IsError() {
		return base
	}

	explicit, signed := syntax.Signed()
	if !explicit && forceSigned && base.IsIntegral() {
		base = r.withSign(base, true)
	} else if explicit && base.IsIntegral() && base.Signed != signed {
		base = r.withSign(base, signed)
	}

	dims := syntax.Dimensions()
	if len(dims) == 0 {
		return base
	}
	if !base.IsIntegral() {
		diags.AddNewf(WrongKind, syntax.Pos(), "packed dimensions are only valid on integral types")
		return Error
	}
	width := base.Width
	for _, d := range dims {
		n := d.Left - d.Right
		if n < 0 {
			n = -n
		}
		width *= n + 1
	}
	flags := PackedFlags(0)
	if base.Signed {
		flags |= FlagSigned
	}
	if base.FourState {
		flags |= FlagFourState
	}
	return r.GetPacked(width, flags)
}

func (r *Registry) withSign(base *Type, signed bool) *Type {
	flags := PackedFlags(0)
	if signed {
		flags |= FlagSigned
	}
	if base.FourState {
		flags |= FlagFourState
	}
	return r.GetPacked(base.Width, flags)
}

func (r *Registry) baseType(syntax ast.DataTypeSyntax, parentScope *sym.Scope, allowNetType bool, diags *errors.List) *Type {
	switch syntax.Kind() {
	case ast.SyntaxKindBitType:
		return Bit
	case ast.SyntaxKindLogicType:
		return Logic
	case ast.SyntaxKindRegType:
		return Reg
	case ast.SyntaxKindShortIntType:
		return ShortInt
	case ast.SyntaxKindIntType:
		return Int
	case ast.SyntaxKindLongIntType:
		return LongInt
	case ast.SyntaxKindByteType:
		return Byte
	case ast.SyntaxKindIntegerType:
		return Integer
	case ast.SyntaxKindTimeType:
		return Time
	case ast.SyntaxKindRealType:
		return Real
	case ast.SyntaxKindRealTimeType:
		return RealTime
	case ast.SyntaxKindShortRealType:
		return ShortReal
	case ast.SyntaxKindStringType:
		return String
	case ast.SyntaxKindCHandleType:
		return CHandle
	case ast.SyntaxKindVoidType:
		return Void
	case ast.SyntaxKindEventType:
		return Event
	case ast.SyntaxKindImplicitType:
		return Logic
	case ast.SyntaxKindNetType:
		if !allowNetType {
			diags.AddNewf(WrongKind, syntax.Pos(), "net type is not permitted in this context")
			return Error
		}
		return Logic
	case ast.SyntaxKindNamedType:
		return r.resolveNamedType(syntax.RefName(), parentScope, diags)
	default:
		diags.AddNewf(UnresolvedType, syntax.Pos(), "unrecognized data type syntax")
		return Error
	}
}

func (r *Registry) resolveNamedType(name ast.NameSyntax, parentScope *sym.Scope, diags *errors.List) *Type {
	if name == nil || parentScope == nil {
		diags.AddNewf(UnresolvedType, token.NoPos, "type reference has no name or scope")
		return Error
	}
	ident, ok := name.(*ast.IdentifierName)
	if !ok {
		diags.AddNewf(UnresolvedType, name.Pos(), "qualified type name %q is not resolvable by the type registry alone", name.String())
		return Error
	}
	found, res := sym.Lookup(parentScope, ident.Ident, sym.NoLocation, noImportHost{}, r.Stats)
	if res != sym.Found {
		diags.AddNewf(UnresolvedType, name.Pos(), "unknown type %q", name.String())
		return Error
	}
	if found.Kind != sym.KindType {
		diags.AddNewf(WrongKind, name.Pos(), "%q does not name a type", name.String())
		return Error
	}
	t, ok := found.Payload.(*Type)
	if !ok || t == nil {
		diags.AddNewf(WrongKind, name.Pos(), "%q does not name a type", name.String())
		return Error
	}
	return t
}

// noImportHost is a sym.Host with no wildcard imports, used when
// resolving a named type through a scope chain. Named-type resolution in
// FromSyntax therefore sees only direct scope members, never names made
// visible by a wildcard import.
type noImportHost struct{}

func (noImportHost) GetOrAddDeferredData(s *sym.Scope) *sym.DeferredMemberData {
	return &sym.DeferredMemberData{}
}
func (noImportHost) TrackImport(s *sym.Scope, imp *sym.WildcardImport) {}
func (noImportHost) QueryImports(s *sym.Scope) []*sym.WildcardImport   { return nil }
