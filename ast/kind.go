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

// Package ast specifies the contract the (out-of-scope) lexer, preprocessor
// and parser satisfy when handing syntax trees to the elaboration core:
// a closed enumeration of syntax node kinds, the data-type and name syntax
// shapes the compilation manager and type registry consume, and a minimal
// reference parser sufficient to implement Compilation.ParseName and to
// exercise the parser's recursion-depth contract (spec §6).
package ast

import "svlang.org/sv/token"

// SyntaxKind is a closed enumeration of syntax node kinds the core
// switches over. Real front ends produce a much larger set; only the
// kinds the elaboration core inspects directly are named here.
type SyntaxKind int

const (
	SyntaxKindUnknown SyntaxKind = iota

	// Data-type syntax kinds consumed by the type registry.
	SyntaxKindBitType
	SyntaxKindLogicType
	SyntaxKindRegType
	SyntaxKindShortIntType
	SyntaxKindIntType
	SyntaxKindLongIntType
	SyntaxKindByteType
	SyntaxKindIntegerType
	SyntaxKindTimeType
	SyntaxKindRealType
	SyntaxKindRealTimeType
	SyntaxKindShortRealType
	SyntaxKindStringType
	SyntaxKindCHandleType
	SyntaxKindVoidType
	SyntaxKindEventType
	SyntaxKindNamedType
	SyntaxKindImplicitType
	SyntaxKindNetType

	// Name syntax kinds produced by ParseName.
	SyntaxKindIdentifierName
	SyntaxKindHierarchicalName
	SyntaxKindScopedName

	// Expression syntax kinds used by the recursion-depth boundary
	// scenario (spec §8 boundary scenario 4).
	SyntaxKindParenthesizedExpression
	SyntaxKindIdentifierExpression
)

// String renders a human-readable name for diagnostics.
func (k SyntaxKind) String() string {
	switch k {
	case SyntaxKindBitType:
		return "bit"
	case SyntaxKindLogicType:
		return "logic"
	case SyntaxKindRegType:
		return "reg"
	case SyntaxKindShortIntType:
		return "shortint"
	case SyntaxKindIntType:
		return "int"
	case SyntaxKindLongIntType:
		return "longint"
	case SyntaxKindByteType:
		return "byte"
	case SyntaxKindIntegerType:
		return "integer"
	case SyntaxKindTimeType:
		return "time"
	case SyntaxKindRealType:
		return "real"
	case SyntaxKindRealTimeType:
		return "realtime"
	case SyntaxKindShortRealType:
		return "shortreal"
	case SyntaxKindStringType:
		return "string"
	case SyntaxKindCHandleType:
		return "chandle"
	case SyntaxKindVoidType:
		return "void"
	case SyntaxKindEventType:
		return "event"
	case SyntaxKindNamedType:
		return "named-type"
	case SyntaxKindImplicitType:
		return "implicit-type"
	case SyntaxKindNetType:
		return "net-type"
	case SyntaxKindIdentifierName:
		return "identifier-name"
	case SyntaxKindHierarchicalName:
		return "hierarchical-name"
	case SyntaxKindScopedName:
		return "scoped-name"
	case SyntaxKindParenthesizedExpression:
		return "paren-expr"
	case SyntaxKindIdentifierExpression:
		return "identifier-expr"
	default:
		return "unknown"
	}
}

// Node is the minimal contract every syntax node satisfies: a kind tag and
// a source position.
type Node interface {
	Kind() SyntaxKind
	Pos() token.Pos
}

// VariableDimension is a single packed or unpacked dimension attached to a
// data type, e.g. the `[7:0]` in `bit [7:0] x`.
type VariableDimension struct {
	Left, Right int // static bounds; dynamic dimensions are out of scope
}

// DataTypeSyntax is the external contract for data-type nodes consumed by
// the type registry's FromSyntax.
type DataTypeSyntax interface {
	Node

	// Signed reports whether the syntax explicitly carries a `signed` or
	// `unsigned` keyword, and if so, which.
	Signed() (explicit bool, signed bool)

	// Dimensions returns the variable dimensions attached to this type,
	// outermost first.
	Dimensions() []VariableDimension

	// RefName is set when Kind() == SyntaxKindNamedType; it is the name
	// syntax referencing a previously declared type.
	RefName() NameSyntax
}

// BuiltinType is a DataTypeSyntax for one of the built-in primitive kinds
// (bit/logic/reg/shortint/...).
type BuiltinType struct {
	SyntaxKind  SyntaxKind
	Loc         token.Pos
	IsSigned    bool
	HasSignKwd  bool
	Dims        []VariableDimension
}

func (t *BuiltinType) Kind() SyntaxKind { return t.SyntaxKind }
func (t *BuiltinType) Pos() token.Pos   { return t.Loc }
func (t *BuiltinType) Signed() (explicit bool, signed bool) {
	return t.HasSignKwd, t.IsSigned
}
func (t *BuiltinType) Dimensions() []VariableDimension { return t.Dims }
func (t *BuiltinType) RefName() NameSyntax              { return nil }

// NamedTypeSyntax is a DataTypeSyntax referencing a user-defined type by
// name, e.g. `my_pkg::my_type`.
type NamedTypeSyntax struct {
	Loc  token.Pos
	Name NameSyntax
	Dims []VariableDimension
}

func (t *NamedTypeSyntax) Kind() SyntaxKind                   { return SyntaxKindNamedType }
func (t *NamedTypeSyntax) Pos() token.Pos                     { return t.Loc }
func (t *NamedTypeSyntax) Signed() (explicit bool, signed bool) { return false, false }
func (t *NamedTypeSyntax) Dimensions() []VariableDimension    { return t.Dims }
func (t *NamedTypeSyntax) RefName() NameSyntax                { return t.Name }
