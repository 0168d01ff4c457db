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

// Package sym implements the universal Symbol/Scope model of spec §3/§4.2:
// nested scopes with lazy member materialization, wildcard imports, and
// hierarchical/scoped lookup.
package sym

// Kind is the closed set of symbol kinds named in spec §3.
type Kind int

const (
	KindInvalid Kind = iota
	KindRoot
	KindCompilationUnit
	KindPackage
	KindDefinition
	KindInstance
	KindVariable
	KindParameter
	KindSubroutine
	KindNet
	KindWildcardImport
	KindType // type-family tag; the concrete Type lives in internal/core/styp
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindCompilationUnit:
		return "compilation-unit"
	case KindPackage:
		return "package"
	case KindDefinition:
		return "definition"
	case KindInstance:
		return "instance"
	case KindVariable:
		return "variable"
	case KindParameter:
		return "parameter"
	case KindSubroutine:
		return "subroutine"
	case KindNet:
		return "net"
	case KindWildcardImport:
		return "wildcard-import"
	case KindType:
		return "type"
	default:
		return "invalid"
	}
}

// IsScopeKind reports whether symbols of this kind are always scopes
// (i.e. always constructed as a *Scope rather than a bare *Symbol).
func (k Kind) IsScopeKind() bool {
	switch k {
	case KindRoot, KindCompilationUnit, KindPackage, KindDefinition, KindInstance, KindSubroutine:
		return true
	default:
		return false
	}
}
