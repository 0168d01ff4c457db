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

// Package styp implements the canonical type catalog of spec §4.3: a
// fixed set of builtin singletons plus interned packed-array and net
// types, addressed by value rather than by pointer identity wherever a
// caller only has a syntactic description at hand.
package styp

import "strconv"

// Family is the coarse classification of a Type, used for the subset of
// semantic checks (is-integral, is-numeric, ...) that only need the
// family rather than the exact type.
type Family int

const (
	FamilyInvalid Family = iota
	FamilyIntegral
	FamilyReal
	FamilyString
	FamilyCHandle
	FamilyVoid
	FamilyNull
	FamilyEvent
	FamilyError
)

func (f Family) String() string {
	switch f {
	case FamilyIntegral:
		return "integral"
	case FamilyReal:
		return "real"
	case FamilyString:
		return "string"
	case FamilyCHandle:
		return "chandle"
	case FamilyVoid:
		return "void"
	case FamilyNull:
		return "null"
	case FamilyEvent:
		return "event"
	case FamilyError:
		return "error"
	default:
		return "invalid"
	}
}

// PackedFlags packs the orthogonal boolean attributes of an integral
// type into a single bitset, mirroring the teacher's Feature bit-packing
// idiom (internal/core/adt/feature.go) rather than a struct of bools.
type PackedFlags uint8

const (
	FlagSigned PackedFlags = 1 << iota
	FlagFourState
	FlagReg
)

// Type is a canonical SystemVerilog data type. Builtin scalars and
// predefined integers are package-level singletons; packed arrays and
// net types are cached by the Registry so that structurally identical
// syntax always yields the same *Type pointer (spec §4.3 "canonical
// type identity").
type Type struct {
	Family Family

	// Integral type fields; meaningful only when Family == FamilyIntegral.
	Width     int
	Signed    bool
	FourState bool
	Reg       bool

	// Name is the builtin or net-type keyword this type renders as in
	// diagnostics ("bit", "int", "realtime", "wire", ...); empty for
	// packed arrays, which render via String().
	Name string
}

// String renders the type the way diagnostics reference it.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Name != "" {
		return t.Name
	}
	if t.Family != FamilyIntegral {
		return t.Family.String()
	}
	sign := "unsigned"
	if t.Signed {
		sign = "signed"
	}
	state := "two-state"
	if t.FourState {
		state = "four-state"
	}
	return sign + " " + state + " [" + strconv.Itoa(t.Width-1) + ":0]"
}

// IsIntegral reports whether t is a member of the integral family
// (packed scalars, vectors, and predefined integers alike).
func (t *Type) IsIntegral() bool { return t.Family == FamilyIntegral }

// IsError reports whether t is the absorbing error type produced when
// elaboration cannot resolve a referenced type.
func (t *Type) IsError() bool { return t.Family == FamilyError }

// packKey computes the Registry's packed-array cache key: flags in the
// low 8 bits, width in the upper 24. Mirrors adt.Feature's index/type
// packing in internal/core/adt/feature.go.
func packKey(width int, flags PackedFlags) uint32 {
	return uint32(width)<<8 | uint32(flags)
}
