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

// scalarTable holds the 8 combinations of {signed,unsigned} x
// {two-state,four-state} x {bit,reg}, indexed by PackedFlags. Two slots
// (FlagReg without FlagFourState, for both sign values) are invalid in
// SystemVerilog — reg is always four-state — and are left nil.
var scalarTable [8]*Type

func scalarIndex(flags PackedFlags) int { return int(flags & 0x7) }

func defineScalar(flags PackedFlags, name string) *Type {
	t := &Type{
		Family:    FamilyIntegral,
		Width:     1,
		Signed:    flags&FlagSigned != 0,
		FourState: flags&FlagFourState != 0,
		Reg:       flags&FlagReg != 0,
		Name:      name,
	}
	scalarTable[scalarIndex(flags)] = t
	return t
}

// Builtin scalar singletons (spec §4.3). bit is two-state, logic and reg
// are four-state; reg additionally denotes net-type-incompatible
// variable storage.
var (
	Bit         = defineScalar(0, "bit")
	BitSigned   = defineScalar(FlagSigned, "bit signed")
	Logic       = defineScalar(FlagFourState, "logic")
	LogicSigned = defineScalar(FlagFourState|FlagSigned, "logic signed")
	Reg         = defineScalar(FlagFourState|FlagReg, "reg")
	RegSigned   = defineScalar(FlagFourState|FlagReg|FlagSigned, "reg signed")
)

func predefinedInt(width int, signed bool, name string) *Type {
	return &Type{
		Family:    FamilyIntegral,
		Width:     width,
		Signed:    signed,
		FourState: false,
		Name:      name,
	}
}

// Predefined integer singletons (all two-state, spec §4.3).
var (
	ShortInt = predefinedInt(16, true, "shortint")
	Int      = predefinedInt(32, true, "int")
	LongInt  = predefinedInt(64, true, "longint")
	Byte     = predefinedInt(8, true, "byte")
)

// Integer is the sole predefined four-state 32-bit integral type.
var Integer = &Type{Family: FamilyIntegral, Width: 32, Signed: true, FourState: true, Name: "integer"}

// Time is an unsigned four-state 64-bit integral type.
var Time = &Type{Family: FamilyIntegral, Width: 64, Signed: false, FourState: true, Name: "time"}

// Floating-point family singletons.
var (
	Real      = &Type{Family: FamilyReal, Name: "real"}
	RealTime  = &Type{Family: FamilyReal, Name: "realtime"}
	ShortReal = &Type{Family: FamilyReal, Name: "shortreal"}
)

// Non-numeric singletons.
var (
	String  = &Type{Family: FamilyString, Name: "string"}
	CHandle = &Type{Family: FamilyCHandle, Name: "chandle"}
	Void    = &Type{Family: FamilyVoid, Name: "void"}
	Null    = &Type{Family: FamilyNull, Name: "null"}
	Event   = &Type{Family: FamilyEvent, Name: "event"}
)

// Error is the absorbing type substituted whenever a type reference
// fails to resolve (spec §4.3 "error recovery never panics").
var Error = &Type{Family: FamilyError, Name: "<error>"}

// Scalar looks up one of the 8 builtin scalar singletons. ok is false
// for the two invalid combinations (reg without four-state).
func Scalar(flags PackedFlags) (t *Type, ok bool) {
	t = scalarTable[scalarIndex(flags)]
	return t, t != nil
}
