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

// Package constant implements ConstantValue (spec §3): a tagged union
// returned by constant-expression evaluation and stored by value in
// evaluation frames and in finalized parameter symbols.
package constant

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Kind discriminates the tagged union.
type Kind int

const (
	KindUnset Kind = iota
	KindInteger
	KindReal
	KindString
	KindNull
	KindUnboundedWildcard // the `$` token used in e.g. queue/array bounds
	KindAggregate
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindUnboundedWildcard:
		return "$"
	case KindAggregate:
		return "aggregate"
	default:
		return "unset"
	}
}

// Integer is an arbitrary-width, four-state-capable integer: Magnitude
// holds the 0/1 bits, and UnknownMask/HighZMask mark which bits are X or
// Z respectively (a bit set in either mask makes the corresponding
// Magnitude bit meaningless). A two-state integer has both masks empty.
type Integer struct {
	Width       int
	Signed      bool
	Magnitude   *big.Int
	UnknownMask *big.Int // X bits
	HighZMask   *big.Int // Z bits
}

// IsFourState reports whether any bit of the integer is X or Z.
func (i Integer) IsFourState() bool {
	return (i.UnknownMask != nil && i.UnknownMask.Sign() != 0) ||
		(i.HighZMask != nil && i.HighZMask.Sign() != 0)
}

func (i Integer) String() string {
	if !i.IsFourState() {
		return i.Magnitude.String()
	}
	var b strings.Builder
	for bit := i.Width - 1; bit >= 0; bit-- {
		switch {
		case i.UnknownMask != nil && i.UnknownMask.Bit(bit) == 1:
			b.WriteByte('x')
		case i.HighZMask != nil && i.HighZMask.Bit(bit) == 1:
			b.WriteByte('z')
		case i.Magnitude.Bit(bit) == 1:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Value is the ConstantValue tagged union described in spec §3.
type Value struct {
	kind Kind

	integer Integer
	real    apd.Decimal
	str     string
	elems   []Value // aggregate elements, declaration order
}

// Unset reports whether this value was never assigned a kind (the zero
// Value), distinct from an explicit Null.
func (v Value) Unset() bool { return v.kind == KindUnset }

// Kind reports the tag of the union.
func (v Value) Kind() Kind { return v.kind }

// MakeInteger constructs an integer ConstantValue.
func MakeInteger(i Integer) Value { return Value{kind: KindInteger, integer: i} }

// MakeReal constructs a real ConstantValue.
func MakeReal(d apd.Decimal) Value { return Value{kind: KindReal, real: d} }

// MakeString constructs a string ConstantValue.
func MakeString(s string) Value { return Value{kind: KindString, str: s} }

// MakeNull constructs the null ConstantValue.
func MakeNull() Value { return Value{kind: KindNull} }

// MakeUnboundedWildcard constructs the `$` ConstantValue.
func MakeUnboundedWildcard() Value { return Value{kind: KindUnboundedWildcard} }

// MakeAggregate constructs an aggregate (array/struct) ConstantValue from
// its elements in declaration order.
func MakeAggregate(elems []Value) Value { return Value{kind: KindAggregate, elems: elems} }

// Integer returns the integer payload; only valid when Kind() ==
// KindInteger.
func (v Value) Integer() Integer { return v.integer }

// Real returns the real payload; only valid when Kind() == KindReal.
func (v Value) Real() apd.Decimal { return v.real }

// String returns the string payload when Kind() == KindString, or a
// human-readable rendering of any other kind, matching the stringified
// argument format `reportStack` attaches to NoteInCallTo diagnostics
// (spec §4.5, §8 boundary scenario 5).
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return v.integer.String()
	case KindReal:
		return v.real.String()
	case KindString:
		return v.str
	case KindNull:
		return "null"
	case KindUnboundedWildcard:
		return "$"
	case KindAggregate:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<unset>"
	}
}

// Elements returns the aggregate's elements; only valid when Kind() ==
// KindAggregate.
func (v Value) Elements() []Value { return v.elems }

// Equal reports whether v and w represent the same constant, used by
// unit tests comparing evaluation results.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.integer.Width == w.integer.Width &&
			v.integer.Signed == w.integer.Signed &&
			bigEqual(v.integer.Magnitude, w.integer.Magnitude) &&
			bigEqual(v.integer.UnknownMask, w.integer.UnknownMask) &&
			bigEqual(v.integer.HighZMask, w.integer.HighZMask)
	case KindReal:
		return v.real.Cmp(&w.real) == 0
	case KindString:
		return v.str == w.str
	case KindAggregate:
		if len(v.elems) != len(w.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(w.elems[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func bigEqual(a, b *big.Int) bool {
	if a == nil {
		a = new(big.Int)
	}
	if b == nil {
		b = new(big.Int)
	}
	return a.Cmp(b) == 0
}

// GoString supports %#v formatting in diagnostics and test failures.
func (v Value) GoString() string {
	return fmt.Sprintf("constant.Value{%s: %s}", v.kind, v.String())
}
