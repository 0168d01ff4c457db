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

package constant_test

import (
	"math/big"
	"testing"

	"github.com/go-quicktest/qt"

	"svlang.org/sv/constant"
)

func TestZeroValueIsUnset(t *testing.T) {
	var v constant.Value
	qt.Assert(t, qt.IsTrue(v.Unset()))
	qt.Assert(t, qt.Equals(v.Kind(), constant.KindUnset))
}

func TestMakeIntegerRoundTrip(t *testing.T) {
	i := constant.Integer{Width: 8, Signed: false, Magnitude: big.NewInt(42)}
	v := constant.MakeInteger(i)
	qt.Assert(t, qt.IsFalse(v.Unset()))
	qt.Assert(t, qt.Equals(v.Kind(), constant.KindInteger))
	qt.Assert(t, qt.Equals(v.Integer().Magnitude.Int64(), int64(42)))
	qt.Assert(t, qt.Equals(v.String(), "42"))
}

func TestFourStateIntegerStringRendersXZ(t *testing.T) {
	i := constant.Integer{
		Width:       4,
		Magnitude:   big.NewInt(0),
		UnknownMask: big.NewInt(0b0100),
		HighZMask:   big.NewInt(0b0001),
	}
	qt.Assert(t, qt.IsTrue(i.IsFourState()))
	qt.Assert(t, qt.Equals(i.String(), "0x0z"))
}

func TestEqualComparesIntegerFields(t *testing.T) {
	a := constant.MakeInteger(constant.Integer{Width: 8, Magnitude: big.NewInt(5)})
	b := constant.MakeInteger(constant.Integer{Width: 8, Magnitude: big.NewInt(5)})
	c := constant.MakeInteger(constant.Integer{Width: 8, Magnitude: big.NewInt(6)})
	qt.Assert(t, qt.IsTrue(a.Equal(b)))
	qt.Assert(t, qt.IsFalse(a.Equal(c)))
}

func TestEqualDifferentKindsNotEqual(t *testing.T) {
	i := constant.MakeInteger(constant.Integer{Width: 1, Magnitude: big.NewInt(1)})
	s := constant.MakeString("1")
	qt.Assert(t, qt.IsFalse(i.Equal(s)))
}

func TestMakeAggregateString(t *testing.T) {
	v := constant.MakeAggregate([]constant.Value{
		constant.MakeInteger(constant.Integer{Magnitude: big.NewInt(1)}),
		constant.MakeInteger(constant.Integer{Magnitude: big.NewInt(2)}),
	})
	qt.Assert(t, qt.Equals(v.String(), "{1, 2}"))
}
