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

package errors_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/go-quicktest/qt"

	"svlang.org/sv/errors"
	"svlang.org/sv/token"
)

func TestListAddNewfAppends(t *testing.T) {
	l := errors.NewList()
	l.AddNewf("some-code", token.NoPos, "first")
	l.AddNewf("some-code", token.NoPos, "second")
	qt.Assert(t, qt.HasLen(*l, 2))
}

func TestRemoveMultiplesDedupsSamePositionAndMessage(t *testing.T) {
	l := errors.NewList()
	l.Add(errors.Newf("c", token.NoPos, "dup"))
	l.Add(errors.Newf("c", token.NoPos, "dup"))
	l.Add(errors.Newf("c", token.NoPos, "other"))
	l.RemoveMultiples()
	qt.Assert(t, qt.HasLen(*l, 2))
}

func TestSortOrdersByPosition(t *testing.T) {
	file := token.NewFile("f.sv", 100)
	l := errors.NewList()
	l.Add(errors.Newf("c", file.Pos(50), "later"))
	l.Add(errors.Newf("c", file.Pos(10), "earlier"))
	l.Sort()
	qt.Assert(t, qt.Equals((*l)[0].Error(), "earlier"))
	qt.Assert(t, qt.Equals((*l)[1].Error(), "later"))
}

func TestErrorsFlattensList(t *testing.T) {
	l := errors.NewList()
	l.AddNewf("c", token.NoPos, "a")
	l.AddNewf("c", token.NoPos, "b")
	flat := errors.Errors(*l)
	qt.Assert(t, qt.HasLen(flat, 2))
}

func TestWrapAttachesParent(t *testing.T) {
	parent := errors.Newf("p", token.NoPos, "context")
	child := errors.New("underlying")
	wrapped := errors.Wrap(parent, child)
	qt.Assert(t, qt.Equals(wrapped.Error(), "context: underlying"))
}

func TestSortedMessagesMatchExpectedOrder(t *testing.T) {
	file := token.NewFile("f.sv", 100)
	l := errors.NewList()
	l.Add(errors.Newf("c", file.Pos(80), "third"))
	l.Add(errors.Newf("c", file.Pos(10), "first"))
	l.Add(errors.Newf("c", file.Pos(40), "second"))
	l.Sort()

	var got []string
	for _, e := range *l {
		got = append(got, e.Error())
	}
	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sorted messages mismatch (-want +got):\n%s", diff)
	}
}
