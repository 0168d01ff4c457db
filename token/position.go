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

// Package token holds the source-location contract consumed by the
// semantic elaboration core. The lexer, preprocessor and parser that
// produce these positions live outside this module; token only defines
// the shape they must satisfy.
package token

import (
	"cmp"
	"fmt"
	"sync"
)

// -----------------------------------------------------------------------------
// Positions

// Position describes an arbitrary and printable source position within a
// file, including offset, line, and column location, which can be
// rendered in a human-friendly text form.
//
// A Position is valid if the line number is > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (byte count)
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

// String returns a human-readable form of a position in one of several
// forms:
//
//	file:line:column    valid position with file name
//	line:column         valid position without file name
//	file                invalid position with file name
//	-                   invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Pos is a compact encoding of a source position. When valid, as reported
// by [Pos.IsValid], it can be resolved to a printable [Position] via
// [Pos.Position].
type Pos struct {
	file   *File
	offset int
}

// File returns the file that contains the printable position p, or nil if
// there is no such file (for instance for p == [NoPos]).
func (p Pos) File() *File {
	if p.index() == 0 {
		return nil
	}
	return p.file
}

// Filename returns the name of the file that this position belongs to.
func (p Pos) Filename() string {
	if p.file == nil {
		return ""
	}
	return p.file.name
}

// Position unpacks the position information into a flat struct.
func (p Pos) Position() Position {
	if p.file == nil {
		return Position{}
	}
	return p.file.Position(p)
}

// String returns a human-readable form of a printable position.
func (p Pos) String() string {
	return p.Position().String()
}

// Compare returns an integer comparing two positions. The result is 0 if
// p == p2, -1 if p < p2, and +1 if p > p2. [NoPos] is always larger than
// any valid position.
func (p Pos) Compare(p2 Pos) int {
	if p == p2 {
		return 0
	} else if p == NoPos {
		return +1
	} else if p2 == NoPos {
		return -1
	}
	if c := cmp.Compare(p.Filename(), p2.Filename()); c != 0 {
		return c
	}
	return cmp.Compare(p.Offset(), p2.Offset())
}

// NoPos is the zero value for [Pos]; there is no file and line
// information associated with it, and [Pos.IsValid] is false.
//
// NoPos always sorts after any valid [Pos], since it tends to relate to
// values synthesized during elaboration rather than parsed from source.
var NoPos = Pos{}

// IsValid reports whether p has associated file/offset information.
func (p Pos) IsValid() bool {
	return p != NoPos
}

// Offset reports the byte offset relative to the file.
func (p Pos) Offset() int {
	if p.file == nil {
		return 0
	}
	return p.file.Offset(p)
}

func (p Pos) index() index {
	return index(p.offset)
}

// -----------------------------------------------------------------------------
// File

// index represents a 1-based offset into the file so that the zero Pos
// can be distinguished from a Pos with a zero offset.
type index int

// A File has a name, size, and line offset table.
type File struct {
	mutex sync.RWMutex
	name  string
	size  index

	lines []index // offset of the first character of each line
}

// NewFile returns a new file with the given OS file name and size.
func NewFile(filename string, size int) *File {
	return &File{
		name:  filename,
		size:  index(size),
		lines: []index{0},
	}
}

func (f *File) fixOffset(offset index) index {
	switch {
	case offset < 0:
		return 0
	case offset > f.size:
		return f.size
	default:
		return offset
	}
}

// Name returns the file name of file f as registered with NewFile.
func (f *File) Name() string {
	return f.name
}

// Size returns the size of file f as passed to NewFile.
func (f *File) Size() int {
	return int(f.size)
}

// AddLine adds the line offset for a new line. The line offset must be
// larger than the offset for the previous line and smaller than the file
// size; otherwise the line offset is ignored.
func (f *File) AddLine(offset int) {
	x := index(offset)
	f.mutex.Lock()
	if i := len(f.lines); (i == 0 || f.lines[i-1] < x) && x < f.size {
		f.lines = append(f.lines, x)
	}
	f.mutex.Unlock()
}

// Pos returns the Pos value for the given file offset.
func (f *File) Pos(offset int) Pos {
	return Pos{f, int(1 + f.fixOffset(index(offset)))}
}

// Offset returns the offset for the given file position p.
func (f *File) Offset(p Pos) int {
	x := index(p.offset)
	return int(f.fixOffset(x - 1))
}

func (f *File) unpack(offset index) (filename string, line, column int) {
	filename = f.name
	if i := searchInts(f.lines, offset); i >= 0 {
		line, column = i+1, int(offset-f.lines[i]+1)
	}
	return
}

func (f *File) position(p Pos) (pos Position) {
	offset := f.Offset(p)
	pos.Offset = offset
	pos.Filename, pos.Line, pos.Column = f.unpack(index(offset))
	return
}

// Position returns the Position value for the given file position p.
func (f *File) Position(p Pos) (pos Position) {
	if p != NoPos {
		pos = f.position(p)
	}
	return
}

// -----------------------------------------------------------------------------
// Helper functions

func searchInts(a []index, x index) int {
	i, j := 0, len(a)
	for i < j {
		h := i + (j-i)/2
		if a[h] <= x {
			i = h + 1
		} else {
			j = h
		}
	}
	return i - 1
}
