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

// Package errors defines the diagnostic type shared by every component of
// the elaboration core.
//
// The pivotal type is the interface type Error. Diagnostics are never
// thrown: they are appended to a List and reported alongside a fallback
// result so elaboration can continue and surface as many problems as
// possible in one run.
package errors

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"svlang.org/sv/token"
)

// New is a convenience wrapper for [errors.New] in the core library. It
// does not return a diagnostic Error.
func New(msg string) error {
	return errors.New(msg)
}

// Unwrap returns the result of calling the Unwrap method on err, if err
// implements Unwrap. Otherwise, Unwrap returns nil.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches the type to which
// target points.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Code is a stable, machine-comparable diagnostic identifier. Codes are
// never reused across diagnostic kinds, so callers may switch on them.
type Code string

const (
	// NoteInCallTo is attached to the diagnostic raised during constant
	// evaluation once per non-global frame on the call stack at the time
	// of the first diagnostic emitted by that evaluation (§4.5, §8
	// boundary scenario 5).
	NoteInCallTo Code = "note-in-call-to"

	// Finalized is the code of the contract-violation error the
	// compilation panics with when a structural mutation is attempted on
	// a Finalizing or Finalized compilation.
	Finalized Code = "finalized-compilation"
)

// A Message implements the error interface as well as Message to allow
// internationalized messages. A Message is typically embedded in a
// diagnostic.
type Message struct {
	format string
	args   []interface{}
}

// NewMessagef creates an error message for human consumption. The
// arguments are retained for later consumption, allowing the message to
// be localized at a later time.
func NewMessagef(format string, args ...interface{}) Message {
	if false {
		_ = fmt.Sprintf(format, args...)
	}
	return Message{format: format, args: args}
}

// Msg returns a printf-style format string and its arguments for human
// consumption.
func (m *Message) Msg() (format string, args []interface{}) {
	return m.format, m.args
}

func (m *Message) Error() string {
	return fmt.Sprintf(m.format, m.args...)
}

// Error is the common diagnostic interface produced by every stage of
// elaboration.
type Error interface {
	// Code returns the stable diagnostic code, or "" if none was set.
	Code() Code

	// Position returns the primary position of an error.
	Position() token.Pos

	// InputPositions reports positions that contributed to the error.
	InputPositions() []token.Pos

	// Error reports the error message without position information.
	Error() string

	// Path returns the path into the design hierarchy where the error
	// occurred, or nil if not applicable.
	Path() []string

	// Msg returns the unformatted error message and its arguments.
	Msg() (format string, args []interface{})
}

// Positions returns all positions referenced by an error, sorted by
// relevance when possible and with duplicates removed.
func Positions(err error) []token.Pos {
	e := Error(nil)
	if !errors.As(err, &e) {
		return nil
	}

	a := make([]token.Pos, 0, 3)

	pos := e.Position()
	if pos.IsValid() {
		a = append(a, pos)
	}
	sortOffset := len(a)

	for _, p := range e.InputPositions() {
		if p.IsValid() && p != pos {
			a = append(a, p)
		}
	}

	slices.SortFunc(a[sortOffset:], comparePosWithNoPosFirst)
	return slices.Compact(a)
}

func comparePosWithNoPosFirst(a, b token.Pos) int {
	if a == b {
		return 0
	} else if a == token.NoPos {
		return -1
	} else if b == token.NoPos {
		return +1
	}
	return token.Pos.Compare(a, b)
}

// Path returns the path of an Error if err is of that type.
func Path(err error) []string {
	if e := Error(nil); errors.As(err, &e) {
		return e.Path()
	}
	return nil
}

// Newf creates an Error with the associated position, code, and message.
func Newf(code Code, p token.Pos, format string, args ...interface{}) Error {
	return &posError{
		code:    code,
		pos:     p,
		Message: NewMessagef(format, args...),
	}
}

// Wrapf creates an Error with the associated position and message. The
// provided error is added for inspection context.
func Wrapf(err error, code Code, p token.Pos, format string, args ...interface{}) Error {
	pErr := &posError{
		code:    code,
		pos:     p,
		Message: NewMessagef(format, args...),
	}
	return Wrap(pErr, err)
}

// Wrap creates a new error where child is a subordinate error of parent.
// If child is a List, the result is itself a List where each element of
// child becomes subordinate to parent.
func Wrap(parent Error, child error) Error {
	if child == nil {
		return parent
	}
	a, ok := child.(list)
	if !ok {
		return &wrapped{parent, child}
	}
	b := make(list, len(a))
	for i, err := range a {
		b[i] = &wrapped{parent, err}
	}
	return b
}

type wrapped struct {
	main Error
	wrap error
}

func (e *wrapped) Error() string {
	switch msg := e.main.Error(); {
	case e.wrap == nil:
		return msg
	case msg == "":
		return e.wrap.Error()
	default:
		return fmt.Sprintf("%s: %s", msg, e.wrap)
	}
}

func (e *wrapped) Code() Code { return e.main.Code() }

func (e *wrapped) Is(target error) bool {
	return Is(e.main, target)
}

func (e *wrapped) As(target interface{}) bool {
	return As(e.main, target)
}

func (e *wrapped) Msg() (format string, args []interface{}) {
	return e.main.Msg()
}

func (e *wrapped) Path() []string {
	if p := e.main.Path(); p != nil {
		return p
	}
	return Path(e.wrap)
}

func (e *wrapped) InputPositions() []token.Pos {
	return append(e.main.InputPositions(), Positions(e.wrap)...)
}

func (e *wrapped) Position() token.Pos {
	if p := e.main.Position(); p != token.NoPos {
		return p
	}
	if wrap, ok := e.wrap.(Error); ok {
		return wrap.Position()
	}
	return token.NoPos
}

func (e *wrapped) Unwrap() error { return e.wrap }

func (e *wrapped) Cause() error { return e.wrap }

// Promote converts a regular Go error to an Error if it isn't already one.
func Promote(err error, msg string) Error {
	switch x := err.(type) {
	case Error:
		return x
	default:
		return Wrapf(err, "", token.NoPos, "%s", msg)
	}
}

var _ Error = &posError{}

// posError is the concrete Error type held in a List: a stable Code, the
// position of the offending token, and a printf-style message.
type posError struct {
	code Code
	pos  token.Pos
	Message
}

func (e *posError) Code() Code                  { return e.code }
func (e *posError) Path() []string              { return nil }
func (e *posError) InputPositions() []token.Pos { return nil }
func (e *posError) Position() token.Pos         { return e.pos }

// Append combines two errors, flattening Lists as necessary.
func Append(a, b Error) Error {
	switch x := a.(type) {
	case nil:
		return b
	case list:
		return appendToList(x, b)
	}
	return appendToList(list{a}, b)
}

// Errors reports the individual errors associated with an error: the
// error itself if there is only one, or, if the underlying type is List,
// its individual elements. A non-Error err is promoted first.
func Errors(err error) []Error {
	if err == nil {
		return nil
	}
	var listErr list
	var errorErr Error
	switch {
	case As(err, &listErr):
		return listErr
	case As(err, &errorErr):
		return []Error{errorErr}
	default:
		return []Error{Promote(err, "")}
	}
}

func appendToList(a list, err Error) list {
	switch x := err.(type) {
	case nil:
		return a
	case list:
		if len(a) == 0 {
			return x
		}
		for _, e := range x {
			a = appendToList(a, e)
		}
		return a
	default:
		for _, e := range a {
			if e == err {
				return a
			}
		}
		return append(a, err)
	}
}

// list is a list of Errors. The zero value is an empty list ready to use.
type list []Error

func (p list) Is(target error) bool {
	for _, e := range p {
		if errors.Is(e, target) {
			return true
		}
	}
	return false
}

func (p list) As(target interface{}) bool {
	for _, e := range p {
		if errors.As(e, target) {
			return true
		}
	}
	return false
}

// List is the exported name for a diagnostic list, used by the
// compilation manager's three diagnostic streams.
type List = list

// NewList returns an empty diagnostic list.
func NewList() *List {
	l := List{}
	return &l
}

// AddNewf adds an Error with given position, code and message to a List.
func (p *list) AddNewf(code Code, pos token.Pos, msg string, args ...interface{}) {
	err := &posError{code: code, pos: pos, Message: Message{format: msg, args: args}}
	*p = append(*p, err)
}

// Add adds an Error to a List.
func (p *list) Add(err Error) {
	*p = appendToList(*p, err)
}

// Reset resets a List to no errors.
func (p *list) Reset() { *p = (*p)[:0] }

// Sanitize sorts multiple errors and removes duplicates on a best-effort
// basis. If err represents a single or no error, it is returned as is.
func Sanitize(err Error) Error {
	if err == nil {
		return nil
	}
	if l, ok := err.(list); ok {
		a := l.sanitize()
		if len(a) == 1 {
			return a[0]
		}
		return a
	}
	return err
}

func (p list) sanitize() list {
	if p == nil {
		return p
	}
	a := slices.Clone(p)
	a.RemoveMultiples()
	return a
}

// Sort sorts a List by (position, path, message), placing positionless
// errors first — matching the compilation manager's memoized diagnostic
// ordering (spec §7).
func (p list) Sort() {
	slices.SortFunc(p, func(a, b Error) int {
		if c := comparePosWithNoPosFirst(a.Position(), b.Position()); c != 0 {
			return c
		}
		if c := slices.Compare(a.Path(), b.Path()); c != 0 {
			return c
		}
		return cmp.Compare(a.Error(), b.Error())
	})
}

// RemoveMultiples sorts a List and removes all but the first error for
// each (position, path) pair. Errors without a position are only removed
// when their message repeats an adjacent one.
func (p *list) RemoveMultiples() {
	p.Sort()
	*p = slices.CompactFunc(*p, approximateEqual)
}

func approximateEqual(a, b Error) bool {
	aPos := a.Position()
	bPos := b.Position()
	if aPos == token.NoPos || bPos == token.NoPos {
		return a.Error() == b.Error()
	}
	return comparePosWithNoPosFirst(aPos, bPos) == 0 && slices.Compare(a.Path(), b.Path()) == 0
}

func (p list) Error() string {
	format, args := p.Msg()
	return fmt.Sprintf(format, args...)
}

func (p list) Code() Code {
	if len(p) == 0 {
		return ""
	}
	return p[0].Code()
}

func (p list) Msg() (format string, args []interface{}) {
	switch len(p) {
	case 0:
		return "no errors", nil
	case 1:
		return p[0].Msg()
	}
	return "%s (and %d more errors)", []interface{}{p[0], len(p) - 1}
}

func (p list) Position() token.Pos {
	if len(p) == 0 {
		return token.NoPos
	}
	return p[0].Position()
}

func (p list) InputPositions() []token.Pos {
	if len(p) == 0 {
		return nil
	}
	return p[0].InputPositions()
}

func (p list) Path() []string {
	if len(p) == 0 {
		return nil
	}
	return p[0].Path()
}

// Err returns an error equivalent to this list, or nil if the list is
// empty.
func (p list) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// A Config defines parameters for printing.
type Config struct {
	Format func(w io.Writer, format string, args ...interface{})
}

var zeroConfig = &Config{}

// Print writes a list of errors to w, one per line, if err is a List;
// otherwise it prints the error string.
func Print(w io.Writer, err error, cfg *Config) {
	if cfg == nil {
		cfg = zeroConfig
	}
	for _, e := range list(Errors(err)).sanitize() {
		printError(w, e, cfg)
	}
}

// Details is a convenience wrapper around Print that returns the error
// text as a string.
func Details(err error, cfg *Config) string {
	var b strings.Builder
	Print(&b, err, cfg)
	return b.String()
}

func defaultFprintf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

func printError(w io.Writer, err error, cfg *Config) {
	if err == nil {
		return
	}
	fprintf := cfg.Format
	if fprintf == nil {
		fprintf = defaultFprintf
	}

	msg, args := err.(Error).Msg()
	fprintf(w, msg, args...)

	positions := Positions(err)
	if len(positions) == 0 {
		fprintf(w, "\n")
		return
	}
	fprintf(w, ":\n")
	for _, p := range positions {
		pos := p.Position()
		fprintf(w, "    %s", pos.Filename)
		if pos.IsValid() {
			if pos.Filename != "" {
				fprintf(w, ":")
			}
			fprintf(w, "%d:%d", pos.Line, pos.Column)
		}
		fprintf(w, "\n")
	}
}
