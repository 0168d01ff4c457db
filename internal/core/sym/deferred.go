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

package sym

// Host is implemented by the Compilation manager to own the side-band
// DeferredMemberData/ImportData tables addressed by a scope's opaque
// indices (spec §4.2, §9). Keeping these tables off the Scope struct
// itself is the "deferred member side-band" design: common leaf scopes
// never pay for the optional fields.
type Host interface {
	// GetOrAddDeferredData lazily allocates s's deferred-member record on
	// first call and returns a mutable reference to it on every call.
	GetOrAddDeferredData(s *Scope) *DeferredMemberData

	// TrackImport appends imp to s's wildcard-import list, lazily
	// allocating the side-band record on first call.
	TrackImport(s *Scope, imp *WildcardImport)

	// QueryImports returns s's current wildcard-import snapshot, or nil
	// if none have been tracked.
	QueryImports(s *Scope) []*WildcardImport
}

// AddDeferred records a syntax construct that cannot be resolved until
// this scope's siblings are known.
func (s *Scope) AddDeferred(host Host, node DeferredSyntax) {
	data := host.GetOrAddDeferredData(s)
	if data.Materialized {
		// A scope is only ever materialized once (spec §4.2); adding
		// deferred syntax afterward indicates a binder bug rather than
		// a recoverable condition.
		panic("sym: AddDeferred called on an already-materialized scope")
	}
	data.Pending = append(data.Pending, node)
}

// Binder converts a scope's pending deferred syntax into real member
// symbols, in declaration order. It is supplied by the (out-of-scope)
// statement/expression binder layer; this package only sequences the
// call.
type Binder func(scope *Scope, pending []DeferredSyntax) []*Symbol

// Materialize converts s's deferred syntax into real member symbols via
// bind, in declaration order, and clears the deferred slot. It is a
// no-op if s has already been materialized (materialization happens
// exactly once, per spec §4.2). A scope with no deferred data still gets
// a record from host, is marked materialized, and has bind called once
// with no pending syntax.
func (s *Scope) Materialize(host Host, bind Binder) {
	data := host.GetOrAddDeferredData(s)
	if data.Materialized {
		return
	}
	pending := data.Pending
	data.Pending = nil
	data.Materialized = true

	for _, m := range bind(s, pending) {
		s.AddMember(m)
	}
}

// IsMaterialized reports whether s's deferred members have already been
// converted (or whether s never had any).
func (s *Scope) IsMaterialized(host Host) bool {
	if s.deferredIndex == NoDeferredIndex {
		return true
	}
	return host.GetOrAddDeferredData(s).Materialized
}
