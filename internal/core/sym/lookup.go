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

import "svlang.org/sv/internal/core/stats"

// Result classifies the outcome of a Lookup call.
type Result int

const (
	// Found indicates exactly one unambiguous symbol resolved.
	Found Result = iota
	// NotFound indicates no symbol resolved at all.
	NotFound
	// Ambiguous indicates two or more wildcard imports resolved the name
	// to different symbols (spec §4.2 tie-break rule).
	Ambiguous
)

// Location is the "position within scope" argument to Lookup: the
// declaration index of the reference within its originating scope.
// Passing NoLocation disables positional visibility checking in the
// originating scope (used for scoped/hierarchical and script-mode
// lookups, which bypass step 1 entirely per spec §4.2).
type Location int

// NoLocation disables positional-visibility checking.
const NoLocation Location = -1

// Lookup implements the four-step algorithm of spec §4.2:
//
//  1. Search the originating scope for a local symbol declared at or
//     before pos.
//  2. If not found, consult wildcard imports visible at pos.
//  3. Recurse into the parent scope, applying the same rule (without the
//     positional restriction, since only the originating scope's
//     ordinary identifiers are subject to forward-reference prevention).
//  4. Consult compilation-unit globals and finally the Root — reached
//     automatically since both are themselves Scopes on the parent
//     chain.
//
// Lookup never walks past a nil Parent; callers are responsible for the
// Root's Parent being nil. counts may be nil; when non-nil, this call is
// tallied in counts.Lookups.
func Lookup(origin *Scope, name string, pos Location, host Host, counts *stats.Counts) (*Symbol, Result) {
	if counts != nil {
		counts.Lookups++
	}
	first := true
	for cur := origin; cur != nil; cur = cur.Parent {
		if first {
			if m, ok := localLookup(cur, name, pos); ok {
				return m, Found
			}
		} else if m, ok := cur.LookupLocalAny(name); ok {
			return m, Found
		}

		if sym, res, ok := lookupImports(cur, name, host); ok {
			return sym, res
		}

		first = false
	}
	return nil, NotFound
}

func localLookup(s *Scope, name string, pos Location) (*Symbol, bool) {
	if pos == NoLocation {
		return s.LookupLocalAny(name)
	}
	return s.LookupLocal(name, int(pos))
}

// lookupImports consults s's wildcard imports. ok is false when no
// import resolves name at all; when ok is true, res distinguishes a
// clean single resolution from an ambiguous one.
func lookupImports(s *Scope, name string, host Host) (*Symbol, Result, bool) {
	imports := host.QueryImports(s)
	if len(imports) == 0 {
		return nil, NotFound, false
	}

	var found *Symbol
	for _, imp := range imports {
		pkgScope, ok := imp.Symbol.Payload.(*Scope)
		if !ok || pkgScope == nil {
			continue
		}
		m, ok := pkgScope.LookupLocalAny(name)
		if !ok {
			continue
		}
		switch {
		case found == nil:
			found = m
		case found == m:
			// Two imports resolving to the same symbol: not an error.
		default:
			return found, Ambiguous, true
		}
	}
	if found == nil {
		return nil, NotFound, false
	}
	return found, Found, true
}

// LookupHierarchical resolves a dotted path (`a.b.c`) against anchor,
// bypassing positional visibility entirely, per spec §4.2. Each
// intermediate segment must resolve to a symbol whose Payload is itself
// a *Scope (an instance, package, or similar container); the final
// segment may be any kind of symbol.
func LookupHierarchical(anchor *Scope, segments []string) (*Symbol, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	cur := anchor
	var result *Symbol
	for i, seg := range segments {
		m, ok := cur.LookupLocalAny(seg)
		if !ok {
			return nil, false
		}
		result = m
		if i == len(segments)-1 {
			break
		}
		next, ok := m.Payload.(*Scope)
		if !ok || next == nil {
			return nil, false
		}
		cur = next
	}
	return result, true
}
