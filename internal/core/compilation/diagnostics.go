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

package compilation

import (
	"svlang.org/sv/errors"
	"svlang.org/sv/internal/core/sym"
	"svlang.org/sv/token"
)

// ParseDiagnostics returns every diagnostic produced while lexing,
// preprocessing, and parsing the syntax trees added so far (spec §4.6).
func (c *Compilation) ParseDiagnostics() []errors.Error {
	return sortedCopy(*c.parseDiags)
}

// SemanticDiagnostics returns every diagnostic produced during semantic
// analysis, forcing finalization first since some checks (e.g.
// top-level-instance selection) only run during elaboration.
func (c *Compilation) SemanticDiagnostics() []errors.Error {
	c.GetRoot()
	return sortedCopy(*c.semanticDiags)
}

// AllDiagnostics returns the union of ParseDiagnostics and
// SemanticDiagnostics, memoized: the result is cached after finalization
// and reused until a later AddDiag, GetType or other diagnostic-appending
// call clears the cache, after which the next call recomputes it.
func (c *Compilation) AllDiagnostics() []errors.Error {
	c.GetRoot()
	if c.allDiagsCache != nil {
		return c.allDiagsCache
	}
	all := append([]errors.Error(nil), *c.parseDiags...)
	all = append(all, *c.semanticDiags...)
	all = sortedCopy(all)
	c.allDiagsCache = all
	return all
}

func sortedCopy(in []errors.Error) []errors.Error {
	out := append([]errors.Error(nil), in...)
	list := errors.List(out)
	list.RemoveMultiples()
	return list
}

// invalidateDiagCache clears the memoized AllDiagnostics result; called
// whenever new diagnostics might have been appended.
func (c *Compilation) invalidateDiagCache() { c.allDiagsCache = nil }

// AddDiag appends a semantic diagnostic attributed to source at loc
// (spec §4.6 addDiag). source may be nil for diagnostics with no
// specific originating symbol. The message is tagged with this
// Compilation's id so diagnostics from several Compilations can be told
// apart once merged into one driver log.
func (c *Compilation) AddDiag(source *sym.Symbol, code errors.Code, loc token.Pos, format string, args ...any) errors.Error {
	diag := errors.Newf(code, loc, "[%s] "+format, append([]any{c.id}, args...)...)
	c.semanticDiags.Add(diag)
	c.invalidateDiagCache()
	c.Stats.DiagnosticsEmitted++
	return diag
}
