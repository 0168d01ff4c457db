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

import "svlang.org/sv/ast"

// ParseName parses a name string into name syntax, for programmatic
// lookups and tests (spec §4.6 parseName: "mostly for testing and API
// purposes; normal compilation never does this").
func (c *Compilation) ParseName(name string) (ast.NameSyntax, error) {
	return ast.ParseName(name)
}
