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

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svlang.org/sv/ast"
	"svlang.org/sv/internal/core/compilation"
	"svlang.org/sv/svcontext"
	"svlang.org/sv/token"
)

// fileUnit stands in for the (out-of-scope) parser's compilation-unit
// syntax node: the driver only needs something satisfying ast.Node to
// hand to AddSyntaxTree, since real SystemVerilog parsing is outside
// this module's boundary (spec §1).
type fileUnit struct {
	loc token.Pos
}

func (f fileUnit) Kind() ast.SyntaxKind { return ast.SyntaxKindUnknown }
func (f fileUnit) Pos() token.Pos       { return f.loc }

func newCompileCmd() *cobra.Command {
	var maxDepth int
	var scriptMode bool
	var showStats bool

	cmd := &cobra.Command{
		Use:   "compile <files...>",
		Short: "register one compilation unit per file and elaborate the design",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []svcontext.Option
			if maxDepth > 0 {
				opts = append(opts, svcontext.WithMaxRecursionDepth(maxDepth))
			}
			if scriptMode {
				opts = append(opts, svcontext.WithScriptMode())
			}
			c := svcontext.New(opts...)

			for _, path := range args {
				if _, err := os.Stat(path); err != nil {
					return fmt.Errorf("svc: %w", err)
				}
				file := token.NewFile(path, 0)
				c.AddSyntaxTree(&compilation.SyntaxTree{Unit: fileUnit{loc: file.Pos(0)}})
			}

			c.GetRoot()

			for _, d := range c.AllDiagnostics() {
				fmt.Fprintln(cmd.OutOrStdout(), d.Error())
			}
			if showStats {
				fmt.Fprintln(cmd.OutOrStdout(), c.Stats.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-recursion-depth", 0, "recursion depth limit recorded in the compilation's parse config")
	cmd.Flags().BoolVar(&scriptMode, "script", false, "pre-create a script scope for interactive use")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print elaboration counters after compiling")

	return cmd
}
