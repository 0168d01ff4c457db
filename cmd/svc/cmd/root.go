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

// Package cmd implements the svc command tree, grounded on cmd/cue's
// cobra.Command + RunE pattern (cmd/cue/cmd/cmd.go).
package cmd

import "github.com/spf13/cobra"

// Root builds the top-level svc command.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "svc",
		Short:         "elaborate SystemVerilog-family source and report diagnostics",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newCompileCmd())
	return root
}
