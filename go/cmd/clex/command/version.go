// Copyright 2026 The Lexical Analyzer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, overridden at link time via -ldflags.
var (
	version = "dev"
	commit  = ""
)

// ClexVersionCmd holds the version command configuration
type ClexVersionCmd struct {
	clexCmd *ClexCommand
}

// AddVersionCommand adds the version subcommand to the root command
func AddVersionCommand(root *cobra.Command, pc *ClexCommand) {
	versionCmd := &ClexVersionCmd{
		clexCmd: pc,
	}
	root.AddCommand(versionCmd.createCommand())
}

func (s *ClexVersionCmd) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show clex version information",
		Args:  cobra.NoArgs,
		RunE:  s.runVersion,
	}
}

func (s *ClexVersionCmd) runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if commit != "" {
		fmt.Fprintf(out, "clex version %s (%s)\n", version, commit)
		return nil
	}
	fmt.Fprintf(out, "clex version %s\n", version)
	return nil
}
