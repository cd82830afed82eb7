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
	"io"

	"github.com/spf13/cobra"

	"github.com/eliasdeallmeida/lexical-analyzer/go/batch"
	"github.com/eliasdeallmeida/lexical-analyzer/go/report"
	"github.com/eliasdeallmeida/lexical-analyzer/go/sourceio"
)

// ClexScanCmd holds the scan command configuration
type ClexScanCmd struct {
	clexCmd *ClexCommand
}

// AddScanCommand adds the scan subcommand to the root command
func AddScanCommand(root *cobra.Command, pc *ClexCommand) {
	scanCmd := &ClexScanCmd{
		clexCmd: pc,
	}
	root.AddCommand(scanCmd.createCommand())
}

func (s *ClexScanCmd) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file...]",
		Short: "Scan source files into a token stream",
		Long: `Scan C-like source files and report their tokens, symbol table, and
recovered lexical errors.

With no arguments (or the pseudo-path "-") the source is read from standard
input. Multiple files are scanned concurrently, each with its own symbol
table, and reports are printed in argument order. An unreadable input never
stops the batch; it is reported and the command exits non-zero at the end.

Examples:
  # Scan one file and print the token and symbol tables
  clex scan main.c

  # Scan standard input
  cat main.c | clex scan

  # Machine-readable report for tooling
  clex scan --format json main.c

  # Gate a build on lexically clean sources
  clex scan --fail-on-error src/a.c src/b.c`,
		Args: cobra.ArbitraryArgs,
		RunE: s.runScan,
	}
}

func (s *ClexScanCmd) runScan(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{sourceio.StdinPath}
	}

	loader := sourceio.NewLoader()
	loader.Stdin = cmd.InOrStdin()

	settings := s.clexCmd.Settings()
	runner := batch.NewRunner(loader, s.clexCmd.GetLogger())
	if settings.Concurrency > 0 {
		runner.Concurrency = settings.Concurrency
	}

	results, err := runner.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	docs := make([]*report.Document, 0, len(results))
	for _, res := range results {
		if res.Scan == nil {
			continue
		}
		docs = append(docs, report.NewDocument(sourceio.DisplayName(res.Path), res.Scan))
	}

	out := cmd.OutOrStdout()
	if err := report.RenderAll(out, docs, settings.Format); err != nil {
		return err
	}
	if settings.Summary {
		writeSummary(out, results)
	}

	if n := batch.CountReadFailures(results); n > 0 {
		return fmt.Errorf("%d input(s) could not be read", n)
	}
	if settings.FailOnError {
		if n := batch.CountLexicalErrors(results); n > 0 {
			return fmt.Errorf("found %d lexical error(s)", n)
		}
	}
	return nil
}

// writeSummary appends one line per input with its token, symbol, and error
// counts. Token counts include the terminal EOF entry.
func writeSummary(w io.Writer, results []batch.Result) {
	fmt.Fprintln(w)
	for _, res := range results {
		name := sourceio.DisplayName(res.Path)
		if res.ReadErr != nil {
			fmt.Fprintf(w, "%s: read failed: %v\n", name, res.ReadErr)
			continue
		}
		fmt.Fprintf(w, "%s: %d tokens, %d symbols, %d errors\n",
			name, len(res.Scan.Tokens), res.Scan.Symbols.Len(), len(res.Scan.Errors))
	}
}
