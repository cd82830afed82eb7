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
	"sort"

	"github.com/spf13/cobra"

	"github.com/eliasdeallmeida/lexical-analyzer/go/lexer"
	"github.com/eliasdeallmeida/lexical-analyzer/go/report"
)

// ClexKeywordsCmd holds the keywords command configuration
type ClexKeywordsCmd struct {
	clexCmd  *ClexCommand
	category string
}

// AddKeywordsCommand adds the keywords subcommand to the root command
func AddKeywordsCommand(root *cobra.Command, pc *ClexCommand) {
	keywordsCmd := &ClexKeywordsCmd{
		clexCmd: pc,
	}
	root.AddCommand(keywordsCmd.createCommand())
}

func (s *ClexKeywordsCmd) createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the reserved words of the scanned language",
		Long: `List the reserved words the scanner recognizes, with the role group
each belongs to. A lexeme matching one of these spellings exactly is always
a KEYWORD token and never enters the symbol table.

Examples:
  # All keywords
  clex keywords

  # Only control-flow keywords
  clex keywords --category control`,
		Args: cobra.NoArgs,
		RunE: s.runKeywords,
	}
	cmd.Flags().StringVar(&s.category, "category", "",
		"Limit output to one category (type, control, storage, composite, operator).")
	return cmd
}

func (s *ClexKeywordsCmd) runKeywords(cmd *cobra.Command, args []string) error {
	keywords := lexer.Keywords
	if s.category != "" {
		category, ok := lexer.ParseKeywordCategory(s.category)
		if !ok {
			return fmt.Errorf("unknown keyword category %q", s.category)
		}
		keywords = lexer.KeywordsByCategory(category)
	}

	sorted := make([]lexer.KeywordInfo, len(keywords))
	copy(sorted, keywords)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	rows := make([][]string, len(sorted))
	for i, kw := range sorted {
		rows[i] = []string{kw.Name, kw.Category.String()}
	}
	return report.Table(cmd.OutOrStdout(), []string{"Keyword", "Category"}, rows)
}
