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

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// renderGrid writes the token and symbol tables as bordered text grids:
//
//	+-------+---------+
//	| Pos   | Kind    |
//	+=======+=========+
//	| 1:1   | KEYWORD |
//	+-------+---------+
//
// Cells are left-aligned and padded with one space on each side. Column
// widths fit the widest cell, measured in runes so multi-byte lexemes keep
// the borders straight.
func renderGrid(w io.Writer, doc *Document) error {
	tokenRows := make([][]string, 0, len(doc.Tokens))
	for _, tk := range doc.Tokens {
		tokenRows = append(tokenRows, []string{
			fmt.Sprintf("%d:%d", tk.Line, tk.Column),
			tk.Kind,
			sanitizeCell(tk.Lexeme),
			sanitizeCell(tk.Attribute),
		})
	}

	symbolRows := make([][]string, 0, len(doc.Symbols))
	for _, sym := range doc.Symbols {
		symbolRows = append(symbolRows, []string{
			strconv.Itoa(sym.ID),
			sym.Identifier,
			strconv.Itoa(sym.Occurrences),
		})
	}

	var b strings.Builder
	if doc.File != "" {
		fmt.Fprintf(&b, "File: %s\n", doc.File)
	}

	b.WriteString("\nToken Table:\n")
	writeGridTable(&b, []string{"Pos", "Kind", "Lexeme", "Attribute"}, tokenRows)

	b.WriteString("\nSymbol Table:\n")
	writeGridTable(&b, []string{"ID", "Identifier", "Occurrences"}, symbolRows)

	if len(doc.Errors) > 0 {
		fmt.Fprintf(&b, "\n%d lexical error(s):\n", len(doc.Errors))
		for _, e := range doc.Errors {
			fmt.Fprintf(&b, "  %d:%d: %s at or near %q\n",
				e.Line, e.Column, e.Message, sanitizeCell(e.Lexeme))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Table writes one bordered grid table on its own, for commands that print
// tabular data outside a scan report.
func Table(w io.Writer, headers []string, rows [][]string) error {
	var b strings.Builder
	writeGridTable(&b, headers, rows)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeGridTable(b *strings.Builder, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeGridRule(b, widths, "-")
	writeGridRow(b, widths, headers)
	writeGridRule(b, widths, "=")
	for _, row := range rows {
		writeGridRow(b, widths, row)
		writeGridRule(b, widths, "-")
	}
}

func writeGridRule(b *strings.Builder, widths []int, fill string) {
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat(fill, w+2))
	}
	b.WriteString("+\n")
}

func writeGridRow(b *strings.Builder, widths []int, cells []string) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - utf8.RuneCountInString(cell)
		b.WriteString("| ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", pad+1))
	}
	b.WriteString("|\n")
}

// sanitizeCell keeps raw lexemes from breaking table rows: newlines, tabs,
// and carriage returns become visible escapes.
func sanitizeCell(s string) string {
	if !strings.ContainsAny(s, "\n\t\r") {
		return s
	}
	r := strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`)
	return r.Replace(s)
}
