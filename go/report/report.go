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

// Package report renders scan results as terminal tables, JSON, or YAML.
// It is a read-only consumer of lexer results; rendering never alters
// tokens, symbols, or errors.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/eliasdeallmeida/lexical-analyzer/go/lexer"
)

// TokenRecord is one row of the token table.
type TokenRecord struct {
	Line      int    `json:"line" yaml:"line"`
	Column    int    `json:"column" yaml:"column"`
	Kind      string `json:"kind" yaml:"kind"`
	Lexeme    string `json:"lexeme" yaml:"lexeme"`
	Attribute string `json:"attribute" yaml:"attribute"`
}

// SymbolRecord is one row of the symbol table.
type SymbolRecord struct {
	ID          int    `json:"id" yaml:"id"`
	Identifier  string `json:"identifier" yaml:"identifier"`
	Occurrences int    `json:"occurrences" yaml:"occurrences"`
}

// ErrorRecord is one recovered lexical error.
type ErrorRecord struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Message string `json:"message" yaml:"message"`
	Lexeme  string `json:"lexeme" yaml:"lexeme"`
}

// Document is the complete report of one scanned input.
type Document struct {
	File    string         `json:"file" yaml:"file"`
	Tokens  []TokenRecord  `json:"tokens" yaml:"tokens"`
	Symbols []SymbolRecord `json:"symbols" yaml:"symbols"`
	Errors  []ErrorRecord  `json:"errors" yaml:"errors"`
}

// NewDocument converts a scan result into its report form. The token rows
// include the terminal EOF entry, matching the scanned stream exactly.
func NewDocument(file string, result *lexer.Result) *Document {
	doc := &Document{
		File:    file,
		Tokens:  make([]TokenRecord, 0, len(result.Tokens)),
		Symbols: []SymbolRecord{},
		Errors:  []ErrorRecord{},
	}

	for _, tk := range result.Tokens {
		doc.Tokens = append(doc.Tokens, TokenRecord{
			Line:      tk.Line,
			Column:    tk.Column,
			Kind:      tk.Kind.String(),
			Lexeme:    tk.Lexeme,
			Attribute: tk.Attribute(),
		})
	}

	for _, sym := range result.Symbols.Symbols() {
		doc.Symbols = append(doc.Symbols, SymbolRecord{
			ID:          sym.ID,
			Identifier:  sym.Name,
			Occurrences: sym.Count,
		})
	}

	for _, lexErr := range result.Errors {
		doc.Errors = append(doc.Errors, ErrorRecord{
			Line:    lexErr.Line,
			Column:  lexErr.Column,
			Message: lexErr.Type.Message(),
			Lexeme:  lexErr.Lexeme,
		})
	}

	return doc
}

// Render writes the document to w in the requested format.
func Render(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatGrid:
		return renderGrid(w, doc)
	case FormatJSON:
		return renderJSON(w, doc)
	case FormatYAML:
		return renderYAML(w, doc)
	default:
		return fmt.Errorf("unknown format %d", int(format))
	}
}

// RenderAll writes several documents to w. Grid output separates documents
// with a blank line; JSON emits a stream of objects and YAML a multi-document
// stream.
func RenderAll(w io.Writer, docs []*Document, format Format) error {
	for i, doc := range docs {
		if i > 0 {
			switch format {
			case FormatGrid:
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			case FormatYAML:
				if _, err := fmt.Fprintln(w, "---"); err != nil {
					return err
				}
			}
		}
		if err := Render(w, doc, format); err != nil {
			return fmt.Errorf("rendering report for %s: %w", doc.File, err)
		}
	}
	return nil
}

func renderJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	return enc.Close()
}
