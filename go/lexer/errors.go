/*
 * C-like Lexer - Lexical Error Taxonomy
 *
 * Lexical problems are reported in-stream as ERROR tokens; the types here
 * give each diagnostic a stable identity and canonical message. The scanner
 * also collects LexError values alongside the token stream so callers can
 * inspect what went wrong without re-walking every token.
 */

package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// LexErrorType represents the categories of lexical errors.
type LexErrorType int

const (
	// UnterminatedString - an opening double quote with no closing quote
	// before end of line or input.
	UnterminatedString LexErrorType = iota

	// UnterminatedChar - an opening single quote with no closing quote
	// before end of line or input.
	UnterminatedChar

	// MultiCharLiteral - a single-quoted literal holding two or more
	// characters.
	MultiCharLiteral

	// DigitIdentifier - a digit run flowing directly into identifier
	// characters, e.g. 123abc.
	DigitIdentifier

	// CommaDecimal - a number written with a comma as its decimal
	// separator, e.g. 3,14.
	CommaDecimal

	// UnexpectedChar - a byte no pattern recognizes.
	UnexpectedChar

	// InvalidInteger - a digit run whose value does not fit the integer
	// attribute type.
	InvalidInteger

	// InvalidFloat - a float literal whose value is not representable.
	InvalidFloat
)

// errorMessages holds the canonical diagnostic for each error type. These
// strings are contract: they appear verbatim as ERROR token attributes.
var errorMessages = map[LexErrorType]string{
	UnterminatedString: "unterminated string literal",
	UnterminatedChar:   "unterminated character literal",
	MultiCharLiteral:   "character literal with multiple characters",
	DigitIdentifier:    "identifier cannot start with a digit",
	CommaDecimal:       "comma used as decimal separator; use a period",
	UnexpectedChar:     "unexpected character",
	InvalidInteger:     "invalid integer literal",
	InvalidFloat:       "invalid float literal",
}

// Message returns the canonical diagnostic string for the error type.
func (t LexErrorType) Message() string {
	if msg, ok := errorMessages[t]; ok {
		return msg
	}
	return "unknown lexical error"
}

// LexError describes one lexical error: what kind, the offending lexeme,
// and where it starts (1-based).
type LexError struct {
	Type   LexErrorType
	Lexeme string
	Line   int
	Column int
}

// Error implements the error interface.
func (e *LexError) Error() string {
	near := SanitizeNear(e.Lexeme, 32)
	if near == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Type.Message())
	}
	return fmt.Sprintf("%d:%d: %s at or near %q", e.Line, e.Column, e.Type.Message(), near)
}

// SanitizeNear prepares offending text for display in diagnostics:
// control characters other than tab become dots, and anything longer than
// maxLen is truncated with an ellipsis.
func SanitizeNear(text string, maxLen int) string {
	if text == "" {
		return ""
	}

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' {
			return '.'
		}
		return r
	}, text)

	if len(sanitized) > maxLen {
		sanitized = sanitized[:maxLen] + "..."
	}
	return sanitized
}
