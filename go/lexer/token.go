/*
 * C-like Lexer - Token Model
 *
 * This file defines the closed set of token kinds produced by the scanner
 * and the Token record itself: kind, exact lexeme, 1-based position, and a
 * kind-dependent attribute payload (parsed value, literal content, symbol
 * id, or diagnostic message).
 */

package lexer

import "strconv"

// TokenKind identifies the lexical class of a token. The set is closed:
// every token the scanner emits carries exactly one of these kinds.
type TokenKind int

const (
	// PP_DIRECTIVE is a preprocessor line recognized as a single opaque
	// token, never expanded.
	PP_DIRECTIVE TokenKind = iota

	// KEYWORD and IDENTIFIER split the identifier pattern: members of the
	// keyword set become KEYWORD, everything else IDENTIFIER.
	KEYWORD
	IDENTIFIER

	// Literals
	INT_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	CHAR_LITERAL

	// Operator categories. The lexeme-to-category mapping is fixed; see
	// operators.go.
	ARITH_OP
	REL_OP
	LOGIC_OP
	BIT_OP
	ASSIGN_OP
	INCDEC
	ARROW
	ELLIPSIS
	TERNARY

	// Delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMICOLON
	COMMA
	DOT

	// ERROR carries a lexical diagnostic as its attribute. Errors are
	// reported in-stream; they never abort the scan.
	ERROR

	// EOF terminates every token stream exactly once, with an empty lexeme
	// positioned one past the end of input.
	EOF
)

// kindNames maps each TokenKind to its canonical display name.
var kindNames = [...]string{
	PP_DIRECTIVE:   "PP_DIRECTIVE",
	KEYWORD:        "KEYWORD",
	IDENTIFIER:     "IDENTIFIER",
	INT_LITERAL:    "INT_LITERAL",
	FLOAT_LITERAL:  "FLOAT_LITERAL",
	STRING_LITERAL: "STRING_LITERAL",
	CHAR_LITERAL:   "CHAR_LITERAL",
	ARITH_OP:       "ARITH_OP",
	REL_OP:         "REL_OP",
	LOGIC_OP:       "LOGIC_OP",
	BIT_OP:         "BIT_OP",
	ASSIGN_OP:      "ASSIGN_OP",
	INCDEC:         "INCDEC",
	ARROW:          "ARROW",
	ELLIPSIS:       "ELLIPSIS",
	TERNARY:        "TERNARY",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	LBRACE:         "LBRACE",
	RBRACE:         "RBRACE",
	LBRACKET:       "LBRACKET",
	RBRACKET:       "RBRACKET",
	SEMICOLON:      "SEMICOLON",
	COMMA:          "COMMA",
	DOT:            "DOT",
	ERROR:          "ERROR",
	EOF:            "EOF",
}

// String returns the canonical display name of the kind.
func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsOperator reports whether the kind is an operator or delimiter category.
// Relies on the const block keeping ARITH_OP through DOT contiguous.
func (k TokenKind) IsOperator() bool {
	return k >= ARITH_OP && k <= DOT
}

// IsLiteral reports whether the kind is a numeric, string, or char literal.
func (k TokenKind) IsLiteral() bool {
	return k >= INT_LITERAL && k <= CHAR_LITERAL
}

// Token is one classified unit of scanner output. Tokens are immutable once
// emitted; Line and Column locate the first byte of Lexeme, both 1-based.
//
// Exactly one of the payload fields is meaningful, selected by Kind:
// IntVal for INT_LITERAL, FloatVal for FLOAT_LITERAL, Text for string and
// char literal content (escapes preserved verbatim) and for ERROR messages,
// SymbolID for IDENTIFIER. All other kinds carry no attribute.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int

	IntVal   int64
	FloatVal float64
	Text     string
	SymbolID int
}

// NewToken creates a token with no attribute payload.
func NewToken(kind TokenKind, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

// NewIntToken creates an INT_LITERAL token carrying its parsed value.
func NewIntToken(value int64, lexeme string, line, column int) Token {
	return Token{Kind: INT_LITERAL, Lexeme: lexeme, Line: line, Column: column, IntVal: value}
}

// NewFloatToken creates a FLOAT_LITERAL token carrying its parsed value.
func NewFloatToken(value float64, lexeme string, line, column int) Token {
	return Token{Kind: FLOAT_LITERAL, Lexeme: lexeme, Line: line, Column: column, FloatVal: value}
}

// NewTextToken creates a STRING_LITERAL or CHAR_LITERAL token. content is
// the text between the quotes with escape sequences left undecoded.
func NewTextToken(kind TokenKind, content, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column, Text: content}
}

// NewIdentToken creates an IDENTIFIER token carrying its symbol table id.
func NewIdentToken(symbolID int, lexeme string, line, column int) Token {
	return Token{Kind: IDENTIFIER, Lexeme: lexeme, Line: line, Column: column, SymbolID: symbolID}
}

// NewErrorToken creates an ERROR token carrying a diagnostic message.
func NewErrorToken(message, lexeme string, line, column int) Token {
	return Token{Kind: ERROR, Lexeme: lexeme, Line: line, Column: column, Text: message}
}

// HasAttribute reports whether the token's kind carries an attribute.
func (t Token) HasAttribute() bool {
	switch t.Kind {
	case INT_LITERAL, FLOAT_LITERAL, STRING_LITERAL, CHAR_LITERAL, IDENTIFIER, ERROR:
		return true
	}
	return false
}

// Attribute renders the token's payload for display. Kinds without an
// attribute render as the empty string.
func (t Token) Attribute() string {
	switch t.Kind {
	case INT_LITERAL:
		return strconv.FormatInt(t.IntVal, 10)
	case FLOAT_LITERAL:
		return strconv.FormatFloat(t.FloatVal, 'g', -1, 64)
	case STRING_LITERAL, CHAR_LITERAL, ERROR:
		return t.Text
	case IDENTIFIER:
		return strconv.Itoa(t.SymbolID)
	}
	return ""
}

// IsError reports whether the token is a lexical error.
func (t Token) IsError() bool {
	return t.Kind == ERROR
}

// IsEOF reports whether the token terminates the stream.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}
