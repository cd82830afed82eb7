/*
 * C-like Lexer - Operator and Delimiter Tables
 *
 * The lexeme-to-category mapping is fixed. Categories are declared as sets
 * of spellings and flattened at init into per-length lookup maps; the
 * scanner probes the three-byte map first, then two, then one, so compound
 * operators always win over their prefixes ("<<=" is one ASSIGN_OP token,
 * never "<<" "=" or "<" "<" "=").
 */

package lexer

// operatorLexemes declares every operator spelling under its category.
var operatorLexemes = map[TokenKind][]string{
	ARITH_OP:  {"+", "-", "*", "/", "%"},
	REL_OP:    {"==", "!=", "<", "<=", ">", ">="},
	LOGIC_OP:  {"&&", "||", "!"},
	BIT_OP:    {"&", "|", "^", "~", "<<", ">>"},
	ASSIGN_OP: {"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>="},
	INCDEC:    {"++", "--"},
	ARROW:     {"->"},
	ELLIPSIS:  {"..."},
	TERNARY:   {"?", ":"},
}

// delimiterLexemes declares the single-byte delimiters. A period reaches
// this table only when it is not part of an ellipsis or a float literal.
var delimiterLexemes = map[TokenKind]string{
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	SEMICOLON: ";",
	COMMA:     ",",
	DOT:       ".",
}

// Flattened lookup maps keyed by spelling, built at init. oneByteKinds
// covers both one-byte operators and delimiters.
var (
	threeByteKinds map[string]TokenKind
	twoByteKinds   map[string]TokenKind
	oneByteKinds   [256]TokenKind
	oneByteValid   [256]bool
)

func init() {
	threeByteKinds = make(map[string]TokenKind)
	twoByteKinds = make(map[string]TokenKind)

	for kind, lexemes := range operatorLexemes {
		for _, lexeme := range lexemes {
			switch len(lexeme) {
			case 3:
				threeByteKinds[lexeme] = kind
			case 2:
				twoByteKinds[lexeme] = kind
			case 1:
				oneByteKinds[lexeme[0]] = kind
				oneByteValid[lexeme[0]] = true
			}
		}
	}
	for kind, lexeme := range delimiterLexemes {
		oneByteKinds[lexeme[0]] = kind
		oneByteValid[lexeme[0]] = true
	}
}

// LookupOperator returns the category for an operator or delimiter
// spelling. The second return is false for anything outside the fixed
// tables.
func LookupOperator(lexeme string) (TokenKind, bool) {
	switch len(lexeme) {
	case 3:
		kind, ok := threeByteKinds[lexeme]
		return kind, ok
	case 2:
		kind, ok := twoByteKinds[lexeme]
		return kind, ok
	case 1:
		b := lexeme[0]
		return oneByteKinds[b], oneByteValid[b]
	}
	return 0, false
}

// OperatorLexemes returns every spelling mapped to the given category, in
// declaration order. Used by reports and tests; returns nil for kinds that
// are not operator or delimiter categories.
func OperatorLexemes(kind TokenKind) []string {
	if lexemes, ok := operatorLexemes[kind]; ok {
		out := make([]string, len(lexemes))
		copy(out, lexemes)
		return out
	}
	if lexeme, ok := delimiterLexemes[kind]; ok {
		return []string{lexeme}
	}
	return nil
}
