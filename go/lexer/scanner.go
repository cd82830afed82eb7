/*
 * C-like Lexer - Scanner
 *
 * Single-pass scanner over an in-memory byte buffer. At every position an
 * ordered sequence of matchers is tried and the first structurally
 * applicable one wins; order encodes precedence, not length:
 *
 *   preprocessor directive (line start only)
 *   block comment, line comment            (skipped)
 *   string literal, char literal           (falling back to unterminated /
 *                                           multi-character error tokens)
 *   digit-led error patterns (123abc, 3,14)
 *   operators longest first, delimiters
 *   float literal, integer literal
 *   keyword / identifier
 *   whitespace and newlines                (skipped, newlines counted)
 *   single-byte mismatch error
 *
 * Lexical errors become ERROR tokens and the scan always continues; the
 * stream terminates with exactly one EOF token. A Scanner and its
 * SymbolTable belong to one scan, so concurrent scans over different
 * buffers need no locking.
 */

package lexer

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Scanner produces the token stream for one source buffer.
type Scanner struct {
	src    []byte
	pos    int
	line   int // 1-based line of pos
	lastNL int // index of the last consumed newline, -1 before any

	symbols *SymbolTable
	errors  []LexError
}

// NewScanner creates a scanner over src with a fresh symbol table.
func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src, line: 1, lastNL: -1, symbols: NewSymbolTable()}
}

// NewScannerString is NewScanner for string input.
func NewScannerString(src string) *Scanner {
	return NewScanner([]byte(src))
}

// Result is the complete outcome of scanning one buffer: the full token
// stream (EOF included), the symbol table, and the collected lexical
// errors in stream order.
type Result struct {
	Tokens  []Token
	Symbols *SymbolTable
	Errors  []LexError
}

// HasErrors reports whether any ERROR token was produced.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Scan tokenizes src to completion.
func Scan(src []byte) *Result {
	s := NewScanner(src)
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return &Result{Tokens: tokens, Symbols: s.symbols, Errors: s.errors}
}

// ScanString is Scan for string input.
func ScanString(src string) *Result {
	return Scan([]byte(src))
}

// Symbols returns the scanner's symbol table. Complete once Next has
// returned EOF.
func (s *Scanner) Symbols() *SymbolTable {
	return s.symbols
}

// Errors returns the lexical errors collected so far, in stream order.
func (s *Scanner) Errors() []LexError {
	return s.errors
}

// Next returns the next token. After the end of input it returns the EOF
// token (empty lexeme, position one past the last byte) on every call.
func (s *Scanner) Next() Token {
	for s.pos < len(s.src) {
		if tok, ok := s.scanToken(); ok {
			return tok
		}
	}
	line, col := s.lineCol(s.pos)
	return NewToken(EOF, "", line, col)
}

// scanToken attempts one match at the current position. ok is false when
// the match produced no token (comments, whitespace) and the caller should
// try again at the advanced position.
func (s *Scanner) scanToken() (Token, bool) {
	if s.atLineStart() {
		if tok, ok := s.scanPPDirective(); ok {
			return tok, true
		}
	}

	b := s.src[s.pos]

	if b == '/' {
		switch s.peekAt(1) {
		case '*':
			if s.skipBlockComment() {
				return Token{}, false
			}
			// No closing */ anywhere: not a comment, the slash scans as
			// an operator below.
		case '/':
			s.skipLineComment()
			return Token{}, false
		}
	}

	switch {
	case b == '"':
		return s.scanString(), true
	case b == '\'':
		return s.scanChar(), true
	case IsDigit(b):
		return s.scanNumber(), true
	case IsIdentStart(b):
		return s.scanIdentifier(), true
	case IsOperatorChar(b) || IsDelimiterChar(b):
		return s.scanOperator(), true
	case IsSpace(b):
		s.skipSpaces()
		return Token{}, false
	case b == '\n':
		s.skipNewlines()
		return Token{}, false
	}

	return s.scanMismatch(), true
}

func (s *Scanner) atLineStart() bool {
	return s.pos == 0 || s.src[s.pos-1] == '\n'
}

func (s *Scanner) peekAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

// lineCol returns the 1-based position of pos, which must equal the
// scanner's current position. Agrees with ComputeLineColumn by
// construction: advance records every newline it passes.
func (s *Scanner) lineCol(pos int) (int, int) {
	if s.lastNL == -1 {
		return s.line, pos + 1
	}
	return s.line, pos - s.lastNL
}

// advance consumes n bytes, keeping the line counters in sync.
func (s *Scanner) advance(n int) {
	end := s.pos + n
	for i := s.pos; i < end; i++ {
		if s.src[i] == '\n' {
			s.line++
			s.lastNL = i
		}
	}
	s.pos = end
}

// errorToken records a lexical error and returns its in-stream token.
func (s *Scanner) errorToken(typ LexErrorType, lexeme string, line, col int) Token {
	s.errors = append(s.errors, LexError{Type: typ, Lexeme: lexeme, Line: line, Column: col})
	return NewErrorToken(typ.Message(), lexeme, line, col)
}

// scanPPDirective matches a preprocessor line: optional horizontal
// whitespace then '#' through end of line, only when the scanner sits at a
// line start. The lexeme keeps the leading indentation; a trailing
// carriage return is stripped.
func (s *Scanner) scanPPDirective() (Token, bool) {
	j := s.pos
	for j < len(s.src) && IsSpace(s.src[j]) {
		j++
	}
	if j >= len(s.src) || s.src[j] != '#' {
		return Token{}, false
	}
	for j < len(s.src) && s.src[j] != '\n' {
		j++
	}

	line, col := s.lineCol(s.pos)
	lexeme := strings.TrimRight(string(s.src[s.pos:j]), "\r\n")
	s.advance(j - s.pos)
	return NewToken(PP_DIRECTIVE, lexeme, line, col), true
}

// skipBlockComment consumes a closed /* ... */ comment, newlines included.
// Returns false without consuming anything when no closing */ exists.
func (s *Scanner) skipBlockComment() bool {
	idx := bytes.Index(s.src[s.pos+2:], []byte("*/"))
	if idx < 0 {
		return false
	}
	s.advance(2 + idx + 2)
	return true
}

// skipLineComment consumes // through end of line, newline excluded.
func (s *Scanner) skipLineComment() {
	j := s.pos + 2
	for j < len(s.src) && s.src[j] != '\n' {
		j++
	}
	s.advance(j - s.pos)
}

func (s *Scanner) skipSpaces() {
	j := s.pos
	for j < len(s.src) && IsSpace(s.src[j]) {
		j++
	}
	s.advance(j - s.pos)
}

func (s *Scanner) skipNewlines() {
	j := s.pos
	for j < len(s.src) && s.src[j] == '\n' {
		j++
	}
	s.advance(j - s.pos)
}

// scanString matches a double-quoted literal with backslash escapes. A raw
// newline or end of input before the closing quote makes the literal
// unterminated.
func (s *Scanner) scanString() Token {
	start := s.pos
	line, col := s.lineCol(start)

	i := start + 1
	for i < len(s.src) {
		switch s.src[i] {
		case '"':
			lexeme := string(s.src[start : i+1])
			s.advance(i + 1 - start)
			return NewTextToken(STRING_LITERAL, lexeme[1:len(lexeme)-1], lexeme, line, col)
		case '\n':
			return s.scanUnterminated('"', UnterminatedString, line, col)
		case '\\':
			if i+1 >= len(s.src) || s.src[i+1] == '\n' {
				return s.scanUnterminated('"', UnterminatedString, line, col)
			}
			i += 2
		default:
			i++
		}
	}
	return s.scanUnterminated('"', UnterminatedString, line, col)
}

// scanChar matches a single-quoted literal holding zero or one logical
// character (an escape pair counts as one). Longer runs that still close on
// the same line become a multi-character error; everything else with no
// closing quote becomes an unterminated error.
func (s *Scanner) scanChar() Token {
	start := s.pos
	line, col := s.lineCol(start)

	i := start + 1
	if i < len(s.src) {
		switch {
		case s.src[i] == '\'':
			s.advance(2)
			return NewTextToken(CHAR_LITERAL, "", "''", line, col)
		case s.src[i] == '\\':
			if i+2 < len(s.src) && s.src[i+1] != '\n' && s.src[i+2] == '\'' {
				lexeme := string(s.src[start : i+3])
				s.advance(i + 3 - start)
				return NewTextToken(CHAR_LITERAL, lexeme[1:len(lexeme)-1], lexeme, line, col)
			}
		case s.src[i] != '\n':
			if i+1 < len(s.src) && s.src[i+1] == '\'' {
				lexeme := string(s.src[start : i+2])
				s.advance(i + 2 - start)
				return NewTextToken(CHAR_LITERAL, lexeme[1:len(lexeme)-1], lexeme, line, col)
			}
		}
	}

	if tok, ok := s.scanMultiChar(line, col); ok {
		return tok
	}
	return s.scanUnterminated('\'', UnterminatedChar, line, col)
}

// scanMultiChar matches a single-quoted run of two or more characters that
// closes on the same line. Greedy: the lexeme extends to the LAST quote on
// the line, so adjacent broken literals collapse into one error token.
func (s *Scanner) scanMultiChar(line, col int) (Token, bool) {
	start := s.pos
	lastQuote := -1
	for j := start + 1; j < len(s.src) && s.src[j] != '\n'; j++ {
		if s.src[j] == '\'' {
			lastQuote = j
		}
	}
	if lastQuote < start+3 {
		return Token{}, false
	}

	lexeme := string(s.src[start : lastQuote+1])
	s.advance(lastQuote + 1 - start)
	return s.errorToken(MultiCharLiteral, lexeme, line, col), true
}

// scanUnterminated consumes an unclosed quoted run: from the opening quote
// up to, not including, the first of the quote character, a // or /*
// comment opener, a newline, or end of input. Stopping before comment
// openers keeps a trailing comment scannable.
func (s *Scanner) scanUnterminated(quote byte, typ LexErrorType, line, col int) Token {
	start := s.pos
	j := start + 1
	for j < len(s.src) {
		c := s.src[j]
		if c == quote || c == '\n' {
			break
		}
		if c == '/' && j+1 < len(s.src) && (s.src[j+1] == '/' || s.src[j+1] == '*') {
			break
		}
		j++
	}

	lexeme := string(s.src[start:j])
	s.advance(j - start)
	return s.errorToken(typ, lexeme, line, col)
}

// scanNumber handles every pattern that begins with a digit, in priority
// order: digit-led identifier error, comma-decimal error, float literal,
// integer literal.
func (s *Scanner) scanNumber() Token {
	start := s.pos
	line, col := s.lineCol(start)

	j := start
	for j < len(s.src) && IsDigit(s.src[j]) {
		j++
	}

	if j < len(s.src) && IsIdentStart(s.src[j]) {
		for j < len(s.src) && IsIdentCont(s.src[j]) {
			j++
		}
		lexeme := string(s.src[start:j])
		s.advance(j - start)
		return s.errorToken(DigitIdentifier, lexeme, line, col)
	}

	if j+1 < len(s.src) && s.src[j] == ',' && IsDigit(s.src[j+1]) {
		j += 2
		for j < len(s.src) && IsDigit(s.src[j]) {
			j++
		}
		lexeme := string(s.src[start:j])
		s.advance(j - start)
		return s.errorToken(CommaDecimal, lexeme, line, col)
	}

	if j+1 < len(s.src) && s.src[j] == '.' && IsDigit(s.src[j+1]) {
		j += 2
		for j < len(s.src) && IsDigit(s.src[j]) {
			j++
		}
		lexeme := string(s.src[start:j])
		s.advance(j - start)
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil || math.IsInf(value, 0) {
			return s.errorToken(InvalidFloat, lexeme, line, col)
		}
		return NewFloatToken(value, lexeme, line, col)
	}

	lexeme := string(s.src[start:j])
	s.advance(j - start)
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return s.errorToken(InvalidInteger, lexeme, line, col)
	}
	return NewIntToken(value, lexeme, line, col)
}

// scanIdentifier matches [A-Za-z_][A-Za-z0-9_]* and splits the result into
// KEYWORD or symbol-table-backed IDENTIFIER.
func (s *Scanner) scanIdentifier() Token {
	start := s.pos
	line, col := s.lineCol(start)

	j := start + 1
	for j < len(s.src) && IsIdentCont(s.src[j]) {
		j++
	}
	lexeme := string(s.src[start:j])
	s.advance(j - start)

	if IsKeyword(lexeme) {
		return NewToken(KEYWORD, lexeme, line, col)
	}
	return NewIdentToken(s.symbols.LookupOrInsert(lexeme), lexeme, line, col)
}

// scanOperator matches operators longest first, then delimiters.
func (s *Scanner) scanOperator() Token {
	start := s.pos
	line, col := s.lineCol(start)

	if start+3 <= len(s.src) {
		if kind, ok := threeByteKinds[string(s.src[start:start+3])]; ok {
			lexeme := string(s.src[start : start+3])
			s.advance(3)
			return NewToken(kind, lexeme, line, col)
		}
	}
	if start+2 <= len(s.src) {
		if kind, ok := twoByteKinds[string(s.src[start:start+2])]; ok {
			lexeme := string(s.src[start : start+2])
			s.advance(2)
			return NewToken(kind, lexeme, line, col)
		}
	}

	b := s.src[start]
	if !oneByteValid[b] {
		return s.scanMismatch()
	}
	s.advance(1)
	return NewToken(oneByteKinds[b], string(rune(b)), line, col)
}

// scanMismatch consumes one UTF-8 rune no pattern recognized and reports
// it. Consuming the whole rune keeps multi-byte input to one error token
// per character instead of one per byte.
func (s *Scanner) scanMismatch() Token {
	line, col := s.lineCol(s.pos)

	r, size := utf8.DecodeRune(s.src[s.pos:])
	if r == utf8.RuneError && size <= 1 {
		size = 1
	}
	lexeme := string(s.src[s.pos : s.pos+size])
	s.advance(size)
	return s.errorToken(UnexpectedChar, lexeme, line, col)
}
