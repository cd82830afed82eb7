/*
 * C-like Lexer - Scanner Test Suite
 *
 * Validates pattern priority, error-as-token semantics, position tracking,
 * stream totality, and concurrent scan safety.
 */

package lexer

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tok is a compact expectation: kind plus exact lexeme.
type tok struct {
	kind   TokenKind
	lexeme string
}

// scanStripEOF scans input, requires a single well-positioned terminal EOF,
// and returns the stream without it.
func scanStripEOF(t *testing.T, input string) []Token {
	t.Helper()
	result := ScanString(input)
	require.NotEmpty(t, result.Tokens, "stream must at least hold EOF")

	last := result.Tokens[len(result.Tokens)-1]
	require.Equal(t, EOF, last.Kind, "stream must end with EOF")
	require.Empty(t, last.Lexeme, "EOF lexeme must be empty")

	wantLine, wantCol := ComputeLineColumn([]byte(input), len(input))
	require.Equal(t, wantLine, last.Line, "EOF line")
	require.Equal(t, wantCol, last.Column, "EOF column")

	for _, tk := range result.Tokens[:len(result.Tokens)-1] {
		require.NotEqual(t, EOF, tk.Kind, "EOF must appear exactly once")
	}
	return result.Tokens[:len(result.Tokens)-1]
}

func toPairs(tokens []Token) []tok {
	out := make([]tok, len(tokens))
	for i, tk := range tokens {
		out[i] = tok{tk.Kind, tk.Lexeme}
	}
	return out
}

func TestScanTokenSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{
			name:  "simple declaration",
			input: "int x = 42;",
			expected: []tok{
				{KEYWORD, "int"}, {IDENTIFIER, "x"}, {ASSIGN_OP, "="},
				{INT_LITERAL, "42"}, {SEMICOLON, ";"},
			},
		},
		{
			name:  "preprocessor directive at line start",
			input: "#include <stdio.h>",
			expected: []tok{
				{PP_DIRECTIVE, "#include <stdio.h>"},
			},
		},
		{
			name:  "preprocessor directive keeps indentation",
			input: " \t #define MAX 10",
			expected: []tok{
				{PP_DIRECTIVE, " \t #define MAX 10"},
			},
		},
		{
			name:  "hash away from line start is an error",
			input: "x # y",
			expected: []tok{
				{IDENTIFIER, "x"}, {ERROR, "#"}, {IDENTIFIER, "y"},
			},
		},
		{
			name:  "directive on a later line",
			input: "int x;\n#define Y 1\n",
			expected: []tok{
				{KEYWORD, "int"}, {IDENTIFIER, "x"}, {SEMICOLON, ";"},
				{PP_DIRECTIVE, "#define Y 1"},
			},
		},
		{
			name:  "block comment skipped",
			input: "a /* ignored */ b",
			expected: []tok{
				{IDENTIFIER, "a"}, {IDENTIFIER, "b"},
			},
		},
		{
			name:  "block comment spans lines",
			input: "a /* one\ntwo */ b",
			expected: []tok{
				{IDENTIFIER, "a"}, {IDENTIFIER, "b"},
			},
		},
		{
			name:  "comment markers inside strings are literal",
			input: `"/* not a comment */"`,
			expected: []tok{
				{STRING_LITERAL, `"/* not a comment */"`},
			},
		},
		{
			name:  "string markers inside comments are ignored",
			input: "/* \" */ x",
			expected: []tok{
				{IDENTIFIER, "x"},
			},
		},
		{
			name:  "unclosed block comment scans as operators",
			input: "/* x",
			expected: []tok{
				{ARITH_OP, "/"}, {ARITH_OP, "*"}, {IDENTIFIER, "x"},
			},
		},
		{
			name:  "line comment skipped",
			input: "a // rest of line\nb",
			expected: []tok{
				{IDENTIFIER, "a"}, {IDENTIFIER, "b"},
			},
		},
		{
			name:  "string literal with escapes",
			input: `"a\"b\\c"`,
			expected: []tok{
				{STRING_LITERAL, `"a\"b\\c"`},
			},
		},
		{
			name:  "unterminated string single token",
			input: `"abc`,
			expected: []tok{
				{ERROR, `"abc`},
			},
		},
		{
			name:  "unterminated string stops before line comment",
			input: `x = "abc // trailing`,
			expected: []tok{
				{IDENTIFIER, "x"}, {ASSIGN_OP, "="}, {ERROR, `"abc `},
			},
		},
		{
			name:  "unterminated string stops at newline",
			input: "\"abc\nint",
			expected: []tok{
				{ERROR, `"abc`}, {KEYWORD, "int"},
			},
		},
		{
			name:  "char literal",
			input: "'a'",
			expected: []tok{
				{CHAR_LITERAL, "'a'"},
			},
		},
		{
			name:  "empty char literal is valid",
			input: "''",
			expected: []tok{
				{CHAR_LITERAL, "''"},
			},
		},
		{
			name:  "escaped char literal",
			input: `'\n'`,
			expected: []tok{
				{CHAR_LITERAL, `'\n'`},
			},
		},
		{
			name:  "escaped quote char literal",
			input: `'\''`,
			expected: []tok{
				{CHAR_LITERAL, `'\''`},
			},
		},
		{
			name:  "multi-character char literal",
			input: "'ab'",
			expected: []tok{
				{ERROR, "'ab'"},
			},
		},
		{
			name:  "multi-character literal is greedy to last quote",
			input: "'ab' x 'cd'",
			expected: []tok{
				{ERROR, "'ab' x 'cd'"},
			},
		},
		{
			name:  "unterminated char literal",
			input: "'a",
			expected: []tok{
				{ERROR, "'a"},
			},
		},
		{
			name:  "unterminated char stops before line comment",
			input: "'a; // oops",
			expected: []tok{
				{ERROR, "'a; "},
			},
		},
		{
			name:  "digit-led identifier",
			input: "int 123abc = 10;",
			expected: []tok{
				{KEYWORD, "int"}, {ERROR, "123abc"}, {ASSIGN_OP, "="},
				{INT_LITERAL, "10"}, {SEMICOLON, ";"},
			},
		},
		{
			name:  "comma as decimal separator",
			input: "float e = 3,14;",
			expected: []tok{
				{KEYWORD, "float"}, {IDENTIFIER, "e"}, {ASSIGN_OP, "="},
				{ERROR, "3,14"}, {SEMICOLON, ";"},
			},
		},
		{
			name:  "comma without following digit stays a delimiter",
			input: "12,x",
			expected: []tok{
				{INT_LITERAL, "12"}, {COMMA, ","}, {IDENTIFIER, "x"},
			},
		},
		{
			name:  "float literal",
			input: "3.14",
			expected: []tok{
				{FLOAT_LITERAL, "3.14"},
			},
		},
		{
			name:  "trailing period is not a float",
			input: "1.",
			expected: []tok{
				{INT_LITERAL, "1"}, {DOT, "."},
			},
		},
		{
			name:  "leading period is not a float",
			input: ".5",
			expected: []tok{
				{DOT, "."}, {INT_LITERAL, "5"},
			},
		},
		{
			name:  "second period ends the float",
			input: "1.2.3",
			expected: []tok{
				{FLOAT_LITERAL, "1.2"}, {DOT, "."}, {INT_LITERAL, "3"},
			},
		},
		{
			name:  "three-byte operator wins over prefixes",
			input: "a <<= 2",
			expected: []tok{
				{IDENTIFIER, "a"}, {ASSIGN_OP, "<<="}, {INT_LITERAL, "2"},
			},
		},
		{
			name:  "shift without assignment",
			input: "a << 2",
			expected: []tok{
				{IDENTIFIER, "a"}, {BIT_OP, "<<"}, {INT_LITERAL, "2"},
			},
		},
		{
			name:  "ellipsis",
			input: "f(a, ...)",
			expected: []tok{
				{IDENTIFIER, "f"}, {LPAREN, "("}, {IDENTIFIER, "a"},
				{COMMA, ","}, {ELLIPSIS, "..."}, {RPAREN, ")"},
			},
		},
		{
			name:  "arrow and increment",
			input: "p->n++",
			expected: []tok{
				{IDENTIFIER, "p"}, {ARROW, "->"}, {IDENTIFIER, "n"},
				{INCDEC, "++"},
			},
		},
		{
			name:  "keyword-prefixed identifier stays an identifier",
			input: "int int_ = 1;",
			expected: []tok{
				{KEYWORD, "int"}, {IDENTIFIER, "int_"}, {ASSIGN_OP, "="},
				{INT_LITERAL, "1"}, {SEMICOLON, ";"},
			},
		},
		{
			name:  "unexpected characters",
			input: "a @ b",
			expected: []tok{
				{IDENTIFIER, "a"}, {ERROR, "@"}, {IDENTIFIER, "b"},
			},
		},
		{
			name:  "carriage return is not whitespace",
			input: "a\rb",
			expected: []tok{
				{IDENTIFIER, "a"}, {ERROR, "\r"}, {IDENTIFIER, "b"},
			},
		},
		{
			name:  "multi-byte rune is one error token",
			input: "a é b",
			expected: []tok{
				{IDENTIFIER, "a"}, {ERROR, "é"}, {IDENTIFIER, "b"},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []tok{},
		},
		{
			name:     "whitespace only",
			input:    " \t\n \t\n",
			expected: []tok{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanStripEOF(t, tt.input)
			assert.Equal(t, tt.expected, toPairs(tokens))
		})
	}
}

func TestScanErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errType LexErrorType
		message string
	}{
		{"unterminated string", `"abc`, UnterminatedString, "unterminated string literal"},
		{"unterminated char", "'a", UnterminatedChar, "unterminated character literal"},
		{"multi-character char", "'ab'", MultiCharLiteral, "character literal with multiple characters"},
		{"digit identifier", "123abc", DigitIdentifier, "identifier cannot start with a digit"},
		{"comma decimal", "3,14", CommaDecimal, "comma used as decimal separator; use a period"},
		{"unexpected character", "@", UnexpectedChar, "unexpected character"},
		{"integer overflow", "99999999999999999999", InvalidInteger, "invalid integer literal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScanString(tt.input)
			require.Len(t, result.Errors, 1, "expected exactly one lexical error")
			assert.Equal(t, tt.errType, result.Errors[0].Type)

			tokens := result.Tokens
			require.GreaterOrEqual(t, len(tokens), 2)
			errTok := tokens[0]
			assert.Equal(t, ERROR, errTok.Kind)
			assert.Equal(t, tt.message, errTok.Attribute(), "ERROR attribute must be the canonical message")
			assert.True(t, result.HasErrors())
		})
	}
}

func TestScanFloatOverflow(t *testing.T) {
	input := strings.Repeat("9", 400) + ".0"
	result := ScanString(input)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, InvalidFloat, result.Errors[0].Type)
	assert.Equal(t, input, result.Errors[0].Lexeme)
	assert.Equal(t, "invalid float literal", result.Tokens[0].Attribute())
}

func TestScanNumericAttributes(t *testing.T) {
	result := ScanString("42 3.14 0 10.5")
	tokens := result.Tokens
	require.Len(t, tokens, 5)

	assert.Equal(t, INT_LITERAL, tokens[0].Kind)
	assert.Equal(t, int64(42), tokens[0].IntVal)

	assert.Equal(t, FLOAT_LITERAL, tokens[1].Kind)
	assert.InDelta(t, 3.14, tokens[1].FloatVal, 1e-12)

	assert.Equal(t, INT_LITERAL, tokens[2].Kind)
	assert.Equal(t, int64(0), tokens[2].IntVal)

	assert.Equal(t, FLOAT_LITERAL, tokens[3].Kind)
	assert.InDelta(t, 10.5, tokens[3].FloatVal, 1e-12)
}

func TestScanLiteralContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    TokenKind
		content string
	}{
		{"plain string", `"hello"`, STRING_LITERAL, "hello"},
		{"empty string", `""`, STRING_LITERAL, ""},
		{"string keeps escapes verbatim", `"a\nb"`, STRING_LITERAL, `a\nb`},
		{"string with escaped quote", `"say \"hi\""`, STRING_LITERAL, `say \"hi\"`},
		{"plain char", "'x'", CHAR_LITERAL, "x"},
		{"empty char", "''", CHAR_LITERAL, ""},
		{"escaped char", `'\t'`, CHAR_LITERAL, `\t`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanStripEOF(t, tt.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.kind, tokens[0].Kind)
			assert.Equal(t, tt.content, tokens[0].Text)
			assert.Equal(t, tt.content, tokens[0].Attribute())
		})
	}
}

func TestScanPositions(t *testing.T) {
	input := "int x;\n  y = 2;\n"
	tokens := scanStripEOF(t, input)
	require.Len(t, tokens, 7)

	wantPositions := []struct {
		line, col int
	}{
		{1, 1}, // int
		{1, 5}, // x
		{1, 6}, // ;
		{2, 3}, // y
		{2, 5}, // =
		{2, 7}, // 2
		{2, 8}, // ;
	}
	for i, want := range wantPositions {
		assert.Equal(t, want.line, tokens[i].Line, "token %d line", i)
		assert.Equal(t, want.col, tokens[i].Column, "token %d column", i)
	}
}

// lineStartOffsets maps each 1-based line to the byte offset of its first
// character, letting tests convert token positions back to offsets.
func lineStartOffsets(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func TestScanCoverage(t *testing.T) {
	// Inputs avoid comments and directives so every skipped byte must be
	// plain whitespace.
	tests := []struct {
		name  string
		input string
	}{
		{"declarations", "int x = 1;\nfloat y = 2.5;\n"},
		{"errors interleaved", "int 1x = 'ab';\n\"open\ny = 3,4;"},
		{"operators", "a<<=b; c->d; e...f;"},
		{"dense", "x=1+2*3/(4-5)%6;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanStripEOF(t, tt.input)
			starts := lineStartOffsets(tt.input)

			covered := make([]bool, len(tt.input))
			lastEnd := -1
			for i, tk := range tokens {
				off := starts[tk.Line-1] + tk.Column - 1
				require.Greater(t, off, lastEnd, "token %d out of order", i)
				require.LessOrEqual(t, off+len(tk.Lexeme), len(tt.input))
				assert.Equal(t, tt.input[off:off+len(tk.Lexeme)], tk.Lexeme,
					"token %d lexeme must be the exact source substring", i)
				for j := off; j < off+len(tk.Lexeme); j++ {
					covered[j] = true
				}
				lastEnd = off + len(tk.Lexeme) - 1
			}

			for i := 0; i < len(tt.input); i++ {
				if covered[i] {
					continue
				}
				b := tt.input[i]
				assert.True(t, b == ' ' || b == '\t' || b == '\n',
					"uncovered byte %d (%q) must be whitespace", i, b)
			}
		})
	}
}

func TestScanSymbolTable(t *testing.T) {
	t.Run("ids follow first occurrence", func(t *testing.T) {
		result := ScanString("alpha beta alpha gamma beta alpha")
		symbols := result.Symbols.Symbols()
		require.Len(t, symbols, 3)

		assert.Equal(t, Symbol{Name: "alpha", ID: 1, Count: 3}, symbols[0])
		assert.Equal(t, Symbol{Name: "beta", ID: 2, Count: 2}, symbols[1])
		assert.Equal(t, Symbol{Name: "gamma", ID: 3, Count: 1}, symbols[2])
	})

	t.Run("identifier tokens carry their symbol id", func(t *testing.T) {
		result := ScanString("a b a")
		tokens := result.Tokens
		require.Len(t, tokens, 4)
		assert.Equal(t, 1, tokens[0].SymbolID)
		assert.Equal(t, 2, tokens[1].SymbolID)
		assert.Equal(t, 1, tokens[2].SymbolID)
	})

	t.Run("repeated identifier counts every occurrence", func(t *testing.T) {
		result := ScanString("x x x")
		symbols := result.Symbols.Symbols()
		require.Len(t, symbols, 1)
		assert.Equal(t, 3, symbols[0].Count)
	})

	t.Run("keywords never enter the table", func(t *testing.T) {
		result := ScanString("int if while x else for")
		require.Equal(t, 1, result.Symbols.Len())

		for _, name := range KeywordNames() {
			_, ok := result.Symbols.Lookup(name)
			assert.False(t, ok, "keyword %q must not be in the symbol table", name)
		}
		for _, tk := range result.Tokens {
			if tk.Kind == IDENTIFIER {
				assert.False(t, IsKeyword(tk.Lexeme))
			}
		}
	})
}

func TestScanEOFIdempotent(t *testing.T) {
	s := NewScannerString("x")

	first := s.Next()
	assert.Equal(t, IDENTIFIER, first.Kind)

	eof1 := s.Next()
	eof2 := s.Next()
	assert.Equal(t, EOF, eof1.Kind)
	assert.Equal(t, eof1, eof2, "EOF must be stable across repeated calls")
}

func TestScanConcurrent(t *testing.T) {
	inputs := []string{
		"int main() { return 0; }",
		"float x = 3.14; /* c */ x += 1.0;",
		"\"unterminated\nchar c = 'ab';",
		"#include <stdio.h>\nprintf(\"%d\\n\", 42);",
	}

	want := make([]*Result, len(inputs))
	for i, input := range inputs {
		want[i] = ScanString(input)
	}

	const rounds = 16
	var wg sync.WaitGroup
	for r := 0; r < rounds; r++ {
		for i, input := range inputs {
			wg.Add(1)
			go func(i int, input string) {
				defer wg.Done()
				got := ScanString(input)
				assert.Equal(t, want[i].Tokens, got.Tokens)
				assert.Equal(t, want[i].Symbols.Symbols(), got.Symbols.Symbols())
				assert.Equal(t, want[i].Errors, got.Errors)
			}(i, input)
		}
	}
	wg.Wait()
}

const demoProgram = `#include <stdio.h>
#define PI 3.14

int main() {
    // valid constructs
    char c = '\n';
    char empty_c = '';
    char s_empty[] = "";
    float x = 3.14;
    int y = 42;
    y += 5;
    if (x >= 2.0 && y != 0) {
        printf("value: %d\n", y);
    }
    // one of each lexical error:
    float e1 = 3,14;
    int 123abc = 10;
    char bad_char = 'ab';
    char unterm_c = 'a;
    char s[] = "no closing quote;
    a -> b;
    a ... b;
}
`

func TestScanDemoProgram(t *testing.T) {
	result := ScanString(demoProgram)

	require.Equal(t, EOF, result.Tokens[len(result.Tokens)-1].Kind)

	wantErrors := []struct {
		errType LexErrorType
		lexeme  string
	}{
		{CommaDecimal, "3,14"},
		{DigitIdentifier, "123abc"},
		{MultiCharLiteral, "'ab'"},
		{UnterminatedChar, "'a;"},
		{UnterminatedString, `"no closing quote;`},
	}
	require.Len(t, result.Errors, len(wantErrors))
	for i, want := range wantErrors {
		assert.Equal(t, want.errType, result.Errors[i].Type, "error %d type", i)
		assert.Equal(t, want.lexeme, result.Errors[i].Lexeme, "error %d lexeme", i)
	}

	wantSymbols := []Symbol{
		{Name: "main", ID: 1, Count: 1},
		{Name: "c", ID: 2, Count: 1},
		{Name: "empty_c", ID: 3, Count: 1},
		{Name: "s_empty", ID: 4, Count: 1},
		{Name: "x", ID: 5, Count: 2},
		{Name: "y", ID: 6, Count: 4},
		{Name: "printf", ID: 7, Count: 1},
		{Name: "e1", ID: 8, Count: 1},
		{Name: "bad_char", ID: 9, Count: 1},
		{Name: "unterm_c", ID: 10, Count: 1},
		{Name: "s", ID: 11, Count: 1},
		{Name: "a", ID: 12, Count: 2},
		{Name: "b", ID: 13, Count: 2},
	}
	assert.Equal(t, wantSymbols, result.Symbols.Symbols())

	var directives, keywords int
	for _, tk := range result.Tokens {
		switch tk.Kind {
		case PP_DIRECTIVE:
			directives++
		case KEYWORD:
			keywords++
		}
	}
	assert.Equal(t, 2, directives)
	assert.Equal(t, 12, keywords, "int x3, char x6, float x2, if")

	joined := strings.Join([]string{
		result.Tokens[0].Lexeme,
		result.Tokens[1].Lexeme,
	}, "|")
	assert.Equal(t, "#include <stdio.h>|#define PI 3.14", joined)
}
