/*
 * C-like Lexer - Character Classification
 *
 * Byte classification via a precomputed lookup table instead of per-call
 * range checks. Identifier characters follow the C identifier grammar
 * ([A-Za-z_] start, [A-Za-z0-9_] continue). Only space and tab count as
 * skippable horizontal whitespace; newline is tracked separately for
 * position accounting and every other byte falls through to the scanner's
 * mismatch handling.
 */

package lexer

// CharClass represents character classification flags using bit fields.
type CharClass uint8

const (
	ClassDigit      CharClass = 1 << iota // 0-9
	ClassIdentStart                       // a-z, A-Z, _
	ClassIdentCont                        // a-z, A-Z, 0-9, _
	ClassSpace                            // space, tab
	ClassOperator                         // bytes that can begin an operator
	ClassDelimiter                        // ( ) { } [ ] ; , .
)

// charClassTable holds the classification flags for all 256 byte values.
var charClassTable [256]CharClass

func init() {
	for b := byte('0'); b <= '9'; b++ {
		charClassTable[b] |= ClassDigit | ClassIdentCont
	}
	for b := byte('a'); b <= 'z'; b++ {
		charClassTable[b] |= ClassIdentStart | ClassIdentCont
	}
	for b := byte('A'); b <= 'Z'; b++ {
		charClassTable[b] |= ClassIdentStart | ClassIdentCont
	}
	charClassTable['_'] |= ClassIdentStart | ClassIdentCont

	charClassTable[' '] |= ClassSpace
	charClassTable['\t'] |= ClassSpace

	for _, b := range []byte("+-*/%<>=!&|^~?:") {
		charClassTable[b] |= ClassOperator
	}
	for _, b := range []byte("()[]{};,.") {
		charClassTable[b] |= ClassDelimiter
	}
}

// IsDigit checks if a byte is a decimal digit (0-9).
func IsDigit(b byte) bool {
	return charClassTable[b]&ClassDigit != 0
}

// IsIdentStart checks if a byte can start an identifier.
func IsIdentStart(b byte) bool {
	return charClassTable[b]&ClassIdentStart != 0
}

// IsIdentCont checks if a byte can continue an identifier.
func IsIdentCont(b byte) bool {
	return charClassTable[b]&ClassIdentCont != 0
}

// IsSpace checks if a byte is skippable horizontal whitespace (space, tab).
// Newline is deliberately excluded; carriage return is not whitespace at all
// in this grammar.
func IsSpace(b byte) bool {
	return charClassTable[b]&ClassSpace != 0
}

// IsOperatorChar checks if a byte can begin an operator.
func IsOperatorChar(b byte) bool {
	return charClassTable[b]&ClassOperator != 0
}

// IsDelimiterChar checks if a byte is a delimiter.
func IsDelimiterChar(b byte) bool {
	return charClassTable[b]&ClassDelimiter != 0
}

// GetCharClass returns the classification flags for a byte.
func GetCharClass(b byte) CharClass {
	return charClassTable[b]
}

// HasCharClass checks if a byte has any of the given classification flags.
func HasCharClass(b byte, class CharClass) bool {
	return charClassTable[b]&class != 0
}
