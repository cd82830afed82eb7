/*
 * C-like Lexer - Position Tracking
 *
 * Line and column are pure functions of byte offset: line is one plus the
 * number of newlines before the offset, column is the distance from the
 * preceding newline. The scanner maintains the same values incrementally;
 * ComputeLineColumn is the from-scratch definition the incremental counters
 * must agree with, and is what tests cross-check against.
 */

package lexer

import "bytes"

// ComputeLineColumn calculates the 1-based line and column for a byte
// offset. Offsets up to and including len(src) are valid; len(src) is the
// position of the EOF token.
func ComputeLineColumn(src []byte, pos int) (line, column int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(src) {
		pos = len(src)
	}

	line = bytes.Count(src[:pos], []byte{'\n'}) + 1
	lastNL := bytes.LastIndexByte(src[:pos], '\n')
	if lastNL == -1 {
		return line, pos + 1
	}
	return line, pos - lastNL
}
