package parser

import (
	"strconv"
	"unsafe"
)

// This file implements the <number>[:<number>] token parsers.
//
// Both parsers share the same contract: scan from pos within [pos, end),
// skip leading blanks, and report how many numbers were found (0, 1, or 2)
// together with the new cursor position.
//
//   - 0: no number at the cursor. The cursor is returned unchanged so the
//     caller can decide between end-of-line and a malformed token.
//   - 1: a number with no ':' suffix, or a ':' whose second number is
//     missing or malformed. The cursor sits right after the first number.
//   - 2: a full pair. The cursor sits after the second number.

// parseFloatPair parses a float[:float] token, used for label[:weight].
func parseFloatPair(data []byte, pos, end int) (n int, a, b float64, next int) {
	start := pos
	for pos < end && isBlank(data[pos]) {
		pos++
	}
	a, next, ok := parseFloat(data, pos, end)
	if !ok {
		return 0, 0, 0, start
	}
	if next < end && data[next] == ':' {
		b, after, ok := parseFloat(data, next+1, end)
		if ok {
			return 2, a, b, after
		}
	}
	return 1, a, 0, next
}

// parseIndexPair parses an int:float token, used for index:value features.
// The index is an unsigned integer; fractional or signed text does not
// qualify, which surfaces as a 0- or 1-number result the caller skips.
func parseIndexPair(data []byte, pos, end int) (n int, index uint64, value float64, next int) {
	start := pos
	for pos < end && isBlank(data[pos]) {
		pos++
	}
	index, next, ok := parseUint(data, pos, end)
	if !ok {
		return 0, 0, 0, start
	}
	if next < end && data[next] == ':' {
		value, after, ok := parseFloat(data, next+1, end)
		if ok {
			return 2, index, value, after
		}
	}
	return 1, index, 0, next
}

// parseFloat scans a floating-point token at pos: optional sign, digits,
// optional fractional part, optional exponent. Returns the value, the
// position after the token, and whether a number was found at all.
//
// An 'e'/'E' with no digits after it is left unconsumed, so "3elephants"
// parses as 3 with the cursor on the 'e'.
func parseFloat(data []byte, pos, end int) (float64, int, bool) {
	start := pos
	if pos < end && (data[pos] == '+' || data[pos] == '-') {
		pos++
	}

	mark := pos
	for pos < end && isDigit(data[pos]) {
		pos++
	}
	digits := pos - mark

	if pos < end && data[pos] == '.' {
		mark = pos + 1
		pos = mark
		for pos < end && isDigit(data[pos]) {
			pos++
		}
		digits += pos - mark
	}
	if digits == 0 {
		return 0, start, false
	}

	if pos < end && (data[pos] == 'e' || data[pos] == 'E') {
		ep := pos + 1
		if ep < end && (data[ep] == '+' || data[ep] == '-') {
			ep++
		}
		mark = ep
		for ep < end && isDigit(data[ep]) {
			ep++
		}
		if ep > mark {
			pos = ep
		}
	}

	f, err := strconv.ParseFloat(unsafeString(data[start:pos]), 64)
	if err != nil {
		return 0, start, false
	}
	return f, pos, true
}

// parseUint scans an unsigned decimal integer at pos. Values that overflow
// uint64 are reported as not-a-number and the token gets skipped upstream.
func parseUint(data []byte, pos, end int) (uint64, int, bool) {
	start := pos
	for pos < end && isDigit(data[pos]) {
		pos++
	}
	if pos == start {
		return 0, start, false
	}
	u, err := strconv.ParseUint(unsafeString(data[start:pos]), 10, 64)
	if err != nil {
		return 0, start, false
	}
	return u, pos, true
}

// parseDigits consumes a run of decimal digits and returns its value, or 0
// when there are none. Used for the qid payload, which historically decoded
// with atoll semantics: missing digits read as zero, not as an error.
func parseDigits(data []byte, pos, end int) (uint64, int) {
	u, next, ok := parseUint(data, pos, end)
	if !ok {
		return 0, pos
	}
	return u, next
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// unsafeString converts a []byte to a string without allocation.
//
// The conversion shares the underlying byte array, so the slice must not be
// modified afterwards. The parsers only use it on subslices of the immutable
// input data, which keeps strconv calls allocation-free.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
