package httpparse

import "github.com/intuitivelabs/bytescase"

// Character Classifier: pure predicates over single bytes, backed by
// static 256-entry tables. Grounded on the teacher's own low-level byte
// predicates (parse_tok.go's tokAllowedChar, parse_fline.go's digit checks)
// but reorganized as precomputed tables per the spec's "static 256-entry
// tables, read-only storage" design note, rather than per-call switches.

var tokenTable [256]bool  // RFC 7230 tchar
var urlCharTable [256]bool // printable ASCII except '?' and '#'
var hexTable [256]int8     // hex digit value, -1 if not a hex digit
var markTable [256]bool    // RFC 3986 "mark" characters
var userinfoTable [256]bool

func init() {
	// tchar = "!#$%&'*+-.^_`|~" / DIGIT / ALPHA
	const tcharExtra = "!#$%&'*+-.^_`|~"
	for c := 0; c < 256; c++ {
		if isAlphaByte(byte(c)) || isNumByte(byte(c)) {
			tokenTable[c] = true
		}
	}
	for i := 0; i < len(tcharExtra); i++ {
		tokenTable[tcharExtra[i]] = true
	}

	for c := 0x21; c <= 0x7e; c++ {
		urlCharTable[c] = true
	}
	// '?' and '#' delimit URL components; parseURLChar handles them itself
	urlCharTable['?'] = false
	urlCharTable['#'] = false

	for c := 0; c < 256; c++ {
		hexTable[c] = -1
	}
	for c := byte('0'); c <= '9'; c++ {
		hexTable[c] = int8(c - '0')
	}
	for c := byte('a'); c <= 'f'; c++ {
		hexTable[c] = int8(c-'a') + 10
	}
	for c := byte('A'); c <= 'F'; c++ {
		hexTable[c] = int8(c-'A') + 10
	}

	const marks = "-_.!~*'()"
	for i := 0; i < len(marks); i++ {
		markTable[marks[i]] = true
	}
	const userinfoExtra = ";:&=+$,"
	for c := 0; c < 256; c++ {
		if isAlphaByte(byte(c)) || isNumByte(byte(c)) || markTable[c] {
			userinfoTable[c] = true
		}
	}
	for i := 0; i < len(userinfoExtra); i++ {
		userinfoTable[userinfoExtra[i]] = true
	}
}

func isAlphaByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumByte(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool { return isAlphaByte(c) }

// isNum reports whether c is an ASCII digit.
func isNum(c byte) bool { return isNumByte(c) }

// isAlphaNum reports whether c is an ASCII letter or digit.
func isAlphaNum(c byte) bool { return isAlphaByte(c) || isNumByte(c) }

// isMark reports whether c is one of the RFC 3986 "mark" characters.
func isMark(c byte) bool { return markTable[c] }

// isUserinfoChar reports whether c is allowed inside the userinfo
// component of a URL authority (RFC 3986, plus the historical http_parser
// extensions: ";:&=+$,").
func isUserinfoChar(c byte) bool { return userinfoTable[c] }

// lower ASCII-folds c to lower case. It is only correct for ASCII letters;
// callers must not apply it to arbitrary bytes and expect round-tripping.
// Delegated to bytescase so the fold stays consistent with the rest of the
// HTTP-parsing ecosystem this parser was grounded on.
func lower(c byte) byte { return bytescase.ByteToLower(c) }

// unhex returns the value of the hex digit c, or -1 if c is not a hex
// digit.
func unhex(c byte) int8 { return hexTable[c] }

// token validates c as an RFC 7230 tchar and returns it folded to lower
// case (alphabetic characters only; other tchars are returned unchanged).
// In non-strict mode a literal space is also accepted and returned as-is,
// matching the historical tolerance for method tokens with embedded
// whitespace-like separators.
func token(strict bool, c byte) (byte, bool) {
	if !strict && c == ' ' {
		return c, true
	}
	if !tokenTable[c] {
		return 0, false
	}
	if isAlphaByte(c) {
		return lower(c), true
	}
	return c, true
}

// isURLChar reports whether c is an ordinary character of a URL path, query
// string or fragment. '?' and '#' are not included: they delimit those
// components and the URL sub-machine handles them explicitly. In non-strict
// mode, bytes with the high bit set (c >= 0x80) are also accepted, matching
// permissive real-world URL handling.
func isURLChar(strict bool, c byte) bool {
	if urlCharTable[c] {
		return true
	}
	return !strict && c&0x80 != 0
}
