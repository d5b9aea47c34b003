// Package textutil provides the ASCII and UTF-8 string primitives used by
// the table renderer and the prefix search.
//
// The UTF-8 helpers deliberately classify code points by leading byte
// instead of delegating to a full decoder: the renderer only needs visual
// width in code points and boundary-safe truncation, never validation or
// normalization.
package textutil

import "strings"

// Ellipsis is appended when a cell is truncated to fit its column.
// U+2026, three bytes in UTF-8.
const Ellipsis = "…"

// asciiSpace matches the classic C isspace set.
const asciiSpace = " \t\n\v\f\r"

// Trim removes leading and trailing ASCII whitespace.
func Trim(s string) string {
	return strings.Trim(s, asciiSpace)
}

// ToASCIILower maps A-Z to a-z and leaves every other byte untouched,
// multi-byte sequences included.
func ToASCIILower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b.WriteByte(lowerByte(s[i]))
	}
	return b.String()
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// HasPrefixFold reports whether text starts with prefix, comparing byte by
// byte after ASCII-lowercasing each side. Non-ASCII bytes compare by raw
// value. The empty prefix matches everything.
func HasPrefixFold(text, prefix string) bool {
	if len(prefix) > len(text) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lowerByte(text[i]) != lowerByte(prefix[i]) {
			return false
		}
	}
	return true
}

// codePointBytes returns the byte length of the code point starting at the
// given leading byte. Invalid leading bytes count as a single isolated byte
// rather than failing; the caller is measuring width, not validating.
func codePointBytes(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// VisualLength counts the Unicode code points in s by scanning leading
// bytes. Matches utf8.RuneCountInString on well-formed input.
func VisualLength(s string) int {
	count := 0
	for i := 0; i < len(s); {
		i += codePointBytes(s[i])
		count++
	}
	return count
}

// truncate returns the prefix of s holding at most n code points, never
// splitting a multi-byte sequence.
func truncate(s string, n int) string {
	i := 0
	for cps := 0; i < len(s) && cps < n; cps++ {
		i += codePointBytes(s[i])
	}
	if i > len(s) {
		i = len(s)
	}
	return s[:i]
}

// Pad renders s at exactly width code points of visual width. Shorter
// strings are right-padded with spaces; longer ones keep their first
// width-1 code points followed by an ellipsis. A width of zero yields the
// empty string: the output never exceeds the requested width.
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	vis := VisualLength(s)
	switch {
	case vis == width:
		return s
	case vis < width:
		return s + strings.Repeat(" ", width-vis)
	default:
		return truncate(s, width-1) + Ellipsis
	}
}
