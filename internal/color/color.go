// Package color parses hex color strings used in the UI configuration.
package color

import (
	"strings"
	"unicode"
)

// ARGB is a color with 8-bit channels.
type ARGB struct {
	A, R, G, B uint8
}

// Fallback is returned for strings that are not 3, 6 or 8 digits long.
var Fallback = ARGB{A: 1, R: 1, G: 1, B: 0}

// ParseHex parses "#RGB", "#RRGGBB" or "#AARRGGBB". Leading and trailing
// non-alphanumeric characters are trimmed first. Any other length yields
// Fallback; ParseHex never fails.
func ParseHex(s string) ARGB {
	hex := strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	v := scanHex(hex)

	switch len([]rune(hex)) {
	case 3:
		return ARGB{
			A: 255,
			R: uint8((v >> 8) * 17),
			G: uint8((v >> 4 & 0xF) * 17),
			B: uint8((v & 0xF) * 17),
		}
	case 6:
		return ARGB{A: 255, R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	case 8:
		return ARGB{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	default:
		return Fallback
	}
}

// scanHex reads the leading run of hex digits, after an optional 0x or 0X prefix,
// and stops at the first other character.
func scanHex(s string) uint64 {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	var v uint64
	for _, r := range s {
		var d uint64
		switch {
		case r >= '0' && r <= '9':
			d = uint64(r - '0')
		case r >= 'a' && r <= 'f':
			d = uint64(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = uint64(r-'A') + 10
		default:
			return v
		}
		v = v<<4 | d
	}
	return v
}
