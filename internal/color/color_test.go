package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ARGB
	}{
		{"six digits", "0a7296", ARGB{255, 0x0a, 0x72, 0x96}},
		{"six digits with hash", "#88e319", ARGB{255, 0x88, 0xe3, 0x19}},
		{"upper case", "#88E319", ARGB{255, 0x88, 0xe3, 0x19}},
		{"three digits", "#fa0", ARGB{255, 0xff, 0xaa, 0x00}},
		{"eight digits", "80034dad", ARGB{0x80, 0x03, 0x4d, 0xad}},
		{"surrounding punctuation", "  (#034dad);", ARGB{255, 0x03, 0x4d, 0xad}},
		{"empty", "", Fallback},
		{"two digits", "ab", Fallback},
		{"seven digits", "#1234567", Fallback},
		{"inner separator stops scan", "0a-72-96", ARGB{0, 0, 0, 0x0a}},
		{"non-hex letter stops scan", "12g", ARGB{255, 0x00, 0x11, 0x22}},
		{"no hex digits", "zzzzzz", ARGB{255, 0, 0, 0}},
		{"0x prefix", "0x1234", ARGB{255, 0x00, 0x12, 0x34}},
		{"upper case 0X prefix", "#0XFA0B", ARGB{255, 0x00, 0xfa, 0x0b}},
		{"prefix counts toward length", "0x1", ARGB{255, 0x00, 0x00, 0x11}},
		{"prefixed eight digits are ten long", "0x80034dad", Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHex(tt.in))
		})
	}
}

func TestSquare(t *testing.T) {
	assert.Equal(t, "🟩", Square(ParseHex("#88e319")))
	assert.Equal(t, "🟦", Square(ParseHex("034dad")))
	assert.Equal(t, "🟥", Square(ParseHex("#e02030")))
	assert.Equal(t, "⬜", Square(ParseHex("#ffffff")))
	assert.Equal(t, "⬜", Square(Fallback))
}
