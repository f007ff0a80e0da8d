// Package entities contains domain entities used across the application.
package entities

import "strings"

// regionalIndicatorA is the code point of REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorA = 0x1F1E6

// Country is a quiz subject: the player is asked to pick its flag.
// Countries are immutable once loaded from the catalog.
type Country struct {
	Name string `json:"name"` // unique display name, e.g. "Austria"
	Code string `json:"code"` // ISO 3166-1 alpha-2 code, e.g. "AT"
}

// Flag returns the flag emoji built from the country's alpha-2 code.
// An invalid code yields a white flag.
func (c Country) Flag() string {
	code := strings.ToUpper(c.Code)
	if len(code) != 2 {
		return "🏳"
	}

	var sb strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "🏳"
		}
		sb.WriteRune(rune(regionalIndicatorA + (r - 'A')))
	}

	return sb.String()
}
