package rendering

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// typographic maps characters outside Latin-1 that users commonly paste into
// plain equivalents the core PDF fonts can draw.
var typographic = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'", "\u201a", ",",
	"\u201c", `"`, "\u201d", `"`, "\u201e", `"`,
	"\u2013", "-", "\u2014", "-", "\u2212", "-",
	"\u2026", "...", "\u2022", "*",
	"\u202f", " ", "\u200b", "",
)

// cp1252Letters lie outside Latin-1 but the core fonts' cp1252 encoding draws them.
const cp1252Letters = "ŒœŠšŽžŸƒ"

// baseLetters covers letters that have no canonical decomposition.
var baseLetters = map[rune]string{
	'Ł': "L", 'ł': "l", 'Đ': "D", 'đ': "d", 'Ħ': "H", 'ħ': "h", 'ı': "i", 'ŀ': "l", 'Ŀ': "L",
}

// SanitizeText makes text drawable with the core fonts. Typographic punctuation
// becomes ASCII, line breaks and tabs become spaces and other control characters
// are dropped. Accented letters outside the font encoding lose their accent;
// anything else outside Latin-1 becomes '?'.
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}
	text = typographic.Replace(text)

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			result.WriteByte(' ')
		case unicode.IsControl(r):
			// dropped
		case r > unicode.MaxLatin1:
			result.WriteString(foldLetter(r))
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// foldLetter maps r to its unaccented base letter when there is one.
func foldLetter(r rune) string {
	if strings.ContainsRune(cp1252Letters, r) {
		return string(r)
	}
	if base, ok := baseLetters[r]; ok {
		return base
	}
	if d := []rune(norm.NFD.String(string(r))); len(d) > 1 && d[0] <= unicode.MaxLatin1 && unicode.IsLetter(d[0]) {
		return string(d[0])
	}
	return "?"
}
