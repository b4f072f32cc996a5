// Package normalize brings raw OCR text to a single canonical Unicode
// form before any pattern matching runs: NFC composition, legacy
// single-byte fallback decoding, mojibake repair, HTML entity decode,
// and whitespace collapsing.
package normalize

import (
	"html"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Normalizer holds the precompiled replacers used on every document.
type Normalizer struct {
	mojibake *strings.Replacer
	ws       *strings.Replacer
}

// New builds a Normalizer with its replacement tables compiled once.
func New() *Normalizer {
	return &Normalizer{
		mojibake: strings.NewReplacer(mojibakePairs()...),
		ws:       strings.NewReplacer("\xe2\x80\x8b", "", "\xe2\x80\x8c", "", "\xe2\x80\x8d", "", "\xef\xbb\xbf", "", "\r\n", "\n", "\r", "\n", "\t", " ", " ", " "),
	}
}

// Normalize returns text in canonical NFC form with mojibake, encoding
// artifacts, and HTML entities resolved. It is idempotent: normalizing
// already-normalized text returns it unchanged.
func (n *Normalizer) Normalize(text string) string {
	text = n.decodeIfInvalidUTF8(text)
	text = html.UnescapeString(text)
	text = html.UnescapeString(text) // double-encoded entities decode in one more pass
	text = n.mojibake.Replace(text)
	text = norm.NFC.String(text)
	text = n.ws.Replace(text)
	text = collapseBlankRuns(text)

	return text
}

// decodeIfInvalidUTF8 falls back to Windows-1252 decoding when the input
// is not valid UTF-8, which is the common failure mode for OCR output
// produced by tools that assume a legacy single-byte code page. If that
// decode fails, invalid bytes become replacement characters.
func (n *Normalizer) decodeIfInvalidUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	decoded, err := charmap.Windows1252.NewDecoder().String(text)
	if err != nil {
		return strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	return decoded
}

// collapseBlankRuns reduces runs of 3+ blank lines to exactly 2, and
// trims trailing spaces from every line, without touching intentional
// paragraph breaks.
func collapseBlankRuns(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0

	for _, line := range lines {
		trimmed := strings.TrimRight(line, " ")
		if trimmed == "" {
			blankRun++
			if blankRun > 2 {
				continue
			}
		} else {
			blankRun = 0
		}

		out = append(out, trimmed)
	}

	return strings.Join(out, "\n")
}

// mojibakePairs lists common UTF-8-decoded-as-Latin-1 artifacts seen in
// scanned text, each mapped back to its intended character.
func mojibakePairs() []string {
	return []string{
		"â€™", "'",
		"â€˜", "'",
		"â€œ", "\"",
		"â€", "\"",
		"â€“", "-",
		"â€”", "--",
		"â€¦", "...",
		"Â ", " ",
		"Ã©", "é",
		"Ã¨", "è",
		"Ã¼", "ü",
		"Ã¶", "ö",
		"Ã¤", "ä",
		"Ã±", "ñ",
		"Ã§", "ç",
		"Ã ", "à",
		"Ã¢", "â",
		"Ã»", "û",
		"Ã®", "î",
		"ï¿½", "",
	}
}
