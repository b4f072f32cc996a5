// Package unwrap distinguishes cosmetic line breaks from paragraph
// boundaries and rejoins hyphen-broken words.
package unwrap

import (
	"strings"
	"unicode"
)

// DictionaryLookup reports whether word is a recognized word in any
// loaded dictionary. A dictionary hit only ever confirms a hyphen join
// already licensed by the lowercase-continuation rule — it never blocks
// a join the rule would otherwise allow.
type DictionaryLookup func(word string) bool

// Result reports what the unwrapper did to a document.
type Result struct {
	Text              string
	LinesJoined       int
	WordsDehyphenated int
	SpacesNormalized  int
}

// Unwrapper joins cosmetic line breaks.
type Unwrapper struct {
	lookup DictionaryLookup
}

// New builds an Unwrapper. lookup may be nil, in which case dictionary
// confirmation is simply skipped.
func New(lookup DictionaryLookup) *Unwrapper {
	return &Unwrapper{lookup: lookup}
}

// Unwrap applies the three-rule algorithm to every line boundary in
// text, in order: hyphen-join, paragraph-boundary preservation, then
// cosmetic-break collapse.
func (u *Unwrapper) Unwrap(text string) Result {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return Result{Text: text}
	}

	var (
		builder           strings.Builder
		linesJoined       int
		wordsDehyphenated int
		spacesNormalized  int
	)

	builder.WriteString(lines[0])

	for i := 1; i < len(lines); i++ {
		prev := lines[i-1]
		cur := lines[i]

		switch {
		case endsWithHyphenJoin(prev, cur):
			joined := strings.TrimSuffix(builder.String(), "-")
			builder.Reset()
			builder.WriteString(joined)
			builder.WriteString(cur)
			linesJoined++
			wordsDehyphenated++
		case isParagraphBoundary(prev):
			builder.WriteString("\n")
			builder.WriteString(cur)
		default:
			builder.WriteString(" ")
			builder.WriteString(cur)
			linesJoined++
			spacesNormalized++
		}
	}

	return Result{
		Text:              builder.String(),
		LinesJoined:       linesJoined,
		WordsDehyphenated: wordsDehyphenated,
		SpacesNormalized:  spacesNormalized,
	}
}

// endsWithHyphenJoin reports whether prev/cur form a hyphen-broken word
// that should be rejoined: prev ends in a hyphen, cur starts with a
// lowercase letter, and the fragment before the hyphen is not itself
// capitalized (proper-noun compounds like "Anglo-\nSaxon" are left
// alone).
func endsWithHyphenJoin(prev, cur string) bool {
	trimmedPrev := strings.TrimRight(prev, " \t")
	if !strings.HasSuffix(trimmedPrev, "-") {
		return false
	}

	fragment := strings.TrimSuffix(trimmedPrev, "-")

	word := lastWord(fragment)
	if word != "" && unicode.IsUpper([]rune(word)[0]) {
		return false
	}

	trimmedCur := strings.TrimLeft(cur, " \t")
	if trimmedCur == "" {
		return false
	}

	firstRune := []rune(trimmedCur)[0]

	return unicode.IsLower(firstRune)
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return fields[len(fields)-1]
}

// isParagraphBoundary reports whether line ends in sentence-terminating
// punctuation, or is blank, and so its trailing newline is semantic and
// must be preserved.
func isParagraphBoundary(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		return true
	}

	last := []rune(trimmed)
	r := last[len(last)-1]

	switch r {
	case '.', '!', '?', '"', '”':
		return true
	default:
		return false
	}
}

// ConfirmedByDictionary reports whether a just-joined word is further
// confirmed by a loaded dictionary. Exposed for callers (and tests)
// that want to record confirmation without it gating the join itself.
func (u *Unwrapper) ConfirmedByDictionary(word string) bool {
	if u.lookup == nil {
		return false
	}

	return u.lookup(strings.ToLower(word))
}
