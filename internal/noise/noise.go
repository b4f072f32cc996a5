// Package noise strips a user-supplied set of lowercase noise tokens
// from cleaned text. The set is loaded once from a vocabulary-
// candidates file (§6) and filtered to a requested set of suspicion
// categories, defaulting to {G, R} — garbage and repeated-character
// tokens, the pure-noise categories that degrade downstream language-
// model training.
package noise

import (
	"regexp"
	"strings"

	"github.com/book-expert/ocr-clean/internal/vocab"
)

// DefaultCategories is the spec-mandated default filter: garbage and
// repeated-character tokens only.
var DefaultCategories = []string{"G", "R"}

// wordBoundaryPattern identifies tokens the same way the vocabulary
// extractor does, so a noise word is only ever stripped as a whole
// token, never as a substring of a longer legitimate word.
var wordBoundaryPattern = regexp.MustCompile(`\b([a-zA-Z][a-zA-Z']*[a-zA-Z]|[a-zA-Z])\b`)

var multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)

// Set is the process-wide, read-only noise-word set.
type Set struct {
	words map[string]struct{}
}

// Load reads a vocabulary-candidates file and builds a Set from every
// entry whose category is in categories (case-insensitive). A nil or
// empty categories slice falls back to DefaultCategories.
func Load(path string, categories []string) (*Set, error) {
	candidates, err := vocab.ReadCandidates(path)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		categories = DefaultCategories
	}

	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		wanted[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}

	words := make(map[string]struct{})

	for _, cand := range candidates {
		if _, ok := wanted[strings.ToUpper(cand.Category)]; !ok {
			continue
		}

		if cand.Word == "" {
			continue
		}

		words[strings.ToLower(cand.Word)] = struct{}{}
	}

	return &Set{words: words}, nil
}

// Len reports how many distinct noise words are loaded.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.words)
}

// Strip replaces every token in text that matches the noise set with a
// single space. When anything was removed, runs of spaces and tabs are
// collapsed to one space and trailing spaces are trimmed on every line,
// preserving line structure (newlines are never touched by the
// collapse).
func (s *Set) Strip(text string) (string, int) {
	if s == nil || len(s.words) == 0 {
		return text, 0
	}

	removed := 0

	stripped := wordBoundaryPattern.ReplaceAllStringFunc(text, func(tok string) string {
		if _, ok := s.words[strings.ToLower(tok)]; ok {
			removed++

			return " "
		}

		return tok
	})

	if removed == 0 {
		return text, 0
	}

	lines := strings.Split(stripped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(multiSpaceRe.ReplaceAllString(line, " "), " ")
	}

	return strings.Join(lines, "\n"), removed
}
