// Package lang provides a lightweight stopword-frequency language
// detector. No third-party language-identification library exists
// anywhere in the reference corpus, so this is implemented directly
// against the standard library; see DESIGN.md for the grounding note.
package lang

import (
	"sort"
	"strings"
)

// sampleCap bounds how much of a document is scanned for stopwords,
// keeping detection cost flat regardless of document size.
const sampleCap = 10000

// minSampleChars is the shortest trimmed sample the detector will try
// to classify. Below this length there simply is not enough signal for
// a stopword-frequency heuristic to say anything meaningful, so the
// detector falls back to the spec's conservative default: assume
// English, since the corpus is pre-filtered to English sources.
const minSampleChars = 50

// DefaultConfidence is the minimum share of all stopword hits that the
// winning language must hold to accept a detection.
const DefaultConfidence = 0.5

// Result is the outcome of a single detection.
type Result struct {
	Language   string
	Confidence float64
	Scores     map[string]int
}

// Detector scores text against per-language stopword sets.
type Detector struct {
	stopwords map[string]map[string]struct{}
}

// New builds a Detector over the given language code to stopword-list
// mapping. Languages with an empty stopword list are ignored.
func New(stopwordLists map[string][]string) *Detector {
	d := &Detector{stopwords: make(map[string]map[string]struct{}, len(stopwordLists))}

	for langCode, words := range stopwordLists {
		if len(words) == 0 {
			continue
		}

		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[strings.ToLower(w)] = struct{}{}
		}

		d.stopwords[langCode] = set
	}

	return d
}

// Detect scores up to sampleCap characters of text against every
// configured language and returns the best match. Confidence is the
// winning language's hit count divided by the total stopword hits
// across all languages. A sample shorter than minSampleChars is
// assumed English per the conservative default; a longer sample with
// no stopword hits at all yields confidence 0 and language "und"
// (undetermined).
func (d *Detector) Detect(text string) Result {
	sample := text
	if len(sample) > sampleCap {
		sample = sample[:sampleCap]
	}

	if len(strings.TrimSpace(sample)) < minSampleChars {
		return Result{Language: "en", Confidence: 1, Scores: nil}
	}

	tokens := strings.Fields(sample)
	scores := make(map[string]int, len(d.stopwords))

	for _, tok := range tokens {
		word := strings.ToLower(strings.Trim(tok, ".,;:!?\"'()[]"))
		if word == "" {
			continue
		}

		for langCode, set := range d.stopwords {
			if _, ok := set[word]; ok {
				scores[langCode]++
			}
		}
	}

	total := 0
	for _, c := range scores {
		total += c
	}

	if total == 0 {
		return Result{Language: "und", Confidence: 0, Scores: scores}
	}

	best, bestScore := bestLanguage(scores)
	confidence := float64(bestScore) / float64(total)

	return Result{Language: best, Confidence: confidence, Scores: scores}
}

// IsEnglish reports whether Detect's result is English at or above the
// given confidence threshold.
func (d *Detector) IsEnglish(text string, minConfidence float64) bool {
	res := d.Detect(text)

	return res.Language == "en" && res.Confidence >= minConfidence
}

func bestLanguage(scores map[string]int) (string, int) {
	langCodes := make([]string, 0, len(scores))
	for langCode := range scores {
		langCodes = append(langCodes, langCode)
	}

	sort.Strings(langCodes) // deterministic tie-break

	best, bestScore := "und", 0

	for _, langCode := range langCodes {
		if scores[langCode] > bestScore {
			best, bestScore = langCode, scores[langCode]
		}
	}

	return best, bestScore
}

// DefaultStopwords returns a small built-in stopword table for English,
// German, French, and Latin, sufficient for coarse triage decisions.
func DefaultStopwords() map[string][]string {
	return map[string][]string{
		"en": {
			"the", "and", "of", "to", "a", "in", "is", "that", "it", "was",
			"for", "on", "are", "as", "with", "his", "they", "at", "be", "this",
			"have", "from", "or", "one", "had", "by", "word", "but", "not", "what",
		},
		"de": {
			"der", "die", "und", "das", "ist", "zu", "den", "dem", "nicht", "mit",
			"sich", "des", "auf", "für", "ist", "im", "dass", "ein", "eine", "als",
		},
		"fr": {
			"le", "la", "les", "de", "et", "des", "un", "une", "est", "que",
			"qui", "dans", "pour", "pas", "sur", "au", "avec", "ce", "il", "elle",
		},
		"la": {
			"et", "in", "est", "non", "ad", "sed", "qui", "quod", "ut", "cum",
			"ex", "per", "de", "si", "sunt", "esse", "hoc", "nec", "vel", "atque",
		},
	}
}
