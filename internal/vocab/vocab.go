// Package vocab is the second-pass vocabulary extractor: it tokenizes
// cleaned documents, classifies suspicious tokens for human review, and
// reads/writes the pipe-separated vocabulary-candidates file that both
// the extractor and the noise-word stripper (internal/noise) consume.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/book-expert/ocr-clean/internal/dictionary"
)

// Code is the single-letter suspicion category assigned to a token.
type Code string

const (
	Garbage    Code = "G"
	Repeated   Code = "R"
	MixedCase  Code = "M"
	Confusable Code = "C"
	Fragment   Code = "F"
	Modern     Code = "X"
)

// wordPattern mirrors the reference extractor's WORD_PATTERN: letters
// with internal apostrophes allowed, single letters permitted.
var wordPattern = regexp.MustCompile(`\b([a-zA-Z][a-zA-Z']*[a-zA-Z]|[a-zA-Z])\b`)

// suspicionRules are tried in order; the first match wins, matching
// §4.8's "first matching rule" classification contract.
var suspicionRules = []struct {
	code Code
	re   *regexp.Regexp
}{
	{Garbage, regexp.MustCompile(`[a-z][A-Z]`)},       // camelCase transition
	{Repeated, regexp.MustCompile(repeatedCharPattern())}, // same char 3+ in a row
	{Garbage, regexp.MustCompile(`(?i)[^aeiou]{4,}`)}, // 4+ consonants, no vowel
	{MixedCase, mixedCaseRe},                          // mid-word case change
	{Confusable, regexp.MustCompile(`[il1|]{3,}`)},    // l/1/|/i confusion
	{Confusable, regexp.MustCompile(`[rnm]{4,}`)},     // rn/m confusion
}

// repeatedCharPattern builds the RE2-compatible equivalent of the
// backreference `(?i)(.)\1\1` (same char 3+ in a row), since Go's
// regexp package does not support backreferences.
func repeatedCharPattern() string {
	var b strings.Builder

	b.WriteString("(?i)(")

	for c := 'a'; c <= 'z'; c++ {
		if c != 'a' {
			b.WriteByte('|')
		}

		b.WriteRune(c)
		b.WriteRune(c)
		b.WriteRune(c)
	}

	b.WriteString(")")

	return b.String()
}

// mixedCaseRe flags mid-word case changes beyond the first letter, e.g.
// "wOrd" or "WoRD" — distinct from the leading-capital that every
// proper noun legitimately has.
var mixedCaseRe = regexp.MustCompile(`^.[a-z]+[A-Z]|^.[A-Z]+[a-z]|^.[A-Z]*[a-z].*[A-Z]`)

// fragmentSuffixes and fragmentPrefixes are the "known orphan
// suffix/prefix set" that licenses an F (fragment) classification for
// very short tokens, rather than every 1-3 letter word being flagged.
var fragmentSuffixes = map[string]struct{}{
	"ed": {}, "er": {}, "ly": {}, "ing": {}, "th": {},
}

var fragmentPrefixes = map[string]struct{}{
	"un": {}, "re": {}, "de": {}, "in": {},
}

// modernVocab is the small anachronism word list used by the X
// classification, distinct from the line-scoped internal/anachronism
// pattern pass, which operates on whole matches rather than tokens.
var modernVocab = map[string]struct{}{
	"google": {}, "internet": {}, "website": {}, "email": {},
	"online": {}, "smartphone": {}, "wifi": {}, "blog": {},
}

// skipPatterns are structurally legitimate forms that must never be
// flagged: valid Roman numerals, Mc/Mac surname prefixes, and -ville
// place names.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`),
	regexp.MustCompile(`^Ma?c[A-Z][a-z]+$`),
	regexp.MustCompile(`^[A-Z][a-z]+ville$`),
}

// skipWords are common function words too frequent to be interesting
// vocabulary candidates.
var skipWords = buildSkipWords()

func buildSkipWords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
		"by", "from", "as", "is", "was", "are", "were", "been", "be", "have", "has", "had",
		"do", "does", "did", "will", "would", "could", "should", "may", "might", "must",
		"shall", "can", "need", "this", "that", "these", "those", "it", "its", "he", "she",
		"they", "him", "her", "them", "his", "their", "my", "your", "our", "who", "which",
		"what", "where", "when", "why", "how", "all", "each", "every", "both", "few", "more",
		"most", "other", "some", "such", "no", "not", "only", "same", "so", "than", "too",
		"very", "just", "also", "now", "i", "you", "we", "me", "us",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return set
}

// WordInfo is the per-unique-token accumulation the extractor produces,
// collapsed by lowercase form.
type WordInfo struct {
	Word             string
	WordLower        string
	Frequency        int
	IsCapitalized    bool
	IsSuspicious     bool
	SuspiciousReason Code
	Context          string
}

// Extractor tokenizes and classifies documents. It holds no mutable
// state beyond its read-only configuration and is safe for concurrent
// use across worker goroutines.
type Extractor struct {
	contextChars int
	whitelist    map[string]struct{}
	dict         *dictionary.Service
}

// New builds an Extractor. whitelist and dict may both be nil: an
// unconfigured whitelist suppresses nothing, and a nil dictionary
// service never clears a suspicious token.
func New(contextChars int, whitelist map[string]struct{}, dict *dictionary.Service) *Extractor {
	if contextChars <= 0 {
		contextChars = 60
	}

	return &Extractor{contextChars: contextChars, whitelist: whitelist, dict: dict}
}

// Extract tokenizes text and returns the total (non-skip-word) token
// count along with a map of unique lowercase word to its accumulated
// WordInfo. Whitelisted and dictionary-cleared tokens are excluded
// from the returned map entirely, per §4.8 and the whitelist/dictionary-
// clearing testable properties of §8.
func (e *Extractor) Extract(text string) (int, map[string]*WordInfo) {
	words := make(map[string]*WordInfo)
	total := 0

	for _, loc := range wordPattern.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		if utf8.RuneCountInString(word) < 2 {
			continue
		}

		lower := strings.ToLower(word)
		if _, skip := skipWords[lower]; skip {
			continue
		}

		if e.whitelisted(lower) {
			continue
		}

		total++

		isCap := startsUpper(word)

		info, seen := words[lower]
		if !seen {
			code, suspicious := e.classify(word)
			words[lower] = &WordInfo{
				Word:             word,
				WordLower:        lower,
				Frequency:        1,
				IsCapitalized:    isCap,
				IsSuspicious:     suspicious,
				SuspiciousReason: code,
				Context:          extractContext(text, loc[0], loc[1], e.contextChars),
			}

			continue
		}

		info.Frequency++

		if isCap {
			info.IsCapitalized = true

			if !startsUpper(info.Word) {
				info.Word = word
			}
		}
	}

	if e.dict != nil && e.dict.Loaded() {
		for lower, info := range words {
			if info.IsSuspicious && e.dict.IsKnownWord(lower) {
				delete(words, lower)
			}
		}
	}

	return total, words
}

func (e *Extractor) whitelisted(lower string) bool {
	if e.whitelist == nil {
		return false
	}

	_, ok := e.whitelist[lower]

	return ok
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)

	return unicode.IsUpper(r)
}

// classify applies the skip patterns, then the ordered suspicion
// rules (garbage, repeated, mixed-case, confusable), then fragment and
// modern-vocabulary checks. The first matching rule wins.
func (e *Extractor) classify(word string) (Code, bool) {
	for _, re := range skipPatterns {
		if re.MatchString(word) {
			return "", false
		}
	}

	for _, rule := range suspicionRules {
		if rule.re.MatchString(word) {
			return rule.code, true
		}
	}

	if isFragment(word) {
		return Fragment, true
	}

	if _, modern := modernVocab[strings.ToLower(word)]; modern {
		return Modern, true
	}

	return "", false
}

// isFragment flags short tokens (≤3 letters) that match a known orphan
// affix, the structural leftovers of a dehyphenation or OCR split gone
// wrong.
func isFragment(word string) bool {
	if utf8.RuneCountInString(word) > 3 {
		return false
	}

	lower := strings.ToLower(word)

	if _, ok := fragmentSuffixes[lower]; ok {
		return true
	}

	if _, ok := fragmentPrefixes[lower]; ok {
		return true
	}

	return false
}

// extractContext returns up to contextChars of text on either side of
// [start,end), UTF-8 safe and expanded outward to the nearest word
// boundary, mirroring the reference extract_context algorithm exactly:
// a byte-offset window is first clamped to a valid rune boundary, then
// grown to consume any adjacent alphanumeric run so a context window
// never starts or ends mid-word.
func extractContext(text string, start, end, contextChars int) string {
	textLen := len(text)

	ctxStart := start - contextChars
	if ctxStart < 0 {
		ctxStart = 0
	}

	for ctxStart < textLen && !isRuneBoundary(text, ctxStart) {
		ctxStart++
	}

	for ctxStart > 0 && isRuneBoundary(text, ctxStart-1) && isAlnumByte(text[ctxStart-1]) {
		ctxStart--
	}

	ctxEnd := end + contextChars
	if ctxEnd > textLen {
		ctxEnd = textLen
	}

	for ctxEnd < textLen && !isRuneBoundary(text, ctxEnd) {
		ctxEnd++
	}

	for ctxEnd < textLen && isAlnumByte(text[ctxEnd]) {
		ctxEnd++
	}

	if ctxStart >= ctxEnd || ctxStart >= textLen {
		return ""
	}

	var b strings.Builder
	if ctxStart > 0 {
		b.WriteString("...")
	}

	b.WriteString(text[ctxStart:ctxEnd])

	if ctxEnd < textLen {
		b.WriteString("...")
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func isRuneBoundary(text string, i int) bool {
	if i == 0 || i == len(text) {
		return true
	}

	return utf8.RuneStart(text[i])
}

func isAlnumByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// ExtractBatch runs Extract over every file in paths, bounded by
// concurrency goroutines via golang.org/x/sync/errgroup, and folds all
// results into one global lowercase-word map. This is a distinct,
// read-only concurrency primitive from the channel-based pool in
// internal/pipeline: there is no write-then-rename discipline to
// coordinate here, only a fan-out-then-merge reduction.
func (e *Extractor) ExtractBatch(paths []string, concurrency int) (int, map[string]*WordInfo, error) {
	if concurrency <= 0 {
		concurrency = 8
	}

	type partial struct {
		total int
		words map[string]*WordInfo
	}

	partials := make([]partial, len(paths))

	group := new(errgroup.Group)
	group.SetLimit(concurrency)

	for i, path := range paths {
		i, path := i, path

		group.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			total, words := e.Extract(string(data))
			partials[i] = partial{total: total, words: words}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, nil, err
	}

	merged := make(map[string]*WordInfo)
	grandTotal := 0

	for _, p := range partials {
		grandTotal += p.total

		for lower, info := range p.words {
			existing, ok := merged[lower]
			if !ok {
				clone := *info
				merged[lower] = &clone

				continue
			}

			existing.Frequency += info.Frequency

			if info.IsCapitalized {
				existing.IsCapitalized = true

				if !startsUpper(existing.Word) {
					existing.Word = info.Word
				}
			}
		}
	}

	return grandTotal, merged, nil
}

// WriteCandidates writes words to path in the pipe-separated
// vocabulary-candidates format of §6: "FREQ | FLAGS | CAT | WORD |
// CONTEXT", one record per line, sorted by descending frequency then
// lowercase word for deterministic output.
func WriteCandidates(path string, words map[string]*WordInfo) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	ordered := make([]*WordInfo, 0, len(words))
	for _, info := range words {
		ordered = append(ordered, info)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Frequency != ordered[j].Frequency {
			return ordered[i].Frequency > ordered[j].Frequency
		}

		return ordered[i].WordLower < ordered[j].WordLower
	})

	for _, info := range ordered {
		flags := ""
		if info.IsCapitalized {
			flags = "C"
		}

		if _, err := fmt.Fprintf(
			writer, "%d | %s | %s | %s | %s\n",
			info.Frequency, flags, info.SuspiciousReason, info.Word, info.Context,
		); err != nil {
			return fmt.Errorf("write candidate %q: %w", info.Word, err)
		}
	}

	return writer.Flush()
}

// Candidate is one parsed line of a vocabulary-candidates file.
type Candidate struct {
	Frequency int
	Flags     string
	Category  string
	Word      string
	Context   string
}

// ReadCandidates parses a pipe-separated vocabulary-candidates file,
// skipping blank lines and "#" comments. Malformed lines (wrong field
// count) are skipped rather than failing the whole read, since this
// file is hand-edited by reviewers between pipeline runs.
func ReadCandidates(path string) ([]Candidate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var candidates []Candidate

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, "|", 5)
		if len(fields) < 4 {
			continue
		}

		freq, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}

		cand := Candidate{
			Frequency: freq,
			Flags:     strings.TrimSpace(fields[1]),
			Category:  strings.TrimSpace(fields[2]),
			Word:      strings.TrimSpace(fields[3]),
		}

		if len(fields) == 5 {
			cand.Context = strings.TrimSpace(fields[4])
		}

		candidates = append(candidates, cand)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	return candidates, nil
}

// InitWhitelist loads a newline-separated whitelist file (a
// "known_vocab.txt"-style file, one token per line, "#" comments
// allowed) into a lowercase set suitable for passing to New.
func InitWhitelist(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open whitelist %s: %w", path, err)
	}
	defer file.Close()

	set := make(map[string]struct{})

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		set[strings.ToLower(line)] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan whitelist %s: %w", path, err)
	}

	return set, nil
}
