// Package boilerplate strips digitization headers, footers, and
// watermarks inserted by Google Books, the Internet Archive,
// HathiTrust, JSTOR, and Project Gutenberg.
package boilerplate

import (
	"regexp"
	"strings"
	"sync"
)

// Category labels which digitization source a stripped region came from.
type Category string

const (
	CategoryGoogleBooks Category = "google_books"
	CategoryIA          Category = "internet_archive"
	CategoryHathiTrust  Category = "hathitrust"
	CategoryJSTOR       Category = "jstor"
	CategoryGutenberg   Category = "gutenberg"
	CategoryLibrary     Category = "library_stamp"
	CategoryGeneric     Category = "generic_digitized"
)

// Location bounds where in the document a pattern is allowed to match,
// mirroring the reference implementation's start/end slice restriction.
type Location int

const (
	LocationAnywhere Location = iota
	LocationStart
	LocationEnd
)

// Kind distinguishes the two matching strategies a pattern can use.
type Kind int

const (
	// KindBlock matches a start marker and consumes through a matching
	// end marker.
	KindBlock Kind = iota
	// KindFootprint matches a single line and additionally consumes a
	// fixed number of neighbouring lines.
	KindFootprint
)

// patternDef is the static, authored description of one boilerplate
// pattern.
type patternDef struct {
	Category Category
	Name     string
	Kind     Kind
	Location Location
	Start    string // regex; for KindFootprint, the only line matcher
	End      string // regex; only used for KindBlock
	Before   int    // KindFootprint: extra lines to also drop, before the match
	After    int    // KindFootprint: extra lines to also drop, after the match
}

// boundaryLines caps how many lines from the start or end of a document
// a Location-restricted pattern is allowed to search, for throughput.
const boundaryLines = 40

// fromDocumentStart is a Before sentinel for KindFootprint patterns that
// must drop everything from line 0 through the matched line (a document
// header whose length varies per book), rather than a fixed neighbour
// count. matchFootprint clamps start at 0 regardless of how large Before
// is, so any sufficiently large value works.
const fromDocumentStart = 1 << 30

// Region is a single stripped contiguous line range.
type Region struct {
	Category    Category `json:"category"`
	PatternName string   `json:"pattern_name"`
	StartLine   int      `json:"start_line"`
	EndLine     int      `json:"end_line"`
	CharCount   int      `json:"char_count"`
}

// Result is the outcome of stripping one document.
type Result struct {
	Text               string
	Regions            []Region
	TotalCharsStripped int
}

type compiledPattern struct {
	patternDef
	start *regexp.Regexp
	end   *regexp.Regexp
}

var (
	once     sync.Once
	compiled []compiledPattern
)

// Stripper removes boilerplate regions from a document.
type Stripper struct{}

// New returns a Stripper. The pattern table compiles lazily on first use.
func New() *Stripper {
	return &Stripper{}
}

// Strip removes every recognized boilerplate region from text and
// returns the cleaned text along with an audit trail. Regions never
// split a word: whole lines are removed and surrounding newlines are
// preserved as paragraph boundaries.
func (s *Stripper) Strip(text string) Result {
	compileOnce()

	lines := strings.Split(text, "\n")
	dropped := make([]bool, len(lines))
	var regions []Region

	for _, pat := range compiled {
		matchPattern(pat, lines, dropped, &regions)
	}

	kept := make([]string, 0, len(lines))
	totalChars := 0

	for i, line := range lines {
		if dropped[i] {
			totalChars += len(line) + 1 // +1 for the newline it carried

			continue
		}

		kept = append(kept, line)
	}

	return Result{
		Text:               strings.Join(kept, "\n"),
		Regions:            regions,
		TotalCharsStripped: totalChars,
	}
}

// matchPattern finds the first undropped match for pat and marks its
// region dropped. Earliest-defined pattern wins: a line already marked
// dropped by an earlier pattern is not reconsidered.
func matchPattern(pat compiledPattern, lines []string, dropped []bool, regions *[]Region) {
	lo, hi := searchBounds(pat.Location, len(lines))

	switch pat.Kind {
	case KindBlock:
		matchBlock(pat, lines, dropped, regions, lo, hi)
	case KindFootprint:
		matchFootprint(pat, lines, dropped, regions, lo, hi)
	}
}

func searchBounds(loc Location, n int) (int, int) {
	switch loc {
	case LocationStart:
		hi := boundaryLines
		if hi > n {
			hi = n
		}

		return 0, hi
	case LocationEnd:
		lo := n - boundaryLines
		if lo < 0 {
			lo = 0
		}

		return lo, n
	default:
		return 0, n
	}
}

func matchBlock(pat compiledPattern, lines []string, dropped []bool, regions *[]Region, lo, hi int) {
	for i := lo; i < hi; i++ {
		if dropped[i] || !pat.start.MatchString(lines[i]) {
			continue
		}

		end := i
		found := false

		for j := i; j < len(lines); j++ {
			if pat.end.MatchString(lines[j]) {
				end = j
				found = true

				break
			}
		}

		if !found {
			continue
		}

		markRegion(pat, lines, dropped, regions, i, end)

		return
	}
}

func matchFootprint(pat compiledPattern, lines []string, dropped []bool, regions *[]Region, lo, hi int) {
	for i := lo; i < hi; i++ {
		if dropped[i] || !pat.start.MatchString(lines[i]) {
			continue
		}

		start := i - pat.Before
		if start < 0 {
			start = 0
		}

		end := i + pat.After
		if end >= len(lines) {
			end = len(lines) - 1
		}

		markRegion(pat, lines, dropped, regions, start, end)

		return
	}
}

func markRegion(pat compiledPattern, lines []string, dropped []bool, regions *[]Region, start, end int) {
	chars := 0

	for i := start; i <= end; i++ {
		if dropped[i] {
			continue
		}

		dropped[i] = true
		chars += len(lines[i]) + 1 // +1 for the newline it carried, matching Strip's accounting
	}

	*regions = append(*regions, Region{
		Category:    pat.Category,
		PatternName: pat.Name,
		StartLine:   start,
		EndLine:     end,
		CharCount:   chars,
	})
}

func compileOnce() {
	once.Do(func() {
		compiled = make([]compiledPattern, 0, len(patternDefs))

		for _, def := range patternDefs {
			cp := compiledPattern{patternDef: def}
			cp.start = regexp.MustCompile(def.Start)

			if def.Kind == KindBlock {
				cp.end = regexp.MustCompile(def.End)
			}

			compiled = append(compiled, cp)
		}
	})
}

// patternDefs is the static boilerplate pattern table, grounded on the
// reference corpus-cleanup tool's digitization-source catalogue.
var patternDefs = []patternDef{
	{
		Category: CategoryGutenberg, Name: "gutenberg_start", Kind: KindFootprint, Location: LocationStart,
		Start: `(?i)\*\*\*\s*START OF (THE|THIS) PROJECT GUTENBERG EBOOK`,
		Before: fromDocumentStart, After: 0,
	},
	{
		Category: CategoryGutenberg, Name: "gutenberg_end", Kind: KindBlock, Location: LocationEnd,
		Start: `(?i)\*\*\*\s*END OF (THE|THIS) PROJECT GUTENBERG EBOOK`,
		End:   `(?i)End of (the )?Project Gutenberg`,
	},
	{
		Category: CategoryGutenberg, Name: "gutenberg_license", Kind: KindBlock, Location: LocationEnd,
		Start: `(?i)This eBook is for the use of anyone anywhere`,
		End:   `(?i)\*\*\*\s*END OF (THE|THIS) PROJECT GUTENBERG`,
	},
	{
		Category: CategoryGoogleBooks, Name: "google_books_disclaimer", Kind: KindFootprint, Location: LocationStart,
		Start: `(?i)^Digitized by Google$`, Before: 0, After: 2,
	},
	{
		Category: CategoryGoogleBooks, Name: "google_books_short", Kind: KindFootprint, Location: LocationStart,
		Start: `(?i)This (is a|book is provided for).*(digital copy|personal use)`, Before: 1, After: 1,
	},
	{
		Category: CategoryGoogleBooks, Name: "google_books_watermark_url", Kind: KindFootprint, Location: LocationAnywhere,
		Start: `(?i)https?://(books|www)\.google\.com/books`, Before: 0, After: 0,
	},
	{
		Category: CategoryIA, Name: "ia_digitized_header", Kind: KindFootprint, Location: LocationStart,
		Start: `(?i)Digitized by the Internet Archive`, Before: 0, After: 2,
	},
	{
		Category: CategoryIA, Name: "ia_url", Kind: KindFootprint, Location: LocationAnywhere,
		Start: `(?i)https?://(www\.)?archive\.org/details/`, Before: 0, After: 0,
	},
	{
		Category: CategoryIA, Name: "ia_simple", Kind: KindFootprint, Location: LocationEnd,
		Start: `(?i)^Generated (for|on) .* (by|from) the Internet Archive`, Before: 0, After: 0,
	},
	{
		Category: CategoryJSTOR, Name: "jstor_early_content", Kind: KindBlock, Location: LocationStart,
		Start: `(?i)Early Journal Content on JSTOR`,
		End:   `(?i)^\s*$`,
	},
	{
		Category: CategoryHathiTrust, Name: "hathitrust_public_domain", Kind: KindFootprint, Location: LocationAnywhere,
		Start: `(?i)This work is in the Public Domain.*HathiTrust`, Before: 0, After: 1,
	},
	{
		Category: CategoryLibrary, Name: "university_stamp", Kind: KindFootprint, Location: LocationStart,
		Start: `(?i)^(Ex Libris|Property of|From the Library of) `, Before: 0, After: 0,
	},
	{
		Category: CategoryLibrary, Name: "library_due_date", Kind: KindFootprint, Location: LocationEnd,
		Start: `(?i)^\s*DATE DUE\s*$`, Before: 0, After: 10,
	},
	{
		Category: CategoryGeneric, Name: "generic_digitized", Kind: KindFootprint, Location: LocationStart,
		Start: `(?i)^This (book|document|text) has been digitized`, Before: 0, After: 1,
	},
}
