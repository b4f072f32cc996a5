// Package patterns holds the ordered OCR correction table and the
// context-only patterns that are counted but never applied.
package patterns

import (
	"fmt"
	"regexp"
	"sync"
)

// Category labels a Pattern for per-category accounting and reporting.
type Category string

const (
	CategoryLongS       Category = "long_s"
	CategoryLiHConfuse  Category = "li_h_confusion"
	CategoryLLUConfuse  Category = "ll_U_confusion"
	CategoryRNMConfuse  Category = "rn_m_confusion"
	CategoryLigature    Category = "ligature"
	CategoryWordJoin    Category = "word_join"
	CategoryWatermark   Category = "watermark"
	CategoryAnachronism Category = "anachronism"
	CategoryOther       Category = "other"
)

// Entry is the static, authored description of one correction pattern.
// Order within the table is significant: later entries may rely on
// earlier ones having already fired.
type Entry struct {
	Category    Category
	Name        string
	Regex       string
	Replacement string
}

// Pattern is a compiled Entry, ready to apply.
type Pattern struct {
	Category    Category
	Name        string
	Replacement string
	re          *regexp.Regexp
}

// Regexp exposes the compiled matcher for callers that need to find or
// count matches without substituting.
func (p Pattern) Regexp() *regexp.Regexp { return p.re }

// Apply runs the pattern against text and returns the result plus the
// number of non-overlapping matches that were replaced.
func (p Pattern) Apply(text string) (string, int) {
	count := strCount(p.re, text)
	if count == 0 {
		return text, 0
	}

	return p.re.ReplaceAllString(text, p.Replacement), count
}

func strCount(re *regexp.Regexp, text string) int {
	return len(re.FindAllStringIndex(text, -1))
}

// ContextEntry documents a historically-ambiguous form that must only be
// counted, never auto-corrected.
type ContextEntry struct {
	Name          string
	Regex         string
	PotentialFix  string
}

// ContextPattern is a compiled ContextEntry.
type ContextPattern struct {
	Name         string
	PotentialFix string
	re           *regexp.Regexp
}

// Count returns the number of matches in text without modifying it.
func (c ContextPattern) Count(text string) int {
	return len(c.re.FindAllStringIndex(text, -1))
}

var (
	once           sync.Once
	compiled       []Pattern
	compiledCtx    []ContextPattern
	categoryByName map[string]Category
	compileErr     error
)

// Table returns the process-wide compiled OCR pattern table, compiling it
// on first use. Pattern compilation failure is fatal: the table is
// authored as a constant, so a compile error here is a programming error,
// not a runtime condition callers can recover from.
func Table() []Pattern {
	compileOnce()

	if compileErr != nil {
		panic(fmt.Sprintf("patterns: malformed pattern table: %v", compileErr))
	}

	return compiled
}

// ContextTable returns the process-wide compiled context-pattern table.
func ContextTable() []ContextPattern {
	compileOnce()

	if compileErr != nil {
		panic(fmt.Sprintf("patterns: malformed pattern table: %v", compileErr))
	}

	return compiledCtx
}

// Categorize looks up the category of a pattern by its authored name. The
// second return value is false if no pattern with that name exists.
func Categorize(patternName string) (Category, bool) {
	compileOnce()

	cat, ok := categoryByName[patternName]

	return cat, ok
}

func compileOnce() {
	once.Do(func() {
		categoryByName = make(map[string]Category, len(ocrEntries))
		compiled = make([]Pattern, 0, len(ocrEntries))

		for _, entry := range ocrEntries {
			if entry.Name == "" || entry.Category == "" {
				compileErr = fmt.Errorf("pattern %q (regex %q) has no name or category", entry.Name, entry.Regex)

				return
			}

			re, err := regexp.Compile(entry.Regex)
			if err != nil {
				compileErr = fmt.Errorf("compile pattern %q: %w", entry.Name, err)

				return
			}

			compiled = append(compiled, Pattern{
				Category:    entry.Category,
				Name:        entry.Name,
				Replacement: entry.Replacement,
				re:          re,
			})
			categoryByName[entry.Name] = entry.Category
		}

		compiledCtx = make([]ContextPattern, 0, len(contextEntries))

		for _, entry := range contextEntries {
			re, err := regexp.Compile(entry.Regex)
			if err != nil {
				compileErr = fmt.Errorf("compile context pattern %q: %w", entry.Name, err)

				return
			}

			compiledCtx = append(compiledCtx, ContextPattern{
				Name:         entry.Name,
				PotentialFix: entry.PotentialFix,
				re:           re,
			})
		}
	})
}
