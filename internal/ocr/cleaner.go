// Package ocr applies the compiled OCR correction table to document
// text, counting substitutions per category as it goes.
package ocr

import (
	"github.com/book-expert/ocr-clean/internal/patterns"
)

// CategoryTotals maps a pattern category to how many times it fired.
type CategoryTotals map[patterns.Category]int

// Result is the outcome of running the engine over one document.
type Result struct {
	Text               string
	TotalSubstitutions int
	SubstitutionsByCat CategoryTotals
	ContextMatches     map[string]int
}

// Engine applies the process-wide pattern table in its authored order.
// It holds no mutable state and is safe for concurrent use across
// worker goroutines.
type Engine struct {
	table    []patterns.Pattern
	ctxTable []patterns.ContextPattern
}

// NewEngine builds an Engine over the compiled pattern table, following
// the teacher's precompile-everything-in-the-constructor idiom. The
// table itself compiles once, process-wide, inside the patterns
// package; NewEngine just captures references to it.
func NewEngine() *Engine {
	return &Engine{
		table:    patterns.Table(),
		ctxTable: patterns.ContextTable(),
	}
}

// Clean runs every pattern against text in table order, tallying
// substitutions per category. Context patterns are counted into
// ContextMatches but never applied. On input already free of tracked
// errors, Clean returns text unchanged with TotalSubstitutions == 0.
func (e *Engine) Clean(text string) Result {
	if text == "" {
		return Result{SubstitutionsByCat: CategoryTotals{}, ContextMatches: map[string]int{}}
	}

	totals := make(CategoryTotals)
	total := 0

	for _, pat := range e.table {
		var count int
		text, count = pat.Apply(text)

		if count > 0 {
			totals[pat.Category] += count
			total += count
		}
	}

	ctxMatches := make(map[string]int, len(e.ctxTable))

	for _, cp := range e.ctxTable {
		if n := cp.Count(text); n > 0 {
			ctxMatches[cp.Name] = n
		}
	}

	return Result{
		Text:               text,
		TotalSubstitutions: total,
		SubstitutionsByCat: totals,
		ContextMatches:     ctxMatches,
	}
}
