// Package triage classifies a document's structural quality into
// process, review, or reject before the expensive cleanup stages run.
package triage

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Action is the triage verdict for a document.
type Action string

const (
	ActionProcess Action = "process"
	ActionReview  Action = "review"
	ActionReject  Action = "reject"
)

// Thresholds configures the trigger points for each triage action.
// Defaults match SPEC_FULL.md §4.5.
type Thresholds struct {
	MinAlphaRatio       float64
	MinCharCount        int
	MaxListPatternRatio float64
	MaxLineLengthCV     float64
	MaxFragmentRatio    float64
}

// DefaultThresholds returns the spec-mandated default trigger points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinAlphaRatio:       0.6,
		MinCharCount:        500,
		MaxListPatternRatio: 0.3,
		MaxLineLengthCV:     1.5,
		MaxFragmentRatio:    0.4,
	}
}

// Metrics are the structural measurements computed in one pass.
type Metrics struct {
	LineCount        int
	CharCount        int
	AlphaRatio       float64
	MeanWordsPerLine float64
	LineLengthCV     float64
	FragmentRatio    float64
	ListPatternRatio float64
}

// Result is the full triage verdict for one document.
type Result struct {
	Action         Action
	Problems       []string
	Metrics        Metrics
	DetectedLang   string
	LangConfidence float64
	IsEnglish      bool
}

var listPatternRe = regexp.MustCompile(`^\s*[A-Z][a-zA-Z]+,\s*[A-Za-z]+,?\s*\d{3,4},?\s*\d*\s*$|\S+\s+\d+\s*$`)

// Triager computes metrics and applies the two-stage triage decision.
type Triager struct {
	thresholds Thresholds
}

// New builds a Triager with the given thresholds.
func New(thresholds Thresholds) *Triager {
	return &Triager{thresholds: thresholds}
}

// ComputeMetrics walks text once and returns its structural metrics.
// Triage never modifies text; it only judges it.
func ComputeMetrics(text string) Metrics {
	lines := strings.Split(text, "\n")

	var (
		lineCount     int
		charCount     int
		alphaCount    int
		nonWSCount    int
		totalWords    int
		fragmentLines int
		listLines     int
		lengths       []float64
	)

	for _, line := range lines {
		charCount += len(line) + 1

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		lineCount++
		lengths = append(lengths, float64(len(trimmed)))

		words := strings.Fields(trimmed)
		totalWords += len(words)

		if len(words) <= 3 {
			fragmentLines++
		}

		if listPatternRe.MatchString(trimmed) {
			listLines++
		}

		for _, r := range trimmed {
			if !unicode.IsSpace(r) {
				nonWSCount++
			}

			if unicode.IsLetter(r) {
				alphaCount++
			}
		}
	}

	m := Metrics{
		LineCount: lineCount,
		CharCount: charCount,
	}

	if nonWSCount > 0 {
		m.AlphaRatio = float64(alphaCount) / float64(nonWSCount)
	}

	if lineCount > 0 {
		m.MeanWordsPerLine = float64(totalWords) / float64(lineCount)
		m.FragmentRatio = float64(fragmentLines) / float64(lineCount)
		m.ListPatternRatio = float64(listLines) / float64(lineCount)
	}

	m.LineLengthCV = coefficientOfVariation(lengths)

	return m
}

func coefficientOfVariation(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	mean := sum / float64(len(values))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}

	variance /= float64(len(values))
	stddev := math.Sqrt(variance)

	return stddev / mean
}

// LangFunc samples text and returns a detected language code plus
// confidence, matching the shape of lang.Detector.Detect.
type LangFunc func(text string) (code string, confidence float64)

// Triage computes metrics and applies the structural-then-language
// decision order: cheap structural checks run first so documents
// already doomed by structure never pay for language detection.
func (t *Triager) Triage(text string, detect LangFunc) Result {
	metrics := ComputeMetrics(text)

	var problems []string

	if metrics.AlphaRatio < t.thresholds.MinAlphaRatio {
		problems = append(problems, "low_alpha_ratio")
	}

	if metrics.CharCount < t.thresholds.MinCharCount {
		problems = append(problems, "too_short")
	}

	if metrics.ListPatternRatio > t.thresholds.MaxListPatternRatio {
		problems = append(problems, "catalog_index")
	}

	result := Result{Metrics: metrics}

	if len(problems) > 0 {
		result.Action = ActionReject
		result.Problems = problems

		return result
	}

	langCode, confidence := detect(text)
	result.DetectedLang = langCode
	result.LangConfidence = confidence
	result.IsEnglish = langCode == "en"

	if !result.IsEnglish {
		result.Action = ActionReject
		result.Problems = []string{"non_english"}

		return result
	}

	if metrics.LineLengthCV > t.thresholds.MaxLineLengthCV {
		problems = append(problems, "multi_column_suspected")
	}

	if metrics.FragmentRatio > t.thresholds.MaxFragmentRatio {
		problems = append(problems, "high_fragment_ratio")
	}

	if len(problems) > 0 {
		result.Action = ActionReview
		result.Problems = problems

		return result
	}

	result.Action = ActionProcess

	return result
}
