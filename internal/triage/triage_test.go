package triage_test

import (
	"strings"
	"testing"

	"github.com/book-expert/ocr-clean/internal/triage"
	"github.com/stretchr/testify/require"
)

func englishAlways(string) (string, float64) { return "en", 0.95 }

func TestTriageProcessOnCleanProse(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("This is a perfectly ordinary sentence of plain English prose. ", 40)

	tr := triage.New(triage.DefaultThresholds())
	res := tr.Triage(body, englishAlways)

	require.Equal(t, triage.ActionProcess, res.Action)
	require.Empty(t, res.Problems)
}

func TestTriageRejectsCatalogIndex(t *testing.T) {
	t.Parallel()

	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines, "Smith, John, 1843, 12")
	}

	tr := triage.New(triage.DefaultThresholds())
	res := tr.Triage(strings.Join(lines, "\n"), englishAlways)

	require.Equal(t, triage.ActionReject, res.Action)
	require.Contains(t, res.Problems, "catalog_index")
}

func TestTriageRejectsTooShort(t *testing.T) {
	t.Parallel()

	tr := triage.New(triage.DefaultThresholds())
	res := tr.Triage("too short", englishAlways)

	require.Equal(t, triage.ActionReject, res.Action)
	require.Contains(t, res.Problems, "too_short")
}

func TestTriageRejectsNonEnglish(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("Ceci est une phrase tout a fait ordinaire en prose francaise. ", 40)

	tr := triage.New(triage.DefaultThresholds())
	res := tr.Triage(body, func(string) (string, float64) { return "fr", 0.8 })

	require.Equal(t, triage.ActionReject, res.Action)
	require.Equal(t, []string{"non_english"}, res.Problems)
	require.False(t, res.IsEnglish)
}

func TestTriageStructuralChecksSkipLanguageDetection(t *testing.T) {
	t.Parallel()

	called := false
	detect := func(string) (string, float64) {
		called = true

		return "en", 1.0
	}

	tr := triage.New(triage.DefaultThresholds())
	res := tr.Triage("short", detect)

	require.Equal(t, triage.ActionReject, res.Action)
	require.False(t, called, "language detection should be skipped once structural reject fires")
}

func TestComputeMetricsIsDeterministic(t *testing.T) {
	t.Parallel()

	text := "line one here\nline two also here\nline three also present"

	m1 := triage.ComputeMetrics(text)
	m2 := triage.ComputeMetrics(text)

	require.Equal(t, m1, m2)
}
