package patterns_test

import (
	"testing"

	"github.com/book-expert/ocr-clean/internal/patterns"
	"github.com/stretchr/testify/require"
)

func TestTableCompilesAndIsNonEmpty(t *testing.T) {
	t.Parallel()

	table := patterns.Table()
	require.NotEmpty(t, table)

	ctxTable := patterns.ContextTable()
	require.NotEmpty(t, ctxTable)
}

func TestApplyReportsAccurateMatchCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		patName   string
		input     string
		wantCount int
		wantText  string
	}{
		{"long_s_word", "fuch_such", "a fuch thing", 1, "a such thing"},
		{"ll_U_word", "caUed_called", "he caUed out", 1, "he called out"},
		{"li_h_word", "tlie_the", "tlie tlie end", 2, "the the end"},
		{"no_match_is_noop", "fuch_such", "nothing to see here", 0, "nothing to see here"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pat := findPattern(t, tc.patName)
			got, count := pat.Apply(tc.input)

			require.Equal(t, tc.wantCount, count)
			require.Equal(t, tc.wantText, got)
		})
	}
}

func TestApplyOnCleanInputIsIdentity(t *testing.T) {
	t.Parallel()

	const clean = "The quick brown fox jumps over the lazy dog."

	for _, pat := range patterns.Table() {
		got, count := pat.Apply(clean)
		require.Zero(t, count, "pattern %s matched clean text", pat.Name)
		require.Equal(t, clean, got)
	}
}

func TestHyphenJoinUsesBackreference(t *testing.T) {
	t.Parallel()

	pat := findPattern(t, "hyphen_join")
	got, count := pat.Apply("a strange-\nlooking word")

	require.Equal(t, 1, count)
	require.Equal(t, "a strangelooking word", got)
}

func TestContextPatternsOnlyCount(t *testing.T) {
	t.Parallel()

	var shew patterns.ContextPattern

	found := false

	for _, c := range patterns.ContextTable() {
		if c.Name == "shew" {
			shew = c
			found = true
		}
	}

	require.True(t, found)
	require.Equal(t, 2, shew.Count("shew me, I shew you"))
}

func TestCategorizeKnownAndUnknownNames(t *testing.T) {
	t.Parallel()

	cat, ok := patterns.Categorize("fuch_such")
	require.True(t, ok)
	require.Equal(t, patterns.CategoryLongS, cat)

	_, ok = patterns.Categorize("does_not_exist")
	require.False(t, ok)
}

func TestAllPatternNamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)

	for _, pat := range patterns.Table() {
		require.False(t, seen[pat.Name], "duplicate pattern name %s", pat.Name)
		seen[pat.Name] = true
	}
}

func findPattern(t *testing.T, name string) patterns.Pattern {
	t.Helper()

	for _, pat := range patterns.Table() {
		if pat.Name == name {
			return pat
		}
	}

	t.Fatalf("pattern %s not found in table", name)

	return patterns.Pattern{}
}
