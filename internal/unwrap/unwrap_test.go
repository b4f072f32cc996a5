package unwrap_test

import (
	"testing"

	"github.com/book-expert/ocr-clean/internal/unwrap"
	"github.com/stretchr/testify/require"
)

func TestUnwrapJoinsHyphenatedWord(t *testing.T) {
	t.Parallel()

	u := unwrap.New(nil)
	res := u.Unwrap("appro-\npriate response")

	require.Equal(t, "appropriate response", res.Text)
	require.Equal(t, 1, res.WordsDehyphenated)
	require.Equal(t, 1, res.LinesJoined)
}

func TestUnwrapPreservesProperNounCompound(t *testing.T) {
	t.Parallel()

	u := unwrap.New(nil)
	res := u.Unwrap("It happened in Anglo-\nSaxon times.")

	require.NotContains(t, res.Text, "AngloSaxon")
}

func TestUnwrapPreservesParagraphBoundary(t *testing.T) {
	t.Parallel()

	u := unwrap.New(nil)
	res := u.Unwrap("The end of a sentence.\nA new paragraph begins here.")

	require.Equal(t, "The end of a sentence.\nA new paragraph begins here.", res.Text)
	require.Zero(t, res.LinesJoined)
}

func TestUnwrapCollapsesCosmeticBreak(t *testing.T) {
	t.Parallel()

	u := unwrap.New(nil)
	res := u.Unwrap("this line continues\nonto the next one without punctuation")

	require.Equal(t, "this line continues onto the next one without punctuation", res.Text)
	require.Equal(t, 1, res.SpacesNormalized)
}

func TestConfirmedByDictionaryNeverBlocksJoin(t *testing.T) {
	t.Parallel()

	lookup := func(word string) bool { return word == "appropriate" }
	u := unwrap.New(lookup)

	res := u.Unwrap("appro-\npriate response")
	require.Equal(t, "appropriate response", res.Text)
	require.True(t, u.ConfirmedByDictionary("appropriate"))
}
