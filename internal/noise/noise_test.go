package noise_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/ocr-clean/internal/noise"
)

func writeCandidates(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "_vocab_candidates.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultCategoriesFilterToGAndR(t *testing.T) {
	t.Parallel()

	content := "" +
		"5 | | G | zxqvbn | some context\n" +
		"3 | | R | loooong | other context\n" +
		"9 | | M | MixedCase | mixed\n" +
		"2 | | X | website | modern\n"
	path := writeCandidates(t, content)

	set, err := noise.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestLoad_CustomCategories(t *testing.T) {
	t.Parallel()

	content := "1 | | X | website | ctx\n"
	path := writeCandidates(t, content)

	set, err := noise.Load(path, []string{"X"})
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestStrip_RemovesWholeTokensAndCollapsesSpaces(t *testing.T) {
	t.Parallel()

	content := "2 | | G | zxqvbn | ctx\n"
	path := writeCandidates(t, content)

	set, err := noise.Load(path, nil)
	require.NoError(t, err)

	out, removed := set.Strip("this zxqvbn text has noise")
	assert.Equal(t, 1, removed)
	assert.Equal(t, "this text has noise", out)
}

func TestStrip_DoesNotTouchSubstringOfLegitimateWord(t *testing.T) {
	t.Parallel()

	content := "2 | | G | cat | ctx\n"
	path := writeCandidates(t, content)

	set, err := noise.Load(path, nil)
	require.NoError(t, err)

	out, removed := set.Strip("the category remains intact")
	assert.Equal(t, 0, removed)
	assert.Equal(t, "the category remains intact", out)
}

func TestStrip_PreservesLineStructure(t *testing.T) {
	t.Parallel()

	content := "2 | | G | zxqvbn | ctx\n"
	path := writeCandidates(t, content)

	set, err := noise.Load(path, nil)
	require.NoError(t, err)

	out, _ := set.Strip("line one zxqvbn\nline two")
	assert.Equal(t, "line one\nline two", out)
}

func TestStrip_EmptySetIsNoOp(t *testing.T) {
	t.Parallel()

	var set *noise.Set

	out, removed := set.Strip("unchanged text")
	assert.Equal(t, "unchanged text", out)
	assert.Equal(t, 0, removed)
}
