package normalize_test

import (
	"testing"

	"github.com/book-expert/ocr-clean/internal/normalize"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	n := normalize.New()
	got := n.Normalize("line one\r\n\r\n\r\n\r\nline two  \t")

	require.Equal(t, "line one\n\n\nline two", got)
}

func TestNormalizeDecodesHTMLEntities(t *testing.T) {
	t.Parallel()

	n := normalize.New()
	got := n.Normalize("Tom &amp; Jerry &amp;amp; friends")

	require.Equal(t, "Tom & Jerry & friends", got)
}

func TestNormalizeFixesMojibake(t *testing.T) {
	t.Parallel()

	n := normalize.New()
	got := n.Normalize("itâ€™s a cold dayâ€”colder than usual")

	require.Equal(t, "it's a cold day--colder than usual", got)
}

func TestNormalizeFixesAccentMojibake(t *testing.T) {
	t.Parallel()

	n := normalize.New()
	got := n.Normalize("cafÃ© and faÃ§ade")

	require.Equal(t, "café and façade", got)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	n := normalize.New()
	once := n.Normalize("plain ascii text with no artifacts")
	twice := n.Normalize(once)

	require.Equal(t, once, twice)
}
