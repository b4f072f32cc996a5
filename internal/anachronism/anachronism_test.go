package anachronism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/book-expert/ocr-clean/internal/anachronism"
)

func TestFilter_RemovesURL(t *testing.T) {
	t.Parallel()

	res := anachronism.Filter("See https://books.google.com/books?id=xyz for details.")

	assert.NotContains(t, res.Text, "https://")
	assert.Equal(t, 1, res.Removed)
}

func TestFilter_RemovesEmail(t *testing.T) {
	t.Parallel()

	res := anachronism.Filter("Contact scholar@university.edu with questions.")

	assert.NotContains(t, res.Text, "@")
	assert.Equal(t, 1, res.Removed)
}

func TestFilter_RemovesInlineDigitizationCredit(t *testing.T) {
	t.Parallel()

	res := anachronism.Filter("A fine old book. Digitized by some library in 2009.")

	assert.NotContains(t, res.Text, "Digitized by")
	assert.Equal(t, 1, res.Removed)
}

func TestFilter_RemovesModernFormatReferences(t *testing.T) {
	t.Parallel()

	res := anachronism.Filter("Available as PDF and HTML and also report.xml")

	assert.NotContains(t, res.Text, "PDF")
	assert.NotContains(t, res.Text, "HTML")
	assert.Positive(t, res.Removed)
}

func TestFilter_LeavesOrdinaryTextUnchanged(t *testing.T) {
	t.Parallel()

	text := "The quick brown fox jumps over the lazy dog."
	res := anachronism.Filter(text)

	assert.Equal(t, text, res.Text)
	assert.Equal(t, 0, res.Removed)
}

func TestFilter_CollapsesDoubleSpacesAfterRemoval(t *testing.T) {
	t.Parallel()

	res := anachronism.Filter("before https://example.com after")

	assert.Equal(t, "before after", res.Text)
}
