// Package anachronism scans normalized, boilerplate-stripped text for
// modern content that could not exist in a pre-cutoff historical
// source — URLs, email addresses, inline digitization credits that
// survived C4's whole-line stripping, and modern file-format or
// encoding references — and removes it as a line-scoped pass, tallied
// under the OCR pattern engine's "anachronism" category.
package anachronism

import (
	"regexp"
	"strings"
)

// Category is the accounting bucket every match falls into, matching
// patterns.CategoryAnachronism so the driver can fold this pass's
// count directly into the same substitutions-by-category total.
const Category = "anachronism"

type entry struct {
	name string
	re   *regexp.Regexp
}

// table is grounded on the reference anachronistic-content filter's
// ANACHRONISTIC_PATTERNS: URLs and email first (most unambiguous),
// then inline digitization credits, then modern file-format and
// encoding-name references.
var table = []entry{
	{"url", regexp.MustCompile(`https?://\S+`)},
	{"www_address", regexp.MustCompile(`\bwww\.\S+`)},
	{"email", regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`)},
	{"gutenberg_credit", regexp.MustCompile(`(?i)Project Gutenberg[^\n]*`)},
	{"pgdp_credit", regexp.MustCompile(`\bPGDP\b[^\n]*`)},
	{"proofreading_credit", regexp.MustCompile(`(?i)Distributed Proofreading[^\n]*`)},
	{"ia_credit", regexp.MustCompile(`(?i)Internet Archive[^\n]*`)},
	{"archive_org", regexp.MustCompile(`archive\.org\S*`)},
	{"digitized_credit", regexp.MustCompile(`(?i)Digitized by[^\n]*`)},
	{"scanned_credit", regexp.MustCompile(`(?i)Scanned by[^\n]*`)},
	{"file_extension", regexp.MustCompile(`(?i)\.(?:html?|pdf|jpe?g|png|gif|xml)\b`)},
	{"html_reference", regexp.MustCompile(`\bHTML\b`)},
	{"pdf_reference", regexp.MustCompile(`\bPDF\b`)},
	{"xml_reference", regexp.MustCompile(`\bXML\b`)},
	{"ascii_reference", regexp.MustCompile(`\bASCII\b`)},
	{"isbn", regexp.MustCompile(`\bISBN[:\s-]*[\d-]+`)},
}

var multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)

// Result is the outcome of filtering one document.
type Result struct {
	Text    string
	Removed int
}

// Filter removes every anachronism-table match from text and returns
// the total number of matches removed. When anything was removed, runs
// of spaces and tabs are collapsed to one space and trailing spaces are
// trimmed on every line of the document.
func Filter(text string) Result {
	removed := 0

	for _, e := range table {
		text, removed = applyOne(e, text, removed)
	}

	if removed == 0 {
		return Result{Text: text, Removed: 0}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(multiSpaceRe.ReplaceAllString(line, " "), " ")
	}

	return Result{Text: strings.Join(lines, "\n"), Removed: removed}
}

func applyOne(e entry, text string, removed int) (string, int) {
	matches := e.re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text, removed
	}

	return e.re.ReplaceAllString(text, ""), removed + len(matches)
}
