package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	gridCandidateSelector = `table, [role="table"], div[role="grid"], div[data-automation-id*="grid"]`
	headerCellSelector    = `thead th, [role="columnheader"], .wd-GridHeaderCell, .grid-column-header`
	dataRowSelector       = `tbody tr, [role="rowgroup"] [role="row"], .wd-GridRow, .grid-row`
	dataCellSelector      = `td, [role="gridcell"]`
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// NormalizeText lowercases a header or cell label and collapses NBSP and
// whitespace runs so label comparisons survive Workday's markup churn.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// FindGrid scans the document for a table or grid whose headers look like
// the Workday course listing. Workday renders the same grid as a native
// table, an ARIA grid, or a div grid depending on release, so acceptance
// only requires a "section" header plus one other expected label. The
// first candidate with data rows wins; nil means the page is not ready or
// is not a course page, which callers treat as an empty result.
func FindGrid(doc *goquery.Document) *Grid {
	var found *Grid

	doc.Find(gridCandidateSelector).EachWithBreak(func(i int, root *goquery.Selection) bool {
		var headers []string
		root.Find(headerCellSelector).Each(func(j int, h *goquery.Selection) {
			headers = append(headers, NormalizeText(headerText(h)))
		})

		if !looksLikeCourseGrid(headers) {
			return true
		}

		rows := root.Find(dataRowSelector)
		if rows.Length() == 0 {
			return true
		}

		found = &Grid{Root: root, Rows: rows}
		return false
	})

	return found
}

func looksLikeCourseGrid(headers []string) bool {
	hasSection := false
	hasAnchor := false

	for _, h := range headers {
		if strings.Contains(h, "section") {
			hasSection = true
		}
		if strings.Contains(h, "instructor") ||
			strings.Contains(h, "meeting") ||
			strings.Contains(h, "instructional format") ||
			strings.Contains(h, "format") ||
			strings.Contains(h, "status") {
			hasAnchor = true
		}
	}

	return hasSection && hasAnchor
}
