package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// looksLikeMeetingText reports whether a label is really meeting data
// (a date, date range, weekday, or clock time). Workday intermittently
// leaks meeting menu items into the instructor column, so instructor
// candidates shaped like meetings are rejected outright.
func looksLikeMeetingText(s string) bool {
	return isoOnlyRE.MatchString(s) ||
		dateRangeRE.MatchString(s) ||
		anyDayRE.MatchString(s) ||
		bareTimeRE.MatchString(s)
}

// InstructorNamesFromCell reads instructor names from the instructor cell,
// preferring menu-item labels and joining multiple names with commas.
// Returns "" when nothing name-shaped is present.
func InstructorNamesFromCell(cell *goquery.Selection) string {
	if cell == nil {
		return ""
	}

	var names []string
	cell.Find(menuItemSelector).Each(func(i int, el *goquery.Selection) {
		label := strings.TrimSpace(el.AttrOr("aria-label", ""))
		if label != "" && !looksLikeMeetingText(label) {
			names = append(names, label)
		}
	})
	if len(names) > 0 {
		return strings.Join(names, ", ")
	}

	txt := ""
	if prompt := cell.Find(promptOptionSelector); prompt.Length() > 0 {
		txt = promptLabel(prompt.First())
	}
	if txt == "" {
		txt = strings.TrimSpace(cell.Text())
	}

	if looksLikeMeetingText(txt) {
		return ""
	}
	return txt
}
