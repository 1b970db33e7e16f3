package schedule

import (
	"strconv"
	"strings"
)

// TermOf maps a course's ISO start date to a term selector using the
// configured month sets. Returns "" for missing or unparseable dates and
// for months no term claims; such courses stay in list views but are left
// off the weekly grid.
func TermOf(startDate string, termMonths map[string][]int) string {
	parts := strings.SplitN(startDate, "-", 3)
	if len(parts) < 2 {
		return ""
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return ""
	}

	// stable iteration: check known selectors in a fixed order first
	for _, term := range []string{"first", "second"} {
		for _, m := range termMonths[term] {
			if m == month {
				return term
			}
		}
	}
	for term, months := range termMonths {
		if term == "first" || term == "second" {
			continue
		}
		for _, m := range months {
			if m == month {
				return term
			}
		}
	}

	return ""
}
