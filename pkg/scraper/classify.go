package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	labRE        = regexp.MustCompile(`(?i)\b(lab|laboratory|labratory)\b`)
	seminarRE    = regexp.MustCompile(`(?i)\bseminar\b`)
	discussionRE = regexp.MustCompile(`(?i)\bdiscussion\b`)
	onlineRE     = regexp.MustCompile(`(?i)online learning`)
)

// matchAny tests a pattern against every text source for a row; any single
// match sets the flag
func matchAny(re *regexp.Regexp, sources ...string) bool {
	for _, s := range sources {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// IsOnlineDelivery reports whether the delivery-mode cell marks the section
// as online learning, checking the cell text and its sub-option labels.
// Used only to override the displayed location when no room was parsed.
func IsOnlineDelivery(cell *goquery.Selection) bool {
	if cell == nil {
		return false
	}

	if onlineRE.MatchString(cell.Text()) {
		return true
	}

	online := false
	cell.Find(promptOptionSelector).EachWithBreak(func(i int, el *goquery.Selection) bool {
		if onlineRE.MatchString(promptLabel(el)) {
			online = true
			return false
		}
		return true
	})
	return online
}

// classifySection derives the lab/seminar/discussion flags from every text
// source available for the row. Labs and seminars show the owning lecture's
// instructor in Workday, which is misleading, so those flags also suppress
// the instructor later.
func classifySection(format, section, title, sectionLink, rowText string) (isLab, isSeminar, isDiscussion bool) {
	isLab = matchAny(labRE, format, section, title, sectionLink, rowText)
	isSeminar = matchAny(seminarRE, format, section, title, sectionLink, rowText)
	isDiscussion = matchAny(discussionRE, format, section, title, sectionLink, rowText)
	return
}

// FormatLabel renders the bracketed section-type tag shown next to a course
func FormatLabel(c Course) string {
	switch {
	case c.IsLab:
		return "[Laboratory]"
	case c.IsSeminar:
		return "[Seminar]"
	case c.IsDiscussion:
		return "[Discussion]"
	}
	return ""
}

// collapseText flattens a cell or row's text into one whitespace-collapsed line
func collapseText(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
