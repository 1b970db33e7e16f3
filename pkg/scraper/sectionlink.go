package scraper

import (
	"regexp"
	"strings"
)

// SectionLink is the decomposition of a Workday section link string such as
// "COSC_O 222-L2D - Data Structures".
type SectionLink struct {
	Code          string
	SectionNumber string
	Title         string
	Full          string
}

var (
	newlineRunRE   = regexp.MustCompile(`\s*\n\s*`)
	sectionLinkRE  = regexp.MustCompile(`^\s*([A-Z][A-Z0-9_]*\s*\d{3}[A-Z]?)\s*-\s*(.+?)\s*$`)
	hyphenSplitRE  = regexp.MustCompile(`\s*[-–—]\s*`)
	sectionTokenRE = regexp.MustCompile(`^(\d{3}|[A-Z]\d{1,2}[A-Z]?)$`)
	titleColonRE   = regexp.MustCompile(`\s*:\s*`)
	codeGuessRE    = regexp.MustCompile(`[A-Z][A-Z0-9_]*\s*\d{2,3}[A-Z]?`)
	linkPrefixRE   = regexp.MustCompile(`^[A-Z][A-Z0-9_]*\s*\d{2,3}-`)
)

// ParseSectionLink splits a section link string into code, section token
// and title. Workday wraps long titles with newlines, so internal line
// breaks are collapsed before matching. Returns nil when the leading
// code-dash pattern is missing; callers fall back to GuessCourseCode.
func ParseSectionLink(input string) *SectionLink {
	str := strings.TrimSpace(strings.ReplaceAll(input, "\u00a0", " "))
	if str == "" {
		return nil
	}

	str = strings.TrimSpace(newlineRunRE.ReplaceAllString(str, " "))

	m := sectionLinkRE.FindStringSubmatch(str)
	if m == nil {
		return nil
	}

	code := strings.TrimSpace(m[1])
	rest := strings.TrimSpace(m[2])

	var parts []string
	for _, p := range hyphenSplitRE.Split(rest, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	section := ""
	title := rest
	if len(parts) > 0 && sectionTokenRE.MatchString(parts[0]) {
		section = parts[0]
		title = strings.TrimSpace(strings.Join(parts[1:], " - "))
	}

	// Workday uses colons for sub-headings inside titles; keep them on
	// their own line for display
	title = titleColonRE.ReplaceAllString(title, ":\n")

	return &SectionLink{
		Code:          code,
		SectionNumber: section,
		Title:         title,
		Full:          str,
	}
}

// GuessCourseCode scans arbitrary text for the first thing shaped like a
// course code ("COSC_O 222", "MATH 101"). Returns "" when nothing matches.
func GuessCourseCode(text string) string {
	m := codeGuessRE.FindString(text)
	if m == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(m, " "))
}

// looksLikeSectionLink reports whether text starts with a code-dash prefix
func looksLikeSectionLink(text string) bool {
	return linkPrefixRE.MatchString(text)
}
