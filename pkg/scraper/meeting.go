package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	menuItemSelector     = `[data-automation-id="menuItem"][aria-label]`
	promptOptionSelector = `[data-automation-id="promptOption"]`
)

var (
	dateRangeRE = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s*-\s*(\d{4}-\d{2}-\d{2})`)
	isoDateRE   = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	clockRE     = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([ap])\.?m\.?`)
	timeRangeRE = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([ap])\.?m\.?\s*-\s*(\d{1,2}):(\d{2})\s*([ap])\.?m\.?`)
	dayTokenRE  = regexp.MustCompile(`\b(Mon|Tue|Wed|Thu|Fri|Sat|Sun)\b`)
	anyDayRE    = regexp.MustCompile(`(?i)\b(Mon|Tue|Wed|Thu|Fri|Sat|Sun)\b`)
	buildingRE  = regexp.MustCompile(`\([A-Z]{2,}\)`)
	floorRE     = regexp.MustCompile(`(?i)^floor\b`)
	roomRE      = regexp.MustCompile(`(?i)^(room|rm)\b`)
	bareTimeRE  = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	isoOnlyRE   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// isMeetingSentence is the filter separating real meeting-pattern sentences
// from unrelated cell text: a line qualifies only when it carries a date
// range, a clock time, and a weekday token all at once.
func isMeetingSentence(s string) bool {
	return dateRangeRE.MatchString(s) && clockRE.MatchString(s) && dayTokenRE.MatchString(s)
}

// MeetingLinesFromCell pulls candidate meeting sentences out of a meeting
// cell. Menu items expose the full string in aria-label and are the best
// source; promptOption labels come next, then the cell's raw text split on
// newlines. Whatever the source, only lines passing the meeting-sentence
// filter survive.
func MeetingLinesFromCell(cell *goquery.Selection) []string {
	if cell == nil {
		return nil
	}

	var lines []string
	cell.Find(menuItemSelector).Each(func(i int, el *goquery.Selection) {
		if label := strings.TrimSpace(el.AttrOr("aria-label", "")); label != "" {
			lines = append(lines, label)
		}
	})

	if len(lines) == 0 {
		cell.Find(promptOptionSelector).Each(func(i int, el *goquery.Selection) {
			if label := promptLabel(el); label != "" {
				lines = append(lines, label)
			}
		})
	}

	if len(lines) == 0 {
		for _, raw := range strings.Split(cell.Text(), "\n") {
			if raw = strings.TrimSpace(raw); raw != "" {
				lines = append(lines, raw)
			}
		}
	}

	return filterMeetingSentences(lines)
}

// MeetingLinesFromRow scans a whole row's menu items for meeting sentences.
// Used when the mapped meeting cell yields nothing.
func MeetingLinesFromRow(row *goquery.Selection) []string {
	if row == nil {
		return nil
	}

	var lines []string
	row.Find(menuItemSelector).Each(func(i int, el *goquery.Selection) {
		if label := strings.TrimSpace(el.AttrOr("aria-label", "")); label != "" {
			lines = append(lines, label)
		}
	})

	return filterMeetingSentences(lines)
}

func filterMeetingSentences(lines []string) []string {
	var kept []string
	for _, l := range lines {
		if isMeetingSentence(l) {
			kept = append(kept, l)
		}
	}
	return kept
}

// promptLabel reads a promptOption's best label source
func promptLabel(el *goquery.Selection) string {
	if v := strings.TrimSpace(el.AttrOr("data-automation-label", "")); v != "" {
		return v
	}
	if v := strings.TrimSpace(el.AttrOr("title", "")); v != "" {
		return v
	}
	return strings.TrimSpace(el.Text())
}

// To24Hour converts a 12-hour clock reading to minutes since midnight.
// pm adds 12 except at 12 o'clock; 12 am is midnight.
func To24Hour(hour, minute int, period string) int {
	switch strings.ToLower(period) {
	case "p":
		if hour != 12 {
			hour += 12
		}
	case "a":
		if hour == 12 {
			hour = 0
		}
	}
	return hour*60 + minute
}

// ParseMeetingLine decomposes an accepted meeting sentence into its date
// range, weekday set, time range, and location. Returns nil for lines
// missing any of the three anchors or with a non-positive duration;
// malformed lines are dropped, not surfaced.
func ParseMeetingLine(line string) *MeetingLine {
	dateMatch := dateRangeRE.FindStringSubmatch(line)
	timeMatch := timeRangeRE.FindStringSubmatch(line)
	days := dayTokenRE.FindAllString(line, -1)

	if dateMatch == nil || timeMatch == nil || len(days) == 0 {
		return nil
	}

	start := clockMinutes(timeMatch[1], timeMatch[2], timeMatch[3])
	end := clockMinutes(timeMatch[4], timeMatch[5], timeMatch[6])
	if end <= start {
		return nil
	}

	seen := make(map[string]bool)
	var unique []string
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}

	return &MeetingLine{
		StartDate:    dateMatch[1],
		EndDate:      dateMatch[2],
		Days:         unique,
		StartMinutes: start,
		EndMinutes:   end,
		TimeLabel:    fmt.Sprintf("%s:%s %s.m. - %s:%s %s.m.", timeMatch[1], timeMatch[2], strings.ToLower(timeMatch[3]), timeMatch[4], timeMatch[5], strings.ToLower(timeMatch[6])),
		Location:     MeetingLocation(line),
	}
}

func clockMinutes(h, m, period string) int {
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	return To24Hour(hour, minute, period)
}

// MeetingDisplay is the "days | time" + location form shown in course lists
type MeetingDisplay struct {
	Days     string
	Time     string
	Location string
}

// FormatMeetingLine splits a meeting sentence on its pipe delimiters and
// classifies the fragments for display: weekday fragment, time-range
// fragment, "Building (ABBR)" fragment, and Floor/Room fragments.
func FormatMeetingLine(line string) MeetingDisplay {
	var parts []string
	for _, p := range strings.Split(line, "|") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	var dayPart, timePart, buildingPart, floorPart, roomPart string
	for _, p := range parts {
		switch {
		case dayPart == "" && dayTokenRE.MatchString(p):
			dayPart = strings.Join(strings.Fields(p), " / ")
		case timePart == "" && bareTimeRE.MatchString(p) && strings.Contains(p, "-"):
			timePart = p
		case buildingPart == "" && buildingRE.MatchString(p):
			buildingPart = p
		case floorPart == "" && floorRE.MatchString(p):
			floorPart = p
		case roomPart == "" && roomRE.MatchString(p):
			roomPart = p
		}
	}

	var location []string
	if buildingPart != "" {
		location = append(location, buildingPart)
	}
	if sub := joinNonEmpty([]string{floorPart, roomPart}, " | "); sub != "" {
		location = append(location, sub)
	}

	return MeetingDisplay{
		Days:     dayPart,
		Time:     timePart,
		Location: strings.Join(location, "\n"),
	}
}

// MeetingLocation picks the location fragment of a meeting sentence for
// exports: the building fragment when present, else an online marker.
func MeetingLocation(line string) string {
	for _, p := range strings.Split(line, "|") {
		p = strings.TrimSpace(p)
		if buildingRE.MatchString(p) {
			return p
		}
	}
	for _, p := range strings.Split(line, "|") {
		p = strings.TrimSpace(p)
		if strings.Contains(strings.ToLower(p), "online") {
			return p
		}
	}
	return ""
}

// ExtractStartDate returns the first ISO date embedded in text, or ""
func ExtractStartDate(text string) string {
	if m := isoDateRE.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func joinNonEmpty(parts []string, sep string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
