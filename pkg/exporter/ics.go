package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"wdsched/pkg/scraper"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// dayCodes maps weekday tokens to iCalendar BYDAY codes
var dayCodes = map[string]string{
	"Mon": "MO",
	"Tue": "TU",
	"Wed": "WE",
	"Thu": "TH",
	"Fri": "FR",
	"Sat": "SA",
	"Sun": "SU",
}

var weekdayTokens = [...]string{
	time.Sunday:    "Sun",
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
}

// GenerateICS writes one recurring VEVENT per (course, meeting line) pair.
// DTSTART/DTEND come from the first weekday occurrence on or after the
// line's start date; the weekly RRULE runs until the line's end date.
// Lines that fail to parse are skipped, matching the extraction pipeline's
// silent handling of malformed meeting text.
func GenerateICS(courses []scraper.Course, timezone string, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("could not load timezone %q: %w", timezone, err)
	}

	now := time.Now()

	for _, course := range courses {
		for _, line := range course.MeetingLines {
			parsed := scraper.ParseMeetingLine(line)
			if parsed == nil {
				continue
			}

			first, ok := firstOccurrence(parsed.StartDate, parsed.Days, loc)
			if !ok {
				continue
			}

			start := first.Add(time.Duration(parsed.StartMinutes) * time.Minute)
			end := first.Add(time.Duration(parsed.EndMinutes) * time.Minute)

			var byday []string
			for _, d := range parsed.Days {
				if code, known := dayCodes[d]; known {
					byday = append(byday, code)
				}
			}
			if len(byday) == 0 {
				continue
			}

			until := strings.ReplaceAll(parsed.EndDate, "-", "") + "T235959"

			event := cal.AddEvent(uuid.NewString())
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(summary(course))
			event.SetDescription(description(course))
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", strings.Join(byday, ","), until))

			if parsed.Location != "" {
				event.SetLocation(parsed.Location)
			} else if strings.Contains(course.Meeting, "Online") {
				event.SetLocation("Online")
			}
		}
	}

	return cal.SerializeTo(w)
}

// firstOccurrence finds the first date on or after startDate falling on one
// of the meeting's weekdays, at midnight in the given location
func firstOccurrence(startDate string, days []string, loc *time.Location) (time.Time, bool) {
	start, err := time.ParseInLocation("2006-01-02", startDate, loc)
	if err != nil {
		return time.Time{}, false
	}

	wanted := make(map[string]bool, len(days))
	for _, d := range days {
		wanted[d] = true
	}

	for offset := 0; offset < 7; offset++ {
		date := start.AddDate(0, 0, offset)
		if wanted[weekdayTokens[date.Weekday()]] {
			return date, true
		}
	}

	return start, true
}

func summary(c scraper.Course) string {
	parts := joinNonEmpty([]string{c.Code, flatTitle(c.Title)}, " - ")
	if parts == "" {
		return "Scheduled Course"
	}
	return parts
}

func description(c scraper.Course) string {
	fields := []struct{ label, value string }{
		{"Title", flatTitle(c.Title)},
		{"Code", c.Code},
		{"Section", c.SectionNumber},
		{"Instructor", c.Instructor},
		{"Format", c.InstructionalFormat},
		{"Meeting", strings.ReplaceAll(c.Meeting, "\n", " ")},
	}

	var lines []string
	for _, f := range fields {
		if f.value != "" {
			lines = append(lines, f.label+": "+f.value)
		}
	}
	return strings.Join(lines, "\n")
}

// flatTitle undoes the colon line breaks inserted for panel display
func flatTitle(title string) string {
	return strings.ReplaceAll(title, ":\n", ": ")
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
