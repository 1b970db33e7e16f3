package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractCourses runs the whole pipeline against a parsed page: locate the
// grid, map its headers, extract one Course per data row, drop empty rows,
// and deduplicate. A page with no recognizable grid yields an empty slice;
// extraction is a pure function of the document, so re-running it on an
// unchanged page returns the same list.
func ExtractCourses(doc *goquery.Document) []Course {
	grid := FindGrid(doc)
	if grid == nil {
		return nil
	}

	maps := BuildHeaderMaps(grid.Root)

	var courses []Course
	grid.Rows.Each(func(i int, row *goquery.Selection) {
		c := ExtractRow(row, maps)
		if keepCourse(c) {
			courses = append(courses, c)
		}
	})

	return DedupeCourses(courses)
}

// keepCourse guards against fully empty rows: a course needs a code or
// title plus at least one other populated field
func keepCourse(c Course) bool {
	if c.Code == "" && c.Title == "" {
		return false
	}
	return c.SectionNumber != "" || c.Instructor != "" || c.Meeting != "" ||
		c.InstructionalFormat != "" || c.StartDate != "" || len(c.MeetingLines) > 0 ||
		(c.Code != "" && c.Title != "")
}

// DedupeCourses collapses rows sharing the same identity, keeping the
// first occurrence and the original order.
func DedupeCourses(courses []Course) []Course {
	seen := make(map[string]bool)
	var unique []Course

	for _, c := range courses {
		key := strings.ToLower(strings.Join([]string{c.Code, c.Title, c.SectionNumber}, "|"))
		if !seen[key] {
			seen[key] = true
			unique = append(unique, c)
		}
	}

	return unique
}

// ExtractRow builds one Course from a grid row. The section link is looked
// up across the whole row rather than just the title column because it has
// proven the most reliable source for code/section/title; every other field
// degrades through positional fallbacks and ends as an empty string rather
// than failing the row.
func ExtractRow(row *goquery.Selection, maps HeaderMaps) Course {
	reader := newRowReader(row, maps)
	rowText := collapseText(row.Text())

	sectionLinkString := findSectionLinkString(row)

	titleCell := reader.text(FieldTitle)
	codeCell := reader.text(FieldCode)
	sectCell := reader.text(FieldSection)
	meetingCell := reader.text(FieldMeeting)
	formatCell := reader.text(FieldInstructionalFormat)
	startDateCell := reader.text(FieldStartDate)

	code := ""
	title := titleCell
	section := ""

	if parsed := ParseSectionLink(sectionLinkString); parsed != nil {
		code = parsed.Code
		section = parsed.SectionNumber
		title = parsed.Title
	}

	if code == "" {
		code = firstNonEmpty(
			GuessCourseCode(codeCell),
			GuessCourseCode(titleCell),
			GuessCourseCode(rowText),
		)
	}

	isLab, isSeminar, isDiscussion := classifySection(formatCell, sectCell, title, sectionLinkString, rowText)

	instructor := ""
	if isLab || isSeminar {
		// Workday shows the owning lecture's instructor on lab and
		// seminar rows; suppress it
		instructor = "N/A"
	} else {
		instructor = InstructorNamesFromCell(reader.cell(FieldInstructor))
		if instructor == "" {
			instructor = reader.text(FieldInstructor)
		}
	}

	lines := MeetingLinesFromCell(reader.cell(FieldMeeting))
	if len(lines) == 0 {
		lines = MeetingLinesFromRow(row)
	}

	startDate := ""
	if len(lines) > 0 {
		startDate = ExtractStartDate(lines[0])
	}
	if startDate == "" {
		startDate = ExtractStartDate(startDateCell)
	}

	meeting := formatMeetingDisplay(lines, meetingCell, IsOnlineDelivery(reader.cell(FieldDeliveryMode)))

	return Course{
		Code:                code,
		Title:               title,
		SectionNumber:       section,
		Instructor:          instructor,
		Meeting:             meeting,
		MeetingLines:        lines,
		InstructionalFormat: formatCell,
		StartDate:           startDate,
		IsLab:               isLab,
		IsSeminar:           isSeminar,
		IsDiscussion:        isDiscussion,
	}
}

// findSectionLinkString searches a row's prompt options for the one whose
// label starts with a code-dash pattern; failing that, the first prompt
// option's label is used as-is.
func findSectionLinkString(row *goquery.Selection) string {
	best := ""
	first := ""

	row.Find(promptOptionSelector).EachWithBreak(func(i int, el *goquery.Selection) bool {
		label := promptLabelOrAria(el)
		if first == "" {
			first = label
		}
		if looksLikeSectionLink(label) {
			best = label
			return false
		}
		return true
	})

	if best != "" {
		return best
	}
	return first
}

func promptLabelOrAria(el *goquery.Selection) string {
	if v := promptLabel(el); v != "" {
		return v
	}
	return strings.TrimSpace(el.AttrOr("aria-label", ""))
}

// formatMeetingDisplay renders the first meeting line as "days | time" with
// the location underneath. Online delivery overrides a missing location.
// Rows with no accepted meeting line fall back to the raw cell text.
func formatMeetingDisplay(lines []string, meetingCell string, online bool) string {
	var display MeetingDisplay
	if len(lines) > 0 {
		display = FormatMeetingLine(lines[0])
	}

	if online {
		display.Location = "Online"
	}

	if display.Days == "" && display.Time == "" && display.Location == "" {
		return normalizeMeetingText(meetingCell)
	}

	meeting := joinNonEmpty([]string{display.Days, display.Time}, " | ")
	if display.Location != "" {
		meeting += "\n" + display.Location
	} else {
		meeting += "\nOnline"
	}

	return normalizeMeetingText(meeting)
}

// normalizeMeetingText collapses whitespace per line while preserving the
// line breaks the display format depends on
func normalizeMeetingText(text string) string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = collapseText(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
