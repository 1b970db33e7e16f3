package schedule

import (
	"reflect"
	"testing"

	"wdsched/pkg/scraper"
)

func mondayCourse(code string, timeRange string) scraper.Course {
	return scraper.Course{
		Code:      code,
		Title:     code + " Title",
		StartDate: "2025-09-02",
		MeetingLines: []string{
			"2025-09-02 - 2025-12-04 | Mon | " + timeRange + " | Library (LIB)",
		},
	}
}

func TestBuildConflictDetection(t *testing.T) {
	courses := []scraper.Course{
		mondayCourse("COSC_O 222", "10:00 a.m. - 11:00 a.m."),
		mondayCourse("MATH 101", "10:00 a.m. - 11:00 a.m."),
		// adjacent, not overlapping
		mondayCourse("PHYS 200", "11:00 a.m. - 12:00 p.m."),
	}

	week := Build(courses, "first", DefaultOptions())

	if len(week.Conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(week.Conflicts))
	}

	want := []string{"COSC_O 222", "MATH 101"}
	if !reflect.DeepEqual(week.Conflicts[0].Codes, want) {
		t.Errorf("conflict codes = %v, want %v", week.Conflicts[0].Codes, want)
	}

	for _, c := range week.Conflicts {
		for _, code := range c.Codes {
			if code == "PHYS 200" {
				t.Error("adjacent course reported as conflicting")
			}
		}
	}
}

func TestBuildSlotSnapping(t *testing.T) {
	courses := []scraper.Course{
		mondayCourse("COSC_O 222", "12:15 p.m. - 1:05 p.m."),
	}

	week := Build(courses, "first", DefaultOptions())

	events := week.EventsByDay["Mon"]
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}

	ev := events[0]
	// 12:15 rounds down to 12:00, 13:05 rounds up to 13:30
	if got := week.SlotStarts[ev.StartSlot]; got != 12*60 {
		t.Errorf("start slot minute = %d, want %d", got, 12*60)
	}
	if ev.Span() != 3 {
		t.Errorf("span = %d slots, want 3 (12:00-13:30)", ev.Span())
	}
}

func TestBuildTermFiltering(t *testing.T) {
	first := mondayCourse("COSC_O 222", "10:00 a.m. - 11:00 a.m.")
	second := mondayCourse("MATH 101", "10:00 a.m. - 11:00 a.m.")
	second.StartDate = "2026-01-05"
	noDate := mondayCourse("PHYS 200", "2:00 p.m. - 3:00 p.m.")
	noDate.StartDate = ""
	noDate.MeetingLines = []string{"Mon | 2:00 p.m. - 3:00 p.m."}

	week := Build([]scraper.Course{first, second, noDate}, "first", DefaultOptions())

	if got := len(week.EventsByDay["Mon"]); got != 1 {
		t.Fatalf("Mon events = %d, want only the first-term course", got)
	}
	if week.EventsByDay["Mon"][0].Code != "COSC_O 222" {
		t.Errorf("scheduled course = %q", week.EventsByDay["Mon"][0].Code)
	}
}

func TestBuildDeduplicatesRepeatedLines(t *testing.T) {
	course := mondayCourse("COSC_O 222", "10:00 a.m. - 11:00 a.m.")
	course.MeetingLines = append(course.MeetingLines, course.MeetingLines[0])

	week := Build([]scraper.Course{course}, "first", DefaultOptions())

	if got := len(week.EventsByDay["Mon"]); got != 1 {
		t.Errorf("Mon events = %d, want 1 after composite-key dedup", got)
	}
}

func TestBuildClampsToWindow(t *testing.T) {
	course := mondayCourse("COSC_O 222", "6:00 a.m. - 9:00 a.m.")

	week := Build([]scraper.Course{course}, "first", DefaultOptions())

	events := week.EventsByDay["Mon"]
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].StartSlot != 0 {
		t.Errorf("start slot = %d, want clamped to 0", events[0].StartSlot)
	}
}

func TestBuildGroupSweep(t *testing.T) {
	courses := []scraper.Course{
		mondayCourse("COSC_O 222", "10:00 a.m. - 12:00 p.m."),
		mondayCourse("MATH 101", "11:00 a.m. - 1:00 p.m."),
	}

	week := Build(courses, "first", DefaultOptions())

	var conflictGroups int
	for _, g := range week.GroupsByDay["Mon"] {
		if g.Conflict {
			conflictGroups++
			// the conflicting span is exactly 11:00-12:00
			if got := week.SlotStarts[g.Start]; got != 11*60 {
				t.Errorf("conflict group start = %d min, want %d", got, 11*60)
			}
			if got := g.End - g.Start; got != 2 {
				t.Errorf("conflict group span = %d slots, want 2", got)
			}
		}
	}
	if conflictGroups != 1 {
		t.Errorf("conflict groups = %d, want 1", conflictGroups)
	}

	if len(week.Overlaps) != 1 {
		t.Fatalf("overlaps = %d, want 1", len(week.Overlaps))
	}
	ov := week.Overlaps[0]
	if week.SlotStarts[ov.Start] != 11*60 || ov.End-ov.Start != 2 {
		t.Errorf("overlap = slots %d..%d", ov.Start, ov.End)
	}
}

func TestTermOf(t *testing.T) {
	months := DefaultOptions().TermMonths

	tests := []struct {
		date string
		want string
	}{
		{"2025-09-02", "first"},
		{"2025-08-28", "first"},
		{"2026-01-05", "second"},
		{"2025-12-29", "second"},
		{"2025-05-01", ""},
		{"", ""},
		{"garbage", ""},
	}

	for _, tt := range tests {
		if got := TermOf(tt.date, months); got != tt.want {
			t.Errorf("TermOf(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
