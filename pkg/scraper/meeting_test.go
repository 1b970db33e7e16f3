package scraper

import (
	"reflect"
	"testing"
)

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		hour, minute int
		period       string
		want         int // minutes since midnight
	}{
		{1, 30, "p", 13*60 + 30},
		{12, 0, "a", 0},
		{12, 0, "p", 12 * 60},
		{9, 5, "a", 9*60 + 5},
		{11, 59, "P", 23*60 + 59},
	}

	for _, tt := range tests {
		if got := To24Hour(tt.hour, tt.minute, tt.period); got != tt.want {
			t.Errorf("To24Hour(%d, %d, %q) = %d, want %d", tt.hour, tt.minute, tt.period, got, tt.want)
		}
	}
}

func TestMeetingSentenceFilter(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		// all three anchors present
		{"2025-09-02 - 2025-12-04 | Mon Wed | 1:30 p.m. - 2:50 p.m. | Library (LIB)", true},
		// missing time range
		{"2025-09-02 - 2025-12-04 | Mon Wed | Library (LIB)", false},
		// missing date range
		{"Mon Wed | 1:30 p.m. - 2:50 p.m. | Library (LIB)", false},
		// missing day token
		{"2025-09-02 - 2025-12-04 | 1:30 p.m. - 2:50 p.m. | Library (LIB)", false},
		{"Open seats remaining: 12", false},
	}

	for _, tt := range tests {
		if got := isMeetingSentence(tt.line); got != tt.want {
			t.Errorf("isMeetingSentence(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParseMeetingLine(t *testing.T) {
	line := "2025-09-02 - 2025-12-04 | Mon Wed | 1:30 p.m. - 2:50 p.m. | Library (LIB) | Floor 2 | Room 305"

	got := ParseMeetingLine(line)
	if got == nil {
		t.Fatal("ParseMeetingLine returned nil for a valid line")
	}

	if got.StartDate != "2025-09-02" || got.EndDate != "2025-12-04" {
		t.Errorf("dates = %s..%s, want 2025-09-02..2025-12-04", got.StartDate, got.EndDate)
	}
	if !reflect.DeepEqual(got.Days, []string{"Mon", "Wed"}) {
		t.Errorf("days = %v, want [Mon Wed]", got.Days)
	}
	if got.StartMinutes != 13*60+30 {
		t.Errorf("start minutes = %d, want %d", got.StartMinutes, 13*60+30)
	}
	if got.EndMinutes != 14*60+50 {
		t.Errorf("end minutes = %d, want %d", got.EndMinutes, 14*60+50)
	}
	if got.Location != "Library (LIB)" {
		t.Errorf("location = %q, want %q", got.Location, "Library (LIB)")
	}
}

func TestParseMeetingLineRejectsInvertedTimes(t *testing.T) {
	line := "2025-09-02 - 2025-12-04 | Mon | 3:00 p.m. - 1:00 p.m. | Library (LIB)"
	if got := ParseMeetingLine(line); got != nil {
		t.Errorf("expected nil for inverted time range, got %+v", got)
	}
}

func TestFormatMeetingLine(t *testing.T) {
	line := "2025-09-02 - 2025-12-04 | Mon Wed | 1:30 p.m. - 2:50 p.m. | Library (LIB) | Floor 2 | Room 305"

	got := FormatMeetingLine(line)
	if got.Days != "Mon / Wed" {
		t.Errorf("days = %q, want %q", got.Days, "Mon / Wed")
	}
	if got.Time != "1:30 p.m. - 2:50 p.m." {
		t.Errorf("time = %q, want %q", got.Time, "1:30 p.m. - 2:50 p.m.")
	}
	if got.Location != "Library (LIB)\nFloor 2 | Room 305" {
		t.Errorf("location = %q", got.Location)
	}
}

func TestExtractStartDate(t *testing.T) {
	if got := ExtractStartDate("2025-09-02 - 2025-12-04 | Mon"); got != "2025-09-02" {
		t.Errorf("ExtractStartDate = %q, want 2025-09-02", got)
	}
	if got := ExtractStartDate("no date"); got != "" {
		t.Errorf("ExtractStartDate = %q, want empty", got)
	}
}
