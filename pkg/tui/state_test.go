package tui

import (
	"testing"

	"wdsched/pkg/scraper"
)

func stateFixture() *State {
	return NewState([]scraper.Course{
		{Code: "MATH 101", Title: "Calculus I", SectionNumber: "101", Instructor: "Bob Jones"},
		{Code: "COSC_O 222", Title: "Data Structures", SectionNumber: "L2D", Instructor: "Alice Smith"},
		{Code: "COSC_O 222", Title: "Data Structures", SectionNumber: "L2A", Instructor: "N/A", IsLab: true},
	})
}

func TestStateSearch(t *testing.T) {
	state := stateFixture()

	state.SetQuery("alice")
	if len(state.Filtered) != 1 || state.Filtered[0].SectionNumber != "L2D" {
		t.Errorf("filtered = %+v", state.Filtered)
	}

	state.SetQuery("cosc")
	if len(state.Filtered) != 2 {
		t.Errorf("filtered = %d, want 2", len(state.Filtered))
	}

	// clearing restores everything
	state.SetQuery("")
	if len(state.Filtered) != 3 {
		t.Errorf("filtered = %d, want all 3", len(state.Filtered))
	}
}

func TestStateSearchDoesNotMutateCourses(t *testing.T) {
	state := stateFixture()
	state.SetQuery("nothing matches this")

	if len(state.Filtered) != 0 {
		t.Errorf("filtered = %d, want 0", len(state.Filtered))
	}
	if len(state.Courses) != 3 {
		t.Errorf("courses = %d, want 3", len(state.Courses))
	}
}

func TestStateToggleSort(t *testing.T) {
	state := stateFixture()

	state.ToggleSort("code")
	if state.Filtered[0].Code != "COSC_O 222" {
		t.Errorf("ascending sort first = %q", state.Filtered[0].Code)
	}

	// same key flips direction
	state.ToggleSort("code")
	if state.Filtered[0].Code != "MATH 101" {
		t.Errorf("descending sort first = %q", state.Filtered[0].Code)
	}

	// new key resets to ascending
	state.ToggleSort("section")
	if state.Sort.Dir != 1 || state.Filtered[0].SectionNumber != "101" {
		t.Errorf("sort = %+v, first section = %q", state.Sort, state.Filtered[0].SectionNumber)
	}
}

func TestStateSortIsStable(t *testing.T) {
	state := stateFixture()
	state.ToggleSort("code")

	// the two COSC_O rows keep their original relative order
	if state.Filtered[0].SectionNumber != "L2D" || state.Filtered[1].SectionNumber != "L2A" {
		t.Errorf("stable sort violated: %q then %q", state.Filtered[0].SectionNumber, state.Filtered[1].SectionNumber)
	}
}
