package tui

import (
	"sort"
	"strings"

	"wdsched/pkg/scraper"
)

// SortState tracks the current sort column and direction (1 ascending,
// -1 descending)
type SortState struct {
	Key string
	Dir int
}

// State is the explicit application state behind the course list views:
// the full extracted list, the filtered view of it, and the sort order.
// It is passed by reference to render/filter/sort helpers; there are no
// package-level course lists.
type State struct {
	Courses  []scraper.Course
	Filtered []scraper.Course
	Query    string
	Sort     SortState
}

// NewState wraps a freshly extracted course list
func NewState(courses []scraper.Course) *State {
	s := &State{Courses: courses, Sort: SortState{Dir: 1}}
	s.Refresh()
	return s
}

// Refresh rebuilds Filtered from Courses, applying the query then the sort
func (s *State) Refresh() {
	s.Filtered = filterCourses(s.Courses, s.Query)
	sortCourses(s.Filtered, s.Sort)
}

// SetQuery updates the search query and refreshes the filtered list
func (s *State) SetQuery(query string) {
	s.Query = query
	s.Refresh()
}

// ToggleSort sorts by the given key, flipping direction when the key is
// already active
func (s *State) ToggleSort(key string) {
	if s.Sort.Key == key {
		s.Sort.Dir = -s.Sort.Dir
	} else {
		s.Sort = SortState{Key: key, Dir: 1}
	}
	s.Refresh()
}

// filterCourses keeps courses whose code, title, section, or instructor
// contains the query, case-insensitively
func filterCourses(courses []scraper.Course, query string) []scraper.Course {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]scraper.Course(nil), courses...)
	}

	var filtered []scraper.Course
	for _, c := range courses {
		haystack := strings.ToLower(strings.Join([]string{
			c.Code, c.Title, c.SectionNumber, c.Instructor, c.InstructionalFormat,
		}, " "))
		if strings.Contains(haystack, query) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func sortCourses(courses []scraper.Course, s SortState) {
	if s.Key == "" {
		return
	}

	keyOf := func(c scraper.Course) string {
		switch s.Key {
		case "code":
			return c.Code
		case "title":
			return c.Title
		case "section":
			return c.SectionNumber
		case "instructor":
			return c.Instructor
		case "format":
			return c.InstructionalFormat
		case "start":
			return c.StartDate
		}
		return ""
	}

	sort.SliceStable(courses, func(i, j int) bool {
		a := strings.ToLower(keyOf(courses[i]))
		b := strings.ToLower(keyOf(courses[j]))
		if s.Dir < 0 {
			return a > b
		}
		return a < b
	})
}
