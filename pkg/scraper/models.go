package scraper

import "github.com/PuerkitoBio/goquery"

// Course represents a single section row extracted from the Workday course grid
type Course struct {
	Code                string   `json:"code"`
	Title               string   `json:"title"`
	SectionNumber       string   `json:"section_number"`
	Instructor          string   `json:"instructor"`
	Meeting             string   `json:"meeting"`
	MeetingLines        []string `json:"meetingLines,omitempty"`
	InstructionalFormat string   `json:"instructionalFormat"`
	StartDate           string   `json:"startDate"` // ISO YYYY-MM-DD
	IsLab               bool     `json:"isLab"`
	IsSeminar           bool     `json:"isSeminar"`
	IsDiscussion        bool     `json:"isDiscussion"`
}

// Grid is a located course table and its data rows
type Grid struct {
	Root *goquery.Selection
	Rows *goquery.Selection
}

// HeaderMaps resolves semantic fields to grid columns two ways: by the
// stable Workday column key when one is exposed, and by header position
// as a fallback. A field with no matching header has key "" and pos -1.
type HeaderMaps struct {
	ColKey map[string]string
	Pos    map[string]int
}

// MeetingLine is one fully parsed meeting-pattern sentence
type MeetingLine struct {
	StartDate    string // "2025-09-02"
	EndDate      string
	Days         []string // "Mon".."Sun", deduplicated, in order of appearance
	StartMinutes int      // minutes since midnight
	EndMinutes   int
	TimeLabel    string // "1:30 p.m. - 2:50 p.m."
	Location     string
}
