package schedule

import (
	"fmt"
	"sort"
	"strings"

	"wdsched/pkg/scraper"
)

// Days are the weekday columns of the schedule grid
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// Options controls the grid window and the term month policy. The month
// sets are policy, not law: academic calendars differ, so they live in the
// user config rather than in code.
type Options struct {
	StartHour   int
	EndHour     int // exclusive last visible hour
	SlotMinutes int
	// TermMonths maps a term selector ("first"/"second") to the calendar
	// months a course's start date may fall in
	TermMonths map[string][]int
}

// DefaultOptions matches the UBC Okanagan calendar: 30-minute slots from
// 08:00 to 21:00, winter term 1 starting Aug/Sep and term 2 Dec/Jan.
func DefaultOptions() Options {
	return Options{
		StartHour:   8,
		EndHour:     21,
		SlotMinutes: 30,
		TermMonths: map[string][]int{
			"first":  {8, 9},
			"second": {12, 1},
		},
	}
}

// Event is one course meeting placed on the slot grid for a single weekday
type Event struct {
	ID        int
	Day       string
	Code      string
	Title     string
	Label     string // "[Laboratory]" etc.
	TimeLabel string
	StartSlot int
	EndSlot   int // exclusive
}

// Span reports the number of slots the event occupies
func (e Event) Span() int { return e.EndSlot - e.StartSlot }

// Group is a maximal run of slots in one weekday column during which the
// same set of events is active. A group holding two or more events is a
// conflict cluster.
type Group struct {
	Start    int // slot index
	End      int // exclusive
	Events   []Event
	Conflict bool
}

// Conflict summarizes one colliding course pair or cluster, deduplicated
// across the whole week by its sorted code tuple.
type Conflict struct {
	Codes []string
	Day   string
}

// Overlap is the intersecting slot range of two events in one column,
// exposed so renderers can highlight exactly the shared sub-region.
type Overlap struct {
	Day        string
	A, B       int // event IDs
	Start, End int // slot range of the intersection, End exclusive
}

// Week is a fully built weekly schedule. It is rebuilt from scratch on
// every call; nothing in it is mutated incrementally.
type Week struct {
	Options     Options
	SlotStarts  []int // minutes since midnight per slot row
	EventsByDay map[string][]Event
	GroupsByDay map[string][]Group
	Conflicts   []Conflict
	Overlaps    []Overlap
}

// Build places every course meeting for the requested term onto the slot
// grid and sweeps each weekday column for conflict groups. Courses whose
// start month falls outside the term's month set, or with no parseable
// start date, are left out of the grid (they still belong in list views).
func Build(courses []scraper.Course, term string, opts Options) *Week {
	week := &Week{
		Options:     opts,
		SlotStarts:  slotStarts(opts),
		EventsByDay: make(map[string][]Event),
		GroupsByDay: make(map[string][]Group),
	}
	for _, d := range Days {
		week.EventsByDay[d] = nil
	}

	seen := make(map[string]bool)
	eventID := 0

	for _, course := range courses {
		startDate := course.StartDate
		if startDate == "" && len(course.MeetingLines) > 0 {
			startDate = scraper.ExtractStartDate(course.MeetingLines[0])
		}

		if TermOf(startDate, opts.TermMonths) != term {
			continue
		}

		label := scraper.FormatLabel(course)

		for _, line := range course.MeetingLines {
			parsed := scraper.ParseMeetingLine(line)
			if parsed == nil {
				continue
			}

			startSlot, endSlot, ok := slotRange(parsed.StartMinutes, parsed.EndMinutes, opts)
			if !ok {
				continue
			}

			for _, day := range parsed.Days {
				if _, tracked := week.EventsByDay[day]; !tracked {
					continue
				}

				// several parse paths can yield the same line; key on
				// everything that identifies the placed block
				key := strings.Join([]string{
					day, course.Code, course.Title, parsed.TimeLabel,
					fmt.Sprint(startSlot), fmt.Sprint(endSlot - startSlot),
				}, "|")
				if seen[key] {
					continue
				}
				seen[key] = true

				week.EventsByDay[day] = append(week.EventsByDay[day], Event{
					ID:        eventID,
					Day:       day,
					Code:      course.Code,
					Title:     course.Title,
					Label:     label,
					TimeLabel: parsed.TimeLabel,
					StartSlot: startSlot,
					EndSlot:   endSlot,
				})
				eventID++
			}
		}
	}

	for _, day := range Days {
		events := week.EventsByDay[day]
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].StartSlot != events[j].StartSlot {
				return events[i].StartSlot < events[j].StartSlot
			}
			return events[i].EndSlot < events[j].EndSlot
		})
		week.EventsByDay[day] = events
		week.GroupsByDay[day] = sweepGroups(events, len(week.SlotStarts))
	}

	week.Conflicts = summarizeConflicts(week.GroupsByDay)
	week.Overlaps = pairwiseOverlaps(week.EventsByDay)

	return week
}

// slotStarts builds the slot boundary times: 8:00, 8:30, ... up to EndHour
func slotStarts(opts Options) []int {
	var slots []int
	for m := opts.StartHour * 60; m < opts.EndHour*60; m += opts.SlotMinutes {
		slots = append(slots, m)
	}
	return slots
}

// slotRange clamps a meeting into the visible window and snaps it outward
// to whole slots: start rounds down, end rounds up. Short or odd-aligned
// meetings widen slightly but never start mid-slot.
func slotRange(startMin, endMin int, opts Options) (int, int, bool) {
	windowStart := opts.StartHour * 60
	windowEnd := opts.EndHour * 60

	startMin = clamp(startMin, windowStart, windowEnd)
	endMin = clamp(endMin, windowStart, windowEnd)

	startMin = startMin / opts.SlotMinutes * opts.SlotMinutes
	if rem := endMin % opts.SlotMinutes; rem != 0 {
		endMin += opts.SlotMinutes - rem
	}

	startSlot := (startMin - windowStart) / opts.SlotMinutes
	endSlot := (endMin - windowStart) / opts.SlotMinutes

	totalSlots := (windowEnd - windowStart) / opts.SlotMinutes
	if endSlot > totalSlots {
		endSlot = totalSlots
	}

	if startSlot < 0 || endSlot <= startSlot {
		return 0, 0, false
	}
	return startSlot, endSlot, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sweepGroups walks a day column slot by slot, grouping consecutive slots
// whose active event sets are identical
func sweepGroups(events []Event, totalSlots int) []Group {
	var groups []Group
	var current *Group
	currentKey := ""

	for slot := 0; slot < totalSlots; slot++ {
		var active []Event
		for _, ev := range events {
			if ev.StartSlot <= slot && ev.EndSlot > slot {
				active = append(active, ev)
			}
		}

		if len(active) == 0 {
			if current != nil {
				groups = append(groups, *current)
				current = nil
			}
			currentKey = ""
			continue
		}

		ids := make([]string, len(active))
		for i, ev := range active {
			ids[i] = fmt.Sprint(ev.ID)
		}
		key := strings.Join(ids, "|")

		if current != nil && key == currentKey {
			current.End = slot + 1
			continue
		}

		if current != nil {
			groups = append(groups, *current)
		}
		current = &Group{
			Start:    slot,
			End:      slot + 1,
			Events:   active,
			Conflict: len(active) > 1,
		}
		currentKey = key
	}

	if current != nil {
		groups = append(groups, *current)
	}

	return groups
}

// summarizeConflicts flattens conflict groups into a deduplicated list of
// colliding code tuples
func summarizeConflicts(groupsByDay map[string][]Group) []Conflict {
	seen := make(map[string]bool)
	var conflicts []Conflict

	for _, day := range Days {
		for _, g := range groupsByDay[day] {
			if !g.Conflict {
				continue
			}

			codeSet := make(map[string]bool)
			for _, ev := range g.Events {
				code := ev.Code
				if code == "" {
					code = ev.Title
				}
				if code != "" {
					codeSet[code] = true
				}
			}
			if len(codeSet) < 2 {
				continue
			}

			codes := make([]string, 0, len(codeSet))
			for c := range codeSet {
				codes = append(codes, c)
			}
			sort.Strings(codes)

			key := strings.Join(codes, "|")
			if seen[key] {
				continue
			}
			seen[key] = true

			conflicts = append(conflicts, Conflict{Codes: codes, Day: day})
		}
	}

	return conflicts
}

// pairwiseOverlaps computes the exact intersecting slot range of every
// colliding event pair within each day column
func pairwiseOverlaps(eventsByDay map[string][]Event) []Overlap {
	var overlaps []Overlap

	for _, day := range Days {
		events := eventsByDay[day]
		for i := 0; i < len(events); i++ {
			for j := i + 1; j < len(events); j++ {
				start := max(events[i].StartSlot, events[j].StartSlot)
				end := min(events[i].EndSlot, events[j].EndSlot)
				if end <= start {
					continue
				}
				overlaps = append(overlaps, Overlap{
					Day:   day,
					A:     events[i].ID,
					B:     events[j].ID,
					Start: start,
					End:   end,
				})
			}
		}
	}

	return overlaps
}
