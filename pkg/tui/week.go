package tui

import (
	"fmt"
	"strings"

	"wdsched/pkg/config"
	"wdsched/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const dayColumnWidth = 18

var (
	gridTimeStyle     = lipgloss.NewStyle().Faint(true)
	gridConflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RunWeekTUI extracts courses, asks for a term, and prints the weekly grid
// with its conflict list
func RunWeekTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	courses, err := loadCourses(cfg)
	if err != nil {
		return err
	}

	if len(courses) == 0 {
		fmt.Println(errorStyle.Render("No course grid found on that page."))
		return nil
	}

	opts := scheduleOptions(cfg)

	term := cfg.DefaultTerm
	if term == "" {
		term = "first"
	}

	titleCaser := cases.Title(language.English)
	var termOptions []huh.Option[string]
	for _, t := range termSelectors(opts) {
		termOptions = append(termOptions, huh.NewOption(titleCaser.String(t)+" Term", t))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which term?").
				Options(termOptions...).
				Value(&term),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	week := schedule.Build(courses, term, opts)
	fmt.Println(RenderWeek(week))

	return nil
}

// scheduleOptions applies the config's grid window and term months over the defaults
func scheduleOptions(cfg *config.AppConfig) schedule.Options {
	opts := schedule.DefaultOptions()
	if cfg.GridStartHour > 0 {
		opts.StartHour = cfg.GridStartHour
	}
	if cfg.GridEndHour > opts.StartHour {
		opts.EndHour = cfg.GridEndHour
	}
	if len(cfg.TermMonths) > 0 {
		opts.TermMonths = cfg.TermMonths
	}
	return opts
}

func termSelectors(opts schedule.Options) []string {
	var terms []string
	for _, t := range []string{"first", "second"} {
		if _, ok := opts.TermMonths[t]; ok {
			terms = append(terms, t)
		}
	}
	for t := range opts.TermMonths {
		if t != "first" && t != "second" {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		terms = []string{"first", "second"}
	}
	return terms
}

// RenderWeek renders the slot grid as text, one row per half-hour slot,
// with conflicting cells highlighted and a conflict summary underneath
func RenderWeek(week *schedule.Week) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-6s", ""))
	for _, day := range schedule.Days {
		b.WriteString(listHeaderStyle.Render(pad(day, dayColumnWidth)))
	}
	b.WriteString("\n")

	for slot, startMin := range week.SlotStarts {
		b.WriteString(gridTimeStyle.Render(fmt.Sprintf("%-6s", formatSlotLabel(startMin))))

		for _, day := range schedule.Days {
			cell := ""
			conflict := false

			for _, g := range week.GroupsByDay[day] {
				if g.Start > slot || g.End <= slot {
					continue
				}
				var labels []string
				for _, ev := range g.Events {
					// name the block on its first slot only
					if ev.StartSlot == slot {
						name := ev.Code
						if name == "" {
							name = ev.Title
						}
						labels = append(labels, name)
					}
				}
				if len(labels) > 0 {
					cell = strings.Join(labels, "+")
				} else if len(g.Events) > 0 {
					cell = "│"
				}
				conflict = g.Conflict
				break
			}

			rendered := pad(cell, dayColumnWidth)
			if conflict {
				rendered = gridConflictStyle.Render(rendered)
			}
			b.WriteString(rendered)
		}
		b.WriteString("\n")
	}

	if len(week.Conflicts) > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Conflicts:"))
		b.WriteString("\n")
		for _, c := range week.Conflicts {
			b.WriteString(fmt.Sprintf("  %s: %s\n", c.Day, strings.Join(c.Codes, " ↔ ")))
		}
	}

	return b.String()
}

func formatSlotLabel(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// pad fits a cell to the column width, measuring display cells rather than
// bytes so the continuation marker does not skew the grid
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}
