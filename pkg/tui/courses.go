package tui

import (
	"fmt"
	"os"
	"strings"

	"wdsched/pkg/config"
	"wdsched/pkg/exporter"
	"wdsched/pkg/scraper"
	"wdsched/pkg/storage"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// pickSource asks for a page file or URL, offering previously used sources
func pickSource(cfg *config.AppConfig) (string, error) {
	var source string

	if len(cfg.SavedSources) > 0 {
		options := make([]huh.Option[string], 0, len(cfg.SavedSources)+1)
		for _, s := range cfg.SavedSources {
			options = append(options, huh.NewOption(s, s))
		}
		options = append(options, huh.NewOption("Enter a new file or URL...", ""))

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which course page should be read?").
					Options(options...).
					Value(&source),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return "", err
		}
		if source != "" {
			return source, nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path or URL of the saved course page").
				Value(&source).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("source cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	source = strings.TrimSpace(source)

	// remember it for next time
	for _, s := range cfg.SavedSources {
		if s == source {
			return source, nil
		}
	}
	cfg.SavedSources = append(cfg.SavedSources, source)
	_ = config.Save(cfg)

	return source, nil
}

// loadCourses extracts courses from a chosen source with a spinner
func loadCourses(cfg *config.AppConfig) ([]scraper.Course, error) {
	source, err := pickSource(cfg)
	if err != nil {
		return nil, err
	}

	client := scraper.NewClient()
	var courses []scraper.Course
	var loadErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Reading course grid from %s...", source)).
		Action(func() {
			courses, loadErr = client.ExtractCoursesFromSource(source, strings.HasPrefix(source, "http"))
		}).
		Run()

	if loadErr != nil {
		return nil, fmt.Errorf("failed to extract courses: %w", loadErr)
	}

	return courses, nil
}

// RunCoursesTUI drives the course list view: search, sort, export, save
func RunCoursesTUI() error {
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
		fmt.Println("Make sure the saved page shows the registration table with Section and Meeting Patterns columns.")
		return nil
	}

	state := NewState(courses)
	if cfg.SortKey != "" {
		state.Sort = SortState{Key: cfg.SortKey, Dir: 1}
		if cfg.SortDescending {
			state.Sort.Dir = -1
		}
		state.Refresh()
	}

	for {
		fmt.Println(renderCourseList(state))

		var action string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(fmt.Sprintf("%d of %d courses shown", len(state.Filtered), len(state.Courses))).
					Options(
						huh.NewOption("🔎 Search", "search"),
						huh.NewOption("↕️  Sort", "sort"),
						huh.NewOption("📤 Export CSV", "csv"),
						huh.NewOption("📤 Export ICS", "ics"),
						huh.NewOption("💾 Save as schedule", "save"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "search":
			if err := promptSearch(state); err != nil {
				return err
			}
		case "sort":
			if err := promptSort(state); err != nil {
				return err
			}
		case "csv":
			if err := exportFiltered(state, "courses.csv", func(f *os.File) error {
				return exporter.GenerateCSV(state.Filtered, f)
			}); err != nil {
				return err
			}
		case "ics":
			if err := exportFiltered(state, "schedule.ics", func(f *os.File) error {
				return exporter.GenerateICS(state.Filtered, cfg.EffectiveTimezone(), f)
			}); err != nil {
				return err
			}
		case "save":
			if err := promptSaveSnapshot(state); err != nil {
				return err
			}
		}
	}
}

func promptSearch(state *State) error {
	query := state.Query
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search courses").
				Description("Matches code, title, section, instructor. Empty clears the filter.").
				Value(&query),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	state.SetQuery(query)
	return nil
}

func promptSort(state *State) error {
	key := state.Sort.Key
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sort by").
				Description("Choosing the active column flips the direction.").
				Options(
					huh.NewOption("Code", "code"),
					huh.NewOption("Title", "title"),
					huh.NewOption("Section", "section"),
					huh.NewOption("Instructor", "instructor"),
					huh.NewOption("Format", "format"),
					huh.NewOption("Start Date", "start"),
				).
				Value(&key),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	state.ToggleSort(key)
	return nil
}

func exportFiltered(state *State, defaultName string, write func(*os.File) error) error {
	if len(state.Filtered) == 0 {
		fmt.Println(errorStyle.Render("Nothing to export."))
		return nil
	}

	output := defaultName
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&output).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Exported %d courses to %s", len(state.Filtered), output)))
	return nil
}

func promptSaveSnapshot(state *State) error {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name for this schedule").
				Placeholder("Winter Term 1").
				Value(&name),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	snapshot, err := storage.SaveNew(name, state.Filtered)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Saved %q (%s)", snapshot.Name, snapshot.Meta())))
	return nil
}

// renderCourseList renders the filtered courses as a fixed-width table
func renderCourseList(state *State) string {
	var b strings.Builder

	b.WriteString(listHeaderStyle.Render(fmt.Sprintf("%-12s %-7s %-34s %-24s %-12s", "Code", "Sect", "Title", "Instructor", "Format")))
	b.WriteString("\n")

	for _, c := range state.Filtered {
		title := strings.ReplaceAll(c.Title, "\n", " ")
		if label := scraper.FormatLabel(c); label != "" {
			title = strings.TrimSpace(title + " " + label)
		}
		b.WriteString(fmt.Sprintf("%-12s %-7s %-34s %-24s %-12s\n",
			truncate(c.Code, 12),
			truncate(c.SectionNumber, 7),
			truncate(title, 34),
			truncate(c.Instructor, 24),
			truncate(c.InstructionalFormat, 12),
		))
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
