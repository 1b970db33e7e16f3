package tui

import (
	"fmt"
	"os"

	"wdsched/pkg/config"
	"wdsched/pkg/exporter"
	"wdsched/pkg/storage"

	"github.com/charmbracelet/huh"
)

// RunSnapshotsTUI lists saved schedules and lets the user browse, export,
// or delete them
func RunSnapshotsTUI() error {
	for {
		snapshots, err := storage.Load()
		if err != nil {
			return err
		}

		if len(snapshots) == 0 {
			fmt.Println(accentStyle.Render("No saved schedules yet."))
			fmt.Println("Save one from the course list view first.")
			return nil
		}

		options := make([]huh.Option[string], 0, len(snapshots)+1)
		for _, s := range snapshots {
			options = append(options, huh.NewOption(fmt.Sprintf("%s — %s", s.Name, s.Meta()), s.ID))
		}
		options = append(options, huh.NewOption("Back to Main Menu", ""))

		var id string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(fmt.Sprintf("Saved schedules (%d of %d slots used)", len(snapshots), storage.MaxSnapshots)).
					Options(options...).
					Value(&id),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}
		if id == "" {
			return nil
		}

		if err := runSnapshotActions(id); err != nil {
			return err
		}
	}
}

func runSnapshotActions(id string) error {
	snapshot, err := storage.Get(id)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(snapshot.Name).
				Description(snapshot.Meta()).
				Options(
					huh.NewOption("📋 Browse courses", "browse"),
					huh.NewOption("📤 Export CSV", "csv"),
					huh.NewOption("📤 Export ICS", "ics"),
					huh.NewOption("🗑 Delete", "delete"),
					huh.NewOption("Back", "back"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg, _ := config.Load()
	state := NewState(snapshot.Courses)

	switch action {
	case "browse":
		fmt.Println(renderCourseList(state))
	case "csv":
		return exportFiltered(state, "courses.csv", func(f *os.File) error {
			return exporter.GenerateCSV(state.Filtered, f)
		})
	case "ics":
		return exportFiltered(state, "schedule.ics", func(f *os.File) error {
			return exporter.GenerateICS(state.Filtered, cfg.EffectiveTimezone(), f)
		})
	case "delete":
		var confirmed bool
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %q?", snapshot.Name)).
					Value(&confirmed),
			),
		).WithTheme(GetTheme())

		if err := confirm.Run(); err != nil {
			return err
		}
		if confirmed {
			if err := storage.Delete(id); err != nil {
				return err
			}
			fmt.Println(accentStyle.Render("Deleted."))
		}
	}

	return nil
}
