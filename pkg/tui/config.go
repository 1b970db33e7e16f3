package tui

import (
	"fmt"
	"strconv"
	"time"

	"wdsched/pkg/config"

	"github.com/charmbracelet/huh"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Campus Timezone", "timezone"),
						huh.NewOption("Set Schedule Grid Hours", "hours"),
						huh.NewOption("Manage Saved Page Sources", "sources"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "timezone":
			err = runSetTimezoneTUI(cfg)
		case "hours":
			err = runSetGridHoursTUI(cfg)
		case "sources":
			err = runManageSourcesTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.wdsched.json) ---"))
			fmt.Printf("Timezone: %s\n", cfg.EffectiveTimezone())
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			if cfg.GridStartHour > 0 || cfg.GridEndHour > 0 {
				fmt.Printf("Grid Hours: %d:00 - %d:00\n", cfg.GridStartHour, cfg.GridEndHour)
			} else {
				fmt.Println("Grid Hours: default (8:00 - 21:00)")
			}
			fmt.Printf("Saved Sources: %d\n", len(cfg.SavedSources))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	color := cfg.AccentColor

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Accent color").
				Description("An ANSI 256 color number (e.g. 39) or hex value (e.g. #04B575).").
				Value(&color),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = color
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(GetCustomTheme(color).Focused.Title.Render("\n✅ Accent color saved.\n"))
	return nil
}

func runSetTimezoneTUI(cfg *config.AppConfig) error {
	tz := cfg.EffectiveTimezone()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Campus timezone").
				Description("IANA name, e.g. America/Vancouver. Used for ICS export times.").
				Value(&tz).
				Validate(func(s string) error {
					if _, err := time.LoadLocation(s); err != nil {
						return fmt.Errorf("unknown timezone %q", s)
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Timezone = tz
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Timezone set to %s\n", tz)))
	return nil
}

func runSetGridHoursTUI(cfg *config.AppConfig) error {
	start := strconv.Itoa(cfg.GridStartHour)
	end := strconv.Itoa(cfg.GridEndHour)
	if cfg.GridStartHour == 0 && cfg.GridEndHour == 0 {
		start, end = "8", "21"
	}

	validHour := func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > 24 {
			return fmt.Errorf("enter an hour between 0 and 24")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First visible hour").
				Value(&start).
				Validate(validHour),
			huh.NewInput().
				Title("Last visible hour (exclusive)").
				Value(&end).
				Validate(validHour),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	startHour, _ := strconv.Atoi(start)
	endHour, _ := strconv.Atoi(end)
	if endHour <= startHour {
		fmt.Println(errorStyle.Render("End hour must be after start hour; keeping previous values."))
		return nil
	}

	cfg.GridStartHour = startHour
	cfg.GridEndHour = endHour
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Schedule grid now spans %d:00 - %d:00\n", startHour, endHour)))
	return nil
}

func runManageSourcesTUI(cfg *config.AppConfig) error {
	if len(cfg.SavedSources) == 0 {
		fmt.Println(accentStyle.Render("No saved sources yet; they are remembered automatically when you load a page."))
		return nil
	}

	var keep []string
	options := make([]huh.Option[string], 0, len(cfg.SavedSources))
	for _, s := range cfg.SavedSources {
		options = append(options, huh.NewOption(s, s).Selected(true))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Saved page sources").
				Description("Deselect entries to forget them. Space = toggle, Enter = confirm.").
				Options(options...).
				Value(&keep),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedSources = keep
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Keeping %d source(s)\n", len(keep))))
	return nil
}
