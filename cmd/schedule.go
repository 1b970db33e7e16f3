package cmd

import (
	"fmt"
	"strings"

	"wdsched/pkg/config"
	"wdsched/pkg/schedule"
	"wdsched/pkg/scraper"
	"wdsched/pkg/tui"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <page.html | url>",
	Short: "Print the weekly schedule grid with conflicts",
	Long: `Extract the course grid from a saved Workday page, place the meetings of
the requested term onto a half-hour weekly grid, and print it together
with any time conflicts between sections.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term, _ := cmd.Flags().GetString("term")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		source := args[0]
		client := scraper.NewClient()
		courses, err := client.ExtractCoursesFromSource(source, strings.HasPrefix(source, "http"))
		if err != nil {
			return err
		}

		if len(courses) == 0 {
			return fmt.Errorf("no course grid found in %s", source)
		}

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

		week := schedule.Build(courses, term, opts)
		fmt.Println(tui.RenderWeek(week))

		if len(week.Conflicts) == 0 {
			fmt.Println("No conflicts.")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringP("term", "t", "first", "Term selector (first or second)")
}
