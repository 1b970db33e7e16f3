package cmd

import (
	"fmt"
	"os"
	"strings"

	"wdsched/pkg/config"
	"wdsched/pkg/exporter"
	"wdsched/pkg/scraper"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <page.html | url>",
	Short: "Directly export an extracted schedule to an ICS or CSV file",
	Long:  `Extract the course grid from a saved Workday page and write it straight to a calendar or spreadsheet file without using the interactive TUI.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		format = strings.ToLower(format)
		if format != "ics" && format != "csv" {
			return fmt.Errorf("unsupported format %q (want ics or csv)", format)
		}

		if output == "" {
			output = "schedule." + format
		}

		source := args[0]
		client := scraper.NewClient()

		var courses []scraper.Course
		var err error

		_ = spinner.New().
			Title(fmt.Sprintf("Extracting courses from %s...", source)).
			Action(func() {
				courses, err = client.ExtractCoursesFromSource(source, strings.HasPrefix(source, "http"))
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to extract courses: %w", err)
		}

		if len(courses) == 0 {
			return fmt.Errorf("no course grid found in %s", source)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		switch format {
		case "csv":
			err = exporter.GenerateCSV(courses, file)
		case "ics":
			cfg, cfgErr := config.Load()
			if cfgErr != nil {
				return cfgErr
			}
			err = exporter.GenerateICS(courses, cfg.EffectiveTimezone(), file)
		}
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", format, err)
		}

		fmt.Printf("Successfully exported %d courses to %s\n", len(courses), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "ics", "Export format: ics or csv")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default schedule.<format>)")
}
