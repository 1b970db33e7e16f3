package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"wdsched/pkg/scraper"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <page.html | url>",
	Short: "Extract courses from a saved Workday page",
	Long: `Parse the course grid out of a saved Workday HTML page (or a URL) and
print the normalized course records. With --json the full records are
emitted for scripting; the default output is a readable table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		source := args[0]
		client := scraper.NewClient()

		useCache := strings.HasPrefix(source, "http") && !noCache
		courses, err := client.ExtractCoursesFromSource(source, useCache)
		if err != nil {
			return err
		}

		if len(courses) == 0 {
			return fmt.Errorf("no course grid found in %s", source)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(courses)
		}

		fmt.Printf("%-12s %-7s %-36s %-24s %-12s %s\n", "CODE", "SECT", "TITLE", "INSTRUCTOR", "FORMAT", "START")
		for _, c := range courses {
			title := strings.ReplaceAll(c.Title, "\n", " ")
			fmt.Printf("%-12s %-7s %-36s %-24s %-12s %s\n",
				c.Code, c.SectionNumber, clip(title, 36), clip(c.Instructor, 24), clip(c.InstructionalFormat, 12), c.StartDate)
		}
		fmt.Printf("\n%d courses\n", len(courses))

		return nil
	},
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().Bool("json", false, "Emit full course records as JSON")
	extractCmd.Flags().Bool("no-cache", false, "Skip the extraction cache for URL sources")
}
