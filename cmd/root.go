package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wdsched",
	Short: "A CLI and TUI for Workday course schedules",
	Long: `wdsched reads the course registration grid out of a saved Workday page,
normalizes it into structured course records, and turns it into weekly
schedules, conflict reports, and CSV/ICS exports.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
