package cmd

import (
	"fmt"
	"time"

	"wdsched/pkg/config"
	"wdsched/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wdsched configuration",
	Long:  "View or edit your local configuration settings (campus timezone, schedule grid hours, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setTZ, _ := cmd.Flags().GetString("set-timezone")
		if setTZ != "" {
			if _, err := time.LoadLocation(setTZ); err != nil {
				return fmt.Errorf("unknown timezone %q: %w", setTZ, err)
			}

			cfg.Timezone = setTZ
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Campus timezone saved as: %s\n", setTZ)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-timezone", "s", "", "Set the campus timezone used for ICS exports")
}
