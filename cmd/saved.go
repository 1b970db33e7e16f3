package cmd

import (
	"fmt"

	"wdsched/pkg/storage"
	"wdsched/pkg/tui"

	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved schedule snapshots",
	Long:  `List, browse, export, or delete the schedule snapshots saved from the course list view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, _ := cmd.Flags().GetBool("list")
		deleteID, _ := cmd.Flags().GetString("delete")

		if deleteID != "" {
			if err := storage.Delete(deleteID); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		}

		if list {
			snapshots, err := storage.Load()
			if err != nil {
				return err
			}
			if len(snapshots) == 0 {
				fmt.Println("No saved schedules.")
				return nil
			}
			for _, s := range snapshots {
				fmt.Printf("%s  %-24s %s\n", s.ID, s.Name, s.Meta())
			}
			return nil
		}

		return tui.RunSnapshotsTUI()
	},
}

func init() {
	rootCmd.AddCommand(savedCmd)

	savedCmd.Flags().BoolP("list", "l", false, "List saved schedules non-interactively")
	savedCmd.Flags().StringP("delete", "d", "", "Delete the saved schedule with the given ID")
}
