package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase favorites, completed sentences, and practice history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This erases all progress and practice history. Continue? [y/N] ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		deleted, err := st.PracticeRepo().DeleteAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("delete practice events: %w", err)
		}

		progressPath, err := progress.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve progress path: %w", err)
		}
		kv, err := progress.OpenFileKV(progressPath)
		if err != nil {
			return fmt.Errorf("open progress file: %w", err)
		}
		if err := progress.Reset(kv); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Printf("Removed %d practice events and cleared all progress.\n", deleted)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
