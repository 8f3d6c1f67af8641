package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		progressPath, err := progress.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve progress path: %w", err)
		}
		kv, err := progress.OpenFileKV(progressPath)
		if err != nil {
			return fmt.Errorf("open progress file: %w", err)
		}
		tracker := progress.Load(kv)

		fmt.Printf("Favorites: %d   Completed sentences: %d\n\n", tracker.FavoriteCount(), tracker.DoneCount())

		words, err := st.CatalogRepo().Words(cmd.Context())
		if err != nil {
			return fmt.Errorf("load words: %w", err)
		}
		perCategory := make(map[string]int)
		var names []string
		for _, w := range words {
			if perCategory[w.CategoryName] == 0 {
				names = append(names, w.CategoryName)
			}
			perCategory[w.CategoryName]++
		}
		sort.Strings(names)
		fmt.Printf("Words: %d\n", len(words))
		for _, name := range names {
			fmt.Printf("  %-12s %d\n", name, perCategory[name])
		}
		fmt.Println()

		records, err := st.PracticeRepo().Recent(cmd.Context(), 20)
		if err != nil {
			return fmt.Errorf("load practice events: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No practice sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-20s %-6s %6s %10s %9s\n", "WHEN", "MODE", "SEEN", "COMPLETED", "DURATION")
		for _, r := range records {
			fmt.Printf("%-20s %-6s %6d %10d %8ds\n",
				r.Timestamp.Format("2006-01-02 15:04"), r.Mode, r.ItemsSeen, r.Completed, r.DurationSecs)
		}
		return nil
	},
}
