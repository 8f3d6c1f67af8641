package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/importer"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import words from a JSON or Excel catalog file",
	Args:  cobra.ExactArgs(1),
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

		res, err := importer.New(st.Client()).Import(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Imported: %d words created, %d updated, %d sentences, %d categories\n",
			res.WordsCreated, res.WordsUpdated, res.SentencesCreated, res.CategoriesCreated)
		for _, skip := range res.Skipped {
			fmt.Println("skipped:", skip)
		}
		return nil
	},
}
