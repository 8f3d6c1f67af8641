package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/app"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/speech"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := store.Seed(ctx, st.Client()); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	progressPath, err := progress.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve progress path: %w", err)
	}
	kv, err := progress.OpenFileKV(progressPath)
	if err != nil {
		return fmt.Errorf("open progress file: %w", err)
	}

	session := catalog.NewSession(st.CatalogRepo(), progress.Load(kv))
	if err := session.Load(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	return app.Run(app.Options{
		Session:      session,
		Speaker:      speech.NewExecSpeaker(),
		PracticeRepo: st.PracticeRepo(),
	})
}
