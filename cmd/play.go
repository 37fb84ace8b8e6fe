package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play [deck]",
	Short: "Start a quiz session",
	Long:  "Start (or resume) a quiz session. Unknown deck names fall back to the sample deck.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	slug := ""
	if len(args) > 0 {
		slug = args[0]
	}

	ref, known := bank.Resolve(slug)
	if !known {
		fmt.Printf("Unknown deck %q, playing %q instead.\n", slug, ref.Slug)
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

	return app.Run(app.Options{
		Slug:   ref.Slug,
		Title:  ref.Title,
		Source: bank.SourcePath(ref),
		Store:  st,
	})
}
