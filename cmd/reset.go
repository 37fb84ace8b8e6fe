package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset [deck]",
	Short: "Delete the saved session for a deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := ""
		if len(args) > 0 {
			slug = args[0]
		}
		ref, _ := bank.Resolve(slug)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		codec := quiz.NewCodec(st.Snapshots(), ref.Slug)
		if err := codec.Delete(); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		fmt.Printf("Saved session for %q deleted.\n", ref.Slug)
		return nil
	},
}
