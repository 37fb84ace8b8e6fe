package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [deck]",
	Short: "Show past attempts for a deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := ""
		if len(args) > 0 {
			slug = args[0]
		}
		ref, _ := bank.Resolve(slug)

		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		attempts, err := st.Attempts(context.Background(), ref.Slug, limit)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Printf("No finished attempts for %q yet.\n", ref.Slug)
			return nil
		}

		fmt.Printf("Attempts for %q:\n", ref.Slug)
		for _, a := range attempts {
			total := a.Correct + a.Incorrect + a.Unanswered
			fmt.Printf("  %s  %2d/%2d correct, %d unanswered\n",
				a.FinishedAt.Local().Format("2006-01-02 15:04"), a.Correct, total, a.Unanswered)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Maximum number of attempts to show (0 = all)")
}
