package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/bank"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the available question decks",
	Run: func(cmd *cobra.Command, args []string) {
		for _, slug := range bank.Slugs() {
			ref, _ := bank.Lookup(slug)
			line := fmt.Sprintf("%-12s %s", slug, ref.Title)
			if aliases := bank.Aliases(slug); len(aliases) > 0 {
				line += fmt.Sprintf("  (also: %s)", strings.Join(aliases, ", "))
			}
			fmt.Println(line)
		}
	},
}
