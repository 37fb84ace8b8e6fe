package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/bankgen"
	"github.com/quizdeck/quizdeck/internal/llm"
)

var genCmd = &cobra.Command{
	Use:   "gen <topic>",
	Short: "Generate a question deck with an LLM",
	Long:  "Generate a multiple-choice question deck about a topic and write it as a bank file. Requires an API key for the configured provider.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic := strings.Join(args, " ")

		count, _ := cmd.Flags().GetInt("count")
		out, _ := cmd.Flags().GetString("out")
		language, _ := cmd.Flags().GetString("language")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		cfg := llm.ConfigFromEnv()
		if p, _ := cmd.Flags().GetString("provider"); p != "" {
			cfg.Provider = p
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		fmt.Printf("Generating %d questions about %q with %s...\n", count, topic, provider.ModelID())

		questions, err := bankgen.NewGenerator(provider).Generate(ctx, bankgen.Request{
			Topic:      topic,
			Count:      count,
			Language:   language,
			Difficulty: difficulty,
		})
		if err != nil {
			return err
		}

		data, err := bankgen.Marshal(questions)
		if err != nil {
			return fmt.Errorf("encode bank: %w", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write bank file: %w", err)
		}

		fmt.Printf("Wrote %d questions to %s\n", len(questions), out)
		return nil
	},
}

func init() {
	genCmd.Flags().Int("count", 10, "Number of questions to generate")
	genCmd.Flags().String("out", "bank.json", "Output bank file path")
	genCmd.Flags().String("language", "", "Language for the generated text")
	genCmd.Flags().String("difficulty", "", "Target difficulty (e.g. beginner, advanced)")
	genCmd.Flags().String("provider", "", "LLM provider (anthropic, openai, gemini; overrides QUIZDECK_LLM_PROVIDER)")
}
