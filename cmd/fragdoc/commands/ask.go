// ABOUTME: CLI command to answer a single question from the corpus
// ABOUTME: Optionally prints the retrieved context alongside the answer
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sozialinfo/fragdoc/internal/config"
)

var (
	askShowContext bool
	askTopK        int
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <frage>",
		Short: "Answer one question from the document corpus",
		Long: `Answer a single question about the loaded PDF corpus.

The corpus is loaded and indexed before the question is answered, so the
first response of a process includes the index build time.

Examples:
  fragdoc ask "Welche Unterlagen benötige ich für ein Gesuch?"
  fragdoc ask --context "Was gilt für Hörgeräte?"
  fragdoc ask --format json "Sind Nebenkosten gedeckt?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().BoolVar(&askShowContext, "context", false, "Also print the retrieved passages")
	cmd.Flags().IntVar(&askTopK, "top-k", 0, "Override the number of retrieved passages")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := args[0]

	if cmd.Flags().Changed("top-k") {
		if err := validatePositiveInt(askTopK, "top-k"); err != nil {
			return err
		}
	}

	service, _, err := buildService(ctx, func(cfg *config.Config) {
		if askTopK > 0 {
			cfg.TopK = askTopK
		}
	})
	if err != nil {
		return err
	}

	answer, err := service.Ask(ctx, query)
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer.Text)

	if askShowContext && len(answer.UsedChunks) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Verwendete Textstellen:")
		}
		for i, ch := range answer.UsedChunks {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s %s\n", i+1, ch.Citation(), truncate(ch.Content, 100))
		}
	}

	return nil
}
