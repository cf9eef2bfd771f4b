// ABOUTME: CLI command for the interactive question/answer form
// ABOUTME: Builds the pipeline, then hands off to the Bubble Tea UI
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sozialinfo/fragdoc/internal/tui"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive question/answer form",
		Long: `Open an interactive form over the document corpus.

Enter asks the typed question, Ctrl+L clears the answer (the index is
untouched), Esc quits.`,
		RunE: runChat,
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	service, corpus, err := buildService(cmd.Context())
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Index über %d Dokumente (%d Textstellen) aufgebaut.\n",
			len(corpus.Documents), len(corpus.Chunks))
	}

	return tui.Run(service)
}
