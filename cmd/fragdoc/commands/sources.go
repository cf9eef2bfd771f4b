// ABOUTME: CLI command to list the corpus documents
// ABOUTME: Shows page and chunk counts per document in table or JSON form
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sozialinfo/fragdoc/internal/config"
	"github.com/sozialinfo/fragdoc/internal/pipeline"
)

// NewSourcesCmd creates the sources command
func NewSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the documents in the corpus",
		Long: `List every readable PDF in the corpus directory with its page count
and the number of chunks it yields under the configured chunking
parameters.

Examples:
  fragdoc sources
  fragdoc sources --format json`,
		RunE: runSources,
	}
}

type sourceRow struct {
	Document string `json:"document"`
	Pages    int    `json:"pages"`
	Chunks   int    `json:"chunks"`
}

func runSources(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	corpus, err := pipeline.LoadCorpus(cfg)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	chunksPerDoc := make(map[string]int)
	for _, ch := range corpus.Chunks {
		chunksPerDoc[ch.Document]++
	}

	rows := make([]sourceRow, len(corpus.Documents))
	for i, doc := range corpus.Documents {
		rows[i] = sourceRow{Document: doc.Name, Pages: doc.PageCount(), Chunks: chunksPerDoc[doc.Name]}
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DOCUMENT\tPAGES\tCHUNKS\n")
	fmt.Fprintf(w, "--------\t-----\t------\n")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\n", truncate(row.Document, 50), row.Pages, row.Chunks)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d document(s)\n", len(rows))
	}

	return nil
}
