// ABOUTME: CLI command to chunk the corpus and persist the chunk list
// ABOUTME: Pure text processing; no embedding or model backend needed
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sozialinfo/fragdoc/internal/chunker"
	"github.com/sozialinfo/fragdoc/internal/config"
	"github.com/sozialinfo/fragdoc/internal/pipeline"
)

var (
	ingestOutFile string
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Chunk the corpus and write the chunk list to disk",
		Long: `Load the PDF corpus, split it into overlapping chunks, and write the
chunk list as JSON records for offline inspection.

Each record carries the chunk text (with its citation suffix) and the
source metadata. No embeddings are computed; this command works without
an API key.

Examples:
  fragdoc ingest
  fragdoc ingest --out /tmp/chunks.json`,
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestOutFile, "out", "", "Output file (default: FRAGDOC_CHUNKS_FILE)")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	corpus, err := pipeline.LoadCorpus(cfg)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	outFile := ingestOutFile
	if outFile == "" {
		outFile = cfg.ChunksFile
	}

	if err := chunker.SaveChunks(outFile, corpus.Chunks); err != nil {
		return fmt.Errorf("saving chunks: %w", err)
	}

	if !quiet {
		pages := 0
		for _, doc := range corpus.Documents {
			pages += doc.PageCount()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d document(s), %d page(s), %d chunk(s) written to %s\n",
			len(corpus.Documents), pages, len(corpus.Chunks), outFile)
	}

	return nil
}
