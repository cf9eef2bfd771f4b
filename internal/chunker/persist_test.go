// ABOUTME: Tests for chunk persistence
// ABOUTME: Verifies the JSON round-trip reproduces content and metadata exactly

package chunker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sozialinfo/fragdoc/internal/models"
)

func TestSaveChunks_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.json")

	original := []models.Chunk{
		{ID: "chunk_1", Content: "Die Nebenkosten können übernommen werden. (a.pdf, Seite 1)", Document: "a.pdf", Page: 1, Sequence: 0},
		{ID: "chunk_2", Content: "Hörgeräte sind beitragsberechtigt. (a.pdf, Seite 2)", Document: "a.pdf", Page: 2, Sequence: 1},
		{ID: "chunk_3", Content: "Zweites Dokument. (b.pdf, Seite 1)", Document: "b.pdf", Page: 1, Sequence: 0},
	}

	if err := SaveChunks(path, original); err != nil {
		t.Fatalf("SaveChunks() failed: %v", err)
	}

	loaded, err := LoadChunks(path)
	if err != nil {
		t.Fatalf("LoadChunks() failed: %v", err)
	}

	if len(loaded) != len(original) {
		t.Fatalf("loaded %d chunks, want %d", len(loaded), len(original))
	}
	for i := range original {
		if loaded[i].Content != original[i].Content {
			t.Errorf("chunk %d: Content = %q, want %q", i, loaded[i].Content, original[i].Content)
		}
		if loaded[i].Document != original[i].Document {
			t.Errorf("chunk %d: Document = %q, want %q", i, loaded[i].Document, original[i].Document)
		}
		if loaded[i].Page != original[i].Page {
			t.Errorf("chunk %d: Page = %d, want %d", i, loaded[i].Page, original[i].Page)
		}
		if loaded[i].Sequence != original[i].Sequence {
			t.Errorf("chunk %d: Sequence = %d, want %d", i, loaded[i].Sequence, original[i].Sequence)
		}
		if loaded[i].ID == "" {
			t.Errorf("chunk %d: loaded chunk has empty ID", i)
		}
	}
}

func TestSaveChunks_NoASCIIEscaping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.json")

	chunks := []models.Chunk{
		{ID: "chunk_1", Content: "Gesuch für Hörgeräte gemäss Wegleitung. (Wegleitung.pdf, Seite 3)", Document: "Wegleitung.pdf", Page: 3},
	}
	if err := SaveChunks(path, chunks); err != nil {
		t.Fatalf("SaveChunks() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading chunk file: %v", err)
	}
	if strings.Contains(string(data), `\u`) {
		t.Error("chunk file contains escaped unicode; German text should be written verbatim")
	}
	if !strings.Contains(string(data), "Hörgeräte") {
		t.Error("chunk file should contain the raw umlaut text")
	}
}

func TestLoadChunks_MissingFile(t *testing.T) {
	if _, err := LoadChunks(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing chunk file")
	}
}
