// ABOUTME: Tests for the prompt assembler
// ABOUTME: Verifies placeholder substitution and context ordering

package pipeline

import (
	"strings"
	"testing"

	"github.com/sozialinfo/fragdoc/internal/models"
)

func TestNewAssembler_RejectsBrokenTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"empty", ""},
		{"missing query", "KONTEXT: {kontext}"},
		{"missing context", "FRAGE: {frage}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAssembler(tt.template); err == nil {
				t.Errorf("NewAssembler(%q) = nil error, want error", tt.template)
			}
		})
	}
}

func TestNewAssembler_DefaultTemplate(t *testing.T) {
	if _, err := NewAssembler(DefaultTemplate); err != nil {
		t.Errorf("NewAssembler(DefaultTemplate) failed: %v", err)
	}
}

func TestAssemble_SubstitutesQueryAndContext(t *testing.T) {
	a, err := NewAssembler("FRAGE: {frage}\nKONTEXT: {kontext}\nANTWORT:")
	if err != nil {
		t.Fatalf("NewAssembler() failed: %v", err)
	}

	retrieved := []models.ScoredChunk{
		{Chunk: models.Chunk{Content: "Erster Auszug. (a.pdf, Seite 1)"}, SimilarityScore: 0.9},
		{Chunk: models.Chunk{Content: "Zweiter Auszug. (b.pdf, Seite 2)"}, SimilarityScore: 0.5},
	}

	prompt := a.Assemble("Was gilt?", retrieved)

	if !strings.Contains(prompt, "FRAGE: Was gilt?") {
		t.Error("prompt does not contain the substituted query")
	}
	if strings.Contains(prompt, "{frage}") || strings.Contains(prompt, "{kontext}") {
		t.Error("prompt still contains placeholders")
	}

	// Context block keeps retrieval-rank order
	first := strings.Index(prompt, "Erster Auszug")
	second := strings.Index(prompt, "Zweiter Auszug")
	if first == -1 || second == -1 {
		t.Fatal("prompt is missing chunk content")
	}
	if first > second {
		t.Error("chunks are not in retrieval-rank order")
	}

	// Citation suffixes travel with the content into the prompt
	if !strings.Contains(prompt, "(a.pdf, Seite 1)") || !strings.Contains(prompt, "(b.pdf, Seite 2)") {
		t.Error("prompt is missing citation suffixes")
	}
}

func TestAssemble_EmptyRetrieval(t *testing.T) {
	a, err := NewAssembler("FRAGE: {frage}\nKONTEXT: {kontext}")
	if err != nil {
		t.Fatalf("NewAssembler() failed: %v", err)
	}

	prompt := a.Assemble("Frage ohne Kontext", nil)
	if !strings.Contains(prompt, "KONTEXT: ") {
		t.Errorf("unexpected prompt for empty retrieval: %q", prompt)
	}
}
