// ABOUTME: Assembles the fixed instruction prompt from query and retrieved chunks
// ABOUTME: Chunk contents already carry their citation suffixes
package pipeline

import (
	"fmt"
	"strings"

	"github.com/sozialinfo/fragdoc/internal/models"
)

// DefaultTemplate is the fixed German instruction template. It demands
// in-language, concise answers with a "Dokument, Seite" citation that is
// traceable to the retrieved chunks. Static configuration, never editable
// at request time.
const DefaultTemplate = `INSTRUKTIONEN: Du musst nur auf Deutsch antworten.
Du bist ein hilfreicher KI-Agent für Sozialarbeitende im Bereich der individuellen Finanzhilfe.
Suche in den unten stehenden Dokumentauszügen und gib eine möglichst genaue und knappe Antwort auf die Frage.
Wenn die Auszüge keine Antwort hergeben, sage, dass du es nicht weisst.
Gib immer eine Quellenangabe zu deiner Antwort an (zum Beispiel "WegleitungRIF.pdf, Seite 3").

FRAGE: {frage}

KONTEXT:
{kontext}

ANTWORT:`

const (
	placeholderQuery   = "{frage}"
	placeholderContext = "{kontext}"
)

// Assembler substitutes the query and the retrieved context block into the
// instruction template.
type Assembler struct {
	template string
}

// NewAssembler validates that the template carries both placeholders.
func NewAssembler(template string) (*Assembler, error) {
	if !strings.Contains(template, placeholderQuery) {
		return nil, fmt.Errorf("prompt template is missing the %s placeholder", placeholderQuery)
	}
	if !strings.Contains(template, placeholderContext) {
		return nil, fmt.Errorf("prompt template is missing the %s placeholder", placeholderContext)
	}
	return &Assembler{template: template}, nil
}

// Assemble builds the prompt. Chunk contents are concatenated in
// retrieval-rank order; their citation suffixes are already embedded.
func (a *Assembler) Assemble(query string, retrieved []models.ScoredChunk) string {
	var b strings.Builder
	for i, r := range retrieved {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(r.Chunk.Content)
	}

	return strings.NewReplacer(
		placeholderQuery, query,
		placeholderContext, b.String(),
	).Replace(a.template)
}
