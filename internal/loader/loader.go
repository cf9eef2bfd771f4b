// ABOUTME: Loads the PDF corpus from a directory with per-page provenance
// ABOUTME: Runs once at startup; an unreadable or empty corpus is fatal
package loader

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/sozialinfo/fragdoc/internal/models"
)

// ErrNoDocuments indicates the corpus directory contained no readable PDFs.
// The pipeline must not start on an empty corpus.
var ErrNoDocuments = errors.New("no readable documents in corpus directory")

// LoadDirectory reads all PDF files from dir and extracts their page texts.
// Documents are returned in lexical filename order, pages in document order.
func LoadDirectory(dir string) ([]models.SourceDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory %s: %w", dir, err)
	}

	var docs []models.SourceDocument
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		doc, err := loadPDF(filepath.Join(dir, entry.Name()))
		if err != nil {
			// A single broken file does not abort the load; the corpus as a
			// whole must still yield at least one readable document.
			log.Printf("Warning: skipping %s: %v", entry.Name(), err)
			continue
		}
		if len(doc.Pages) == 0 {
			log.Printf("Warning: %s contains no extractable text", entry.Name())
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, dir)
	}
	return docs, nil
}

// loadPDF extracts per-page plain text from a single PDF file.
func loadPDF(path string) (models.SourceDocument, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return models.SourceDocument{}, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	doc := models.SourceDocument{Name: filepath.Base(path)}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: %s page %d: %v", doc.Name, i, err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		doc.Pages = append(doc.Pages, models.Page{Number: i, Text: text})
	}
	return doc, nil
}
