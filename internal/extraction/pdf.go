package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mariana/itinerary-studio/internal/types"
)

// extractPDF reads page-by-page text from a PDF, concatenated in page order
// with one blank line between pages. A parseable PDF with zero extractable
// characters yields StatusEmpty; a malformed PDF yields StatusUnsupported.
func extractPDF(file types.ReferenceFile) (ref types.ExtractedReference) {
	ref = types.ExtractedReference{
		SourceFilename: file.Filename,
		Status:         types.StatusUnsupported,
	}

	// The pdf package panics on some malformed cross-reference tables.
	// Faults at this boundary downgrade to an unsupported status.
	defer func() {
		if r := recover(); r != nil {
			ref.Status = types.StatusUnsupported
			ref.Text = ""
			ref.Note = fmt.Sprintf("No se pudo leer el PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		ref.Note = fmt.Sprintf("No se pudo leer el PDF: %v", err)
		return ref
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip the page; partial extraction beats none.
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	text := CleanText(strings.Join(pages, "\n\n"))
	if text == "" {
		ref.Status = types.StatusEmpty
		ref.Note = "El PDF no contiene texto extraíble."
		return ref
	}

	ref.Status = types.StatusExtracted
	ref.Text = text
	ref.Note = "Texto extraído del PDF."
	return ref
}
