package rendering

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/mariana/itinerary-studio/internal/types"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageMargin   = 18.0
	bodyLine     = 5.5
	headingGap   = 3.0
	paragraphGap = 2.0
)

// pdfVisitor lays the structural event stream out on A4 pages. Page breaks
// are handled here rather than by fpdf's auto break so a paragraph is never
// split across pages and a heading is never stranded at the bottom of one.
type pdfVisitor struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	width     float64
	limit     float64
}

func newPDFVisitor() *pdfVisitor {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(DocumentTitle, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	return &pdfVisitor{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		width:     pageW - 2*pageMargin,
		limit:     pageH - pageMargin,
	}
}

// ensureSpace starts a new page when the next element of the given height
// would not fit whole in the remaining vertical space.
func (p *pdfVisitor) ensureSpace(height float64) {
	if p.pdf.GetY()+height > p.limit {
		p.pdf.AddPage()
	}
}

func (p *pdfVisitor) Heading(level int, text string) {
	size, line := 18.0, 9.0
	switch level {
	case LevelSection:
		size, line = 14.0, 7.0
	case LevelSubsection:
		size, line = 12.0, 6.0
	}
	p.pdf.SetFont("Helvetica", "B", size)
	// Reserve one body line after the heading so it never sits alone at
	// the bottom of a page.
	p.ensureSpace(line + headingGap + bodyLine)
	p.pdf.MultiCell(p.width, line, p.translate(text), "", "L", false)
	p.pdf.Ln(headingGap)
}

func (p *pdfVisitor) Paragraph(text string) {
	p.pdf.SetFont("Helvetica", "", 11)
	p.writeBlock(text, bodyLine)
}

func (p *pdfVisitor) AppendixEntry(ref types.ExtractedReference) {
	entry := ref.SourceFilename + " (" + statusLabel(ref.Status) + ")"
	if ref.Note != "" {
		entry += ": " + ref.Note
	}
	p.pdf.SetFont("Helvetica", "", 9)
	p.writeBlock(entry, 4.5)
}

// writeBlock writes one whole block, breaking the page first if it does not
// fit in the remaining space.
func (p *pdfVisitor) writeBlock(text string, line float64) {
	translated := p.translate(text)
	lines := p.pdf.SplitText(translated, p.width)
	p.ensureSpace(float64(len(lines)) * line)
	p.pdf.MultiCell(p.width, line, translated, "", "L", false)
	p.pdf.Ln(paragraphGap)
}

// RenderPDF renders the document as a PDF, mirroring the HTML structure
// section for section.
func RenderPDF(doc *types.ItineraryDocument) ([]byte, error) {
	visitor := newPDFVisitor()
	if err := Walk(doc, visitor); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := visitor.pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write PDF output", Cause: err}
	}
	return buf.Bytes(), nil
}
