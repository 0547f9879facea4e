// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mariana/itinerary-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for the one-shot generate command
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintItinerary outputs a human-readable summary of a composed document.
func (p *Printer) PrintItinerary(doc *types.ItineraryDocument) {
	var b strings.Builder
	fmt.Fprintf(&b, "Cliente: %s\n", doc.Metadata.ClientName)
	if doc.Metadata.Destination != "" {
		fmt.Fprintf(&b, "Destino: %s\n", doc.Metadata.Destination)
	}
	fmt.Fprintf(&b, "Días: %d (%s a %s)\n", len(doc.Segments),
		doc.Metadata.StartDate.Format("02/01/2006"),
		doc.Metadata.EndDate.Format("02/01/2006"))

	extracted, listed := 0, 0
	for _, ref := range doc.ReferenceAppendix {
		if ref.Status == types.StatusExtracted {
			extracted++
		} else {
			listed++
		}
	}
	fmt.Fprintf(&b, "Referencias: %d procesadas, %d solo listadas", extracted, listed)

	p.printBox("Itinerario generado", b.String())
}
