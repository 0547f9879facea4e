// Package extraction recovers plain text from uploaded reference files.
//
// Dispatch is by file format over a closed set {PDF, text, unsupported}.
// The package never fails past its boundary: any decode or parse fault is
// absorbed into the reference status so one bad file never blocks a
// generation.
package extraction

import (
	"path/filepath"
	"strings"

	"github.com/mariana/itinerary-studio/internal/types"
)

// Format identifies how a reference file is processed.
type Format string

const (
	FormatPDF         Format = "pdf"
	FormatText        Format = "text"
	FormatUnsupported Format = "unsupported"
)

// Extractor turns a raw reference file into an ExtractedReference.
// Implementations must be pure functions of the file bytes.
type Extractor interface {
	Extract(file types.ReferenceFile) types.ExtractedReference
}

// New returns the default extractor.
func New() Extractor {
	return &fileExtractor{}
}

type fileExtractor struct{}

// Detect returns the processing format for a file, preferring the file
// extension and falling back to the declared content type.
func Detect(file types.ReferenceFile) Format {
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".pdf":
		return FormatPDF
	case ".txt", ".text":
		return FormatText
	}
	switch file.ContentType {
	case "application/pdf":
		return FormatPDF
	case "text/plain":
		return FormatText
	}
	return FormatUnsupported
}

// Extract produces the ExtractedReference for one file. It never panics and
// never returns an error: unsupported formats and internal parse faults are
// recorded as statuses so the pipeline can proceed with partial material.
func (e *fileExtractor) Extract(file types.ReferenceFile) types.ExtractedReference {
	switch Detect(file) {
	case FormatPDF:
		return extractPDF(file)
	case FormatText:
		return extractText(file)
	default:
		return types.ExtractedReference{
			SourceFilename: file.Filename,
			Status:         types.StatusUnsupported,
			Note:           "Formato no procesado automáticamente; se considerará para contexto general.",
		}
	}
}
