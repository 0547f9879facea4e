package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mariana/itinerary-studio/internal/types"
)

var excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)

// extractText decodes the raw bytes as UTF-8 text. Undecodable byte
// sequences are replaced rather than failing. Whitespace-only content
// yields StatusEmpty.
func extractText(file types.ReferenceFile) types.ExtractedReference {
	ref := types.ExtractedReference{
		SourceFilename: file.Filename,
		Status:         types.StatusExtracted,
	}

	raw := string(file.Data)
	if !utf8.ValidString(raw) {
		raw = strings.ToValidUTF8(raw, "�")
	}

	text := CleanText(raw)
	if text == "" {
		ref.Status = types.StatusEmpty
		ref.Note = "El documento no contiene texto utilizable."
		return ref
	}

	ref.Text = text
	ref.Note = "Texto leído correctamente."
	return ref
}

// CleanText normalizes extracted text: line endings become LF, trailing
// whitespace per line is dropped, runs of blank lines collapse to one, and
// the whole text is trimmed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
