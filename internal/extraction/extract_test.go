package extraction

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/itinerary-studio/internal/types"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		file types.ReferenceFile
		want Format
	}{
		{name: "pdf extension", file: types.ReferenceFile{Filename: "guia.pdf"}, want: FormatPDF},
		{name: "pdf extension uppercase", file: types.ReferenceFile{Filename: "GUIA.PDF"}, want: FormatPDF},
		{name: "txt extension", file: types.ReferenceFile{Filename: "notas.txt"}, want: FormatText},
		{name: "text extension", file: types.ReferenceFile{Filename: "notas.text"}, want: FormatText},
		{name: "image is unsupported", file: types.ReferenceFile{Filename: "mapa.png"}, want: FormatUnsupported},
		{name: "no extension falls back to content type", file: types.ReferenceFile{Filename: "adjunto", ContentType: "text/plain"}, want: FormatText},
		{name: "pdf content type", file: types.ReferenceFile{Filename: "adjunto", ContentType: "application/pdf"}, want: FormatPDF},
		{name: "unknown everything", file: types.ReferenceFile{Filename: "adjunto"}, want: FormatUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.file))
		})
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	ref := New().Extract(types.ReferenceFile{
		Filename: "mapa.png",
		Data:     []byte{0x89, 0x50, 0x4e, 0x47},
	})

	assert.Equal(t, "mapa.png", ref.SourceFilename)
	assert.Equal(t, types.StatusUnsupported, ref.Status)
	assert.Empty(t, ref.Text)
	assert.NotEmpty(t, ref.Note)
}

func TestExtract_Text(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantStatus types.ReferenceStatus
		wantText   string
	}{
		{
			name:       "plain utf-8",
			data:       []byte("Día 2: cena en restaurante X"),
			wantStatus: types.StatusExtracted,
			wantText:   "Día 2: cena en restaurante X",
		},
		{
			name:       "crlf normalized",
			data:       []byte("línea uno\r\nlínea dos\r\n"),
			wantStatus: types.StatusExtracted,
			wantText:   "línea uno\nlínea dos",
		},
		{
			name:       "invalid bytes replaced not failed",
			data:       []byte{'h', 'o', 'l', 'a', 0xff, 0xfe, '!'},
			wantStatus: types.StatusExtracted,
			wantText:   "hola�!",
		},
		{
			name:       "whitespace only is empty",
			data:       []byte("  \n\t \n"),
			wantStatus: types.StatusEmpty,
			wantText:   "",
		},
		{
			name:       "zero bytes is empty",
			data:       nil,
			wantStatus: types.StatusEmpty,
			wantText:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := New().Extract(types.ReferenceFile{Filename: "notas.txt", Data: tt.data})
			assert.Equal(t, tt.wantStatus, ref.Status)
			assert.Equal(t, tt.wantText, ref.Text)
		})
	}
}

func TestExtract_MalformedPDFNeverRaises(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "garbage bytes", data: []byte("this is not a pdf at all")},
		{name: "truncated header", data: []byte("%PDF-1.4\n")},
		{name: "empty file", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref types.ExtractedReference
			require.NotPanics(t, func() {
				ref = New().Extract(types.ReferenceFile{Filename: "roto.pdf", Data: tt.data})
			})
			assert.Equal(t, types.StatusUnsupported, ref.Status)
			assert.Empty(t, ref.Text)
			assert.NotEmpty(t, ref.Note)
		})
	}
}

func TestExtract_PDFWithoutTextIsEmpty(t *testing.T) {
	// A structurally valid PDF with one blank page.
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	ref := New().Extract(types.ReferenceFile{Filename: "blanco.pdf", Data: buf.Bytes()})
	assert.Equal(t, types.StatusEmpty, ref.Status)
	assert.Empty(t, ref.Text)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: ""},
		{name: "trailing whitespace dropped", content: "hola  \nadios\t\n", want: "hola\nadios"},
		{name: "blank line runs collapse", content: "uno\n\n\n\n\ndos", want: "uno\n\ndos"},
		{name: "carriage returns normalized", content: "uno\rdos", want: "uno\ndos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.content))
		})
	}
}
