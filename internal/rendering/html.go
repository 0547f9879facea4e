package rendering

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/mariana/itinerary-studio/internal/types"
)

// pageShell wraps the rendered body in a standalone HTML page. Only the
// presentation layer lives here; the section structure comes from Walk.
const pageShell = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { font-size: 1.9rem; border-bottom: 2px solid #b08d57; padding-bottom: .4rem; }
h2 { font-size: 1.4rem; margin-top: 1.8rem; color: #5a4632; }
h3 { font-size: 1.1rem; margin-top: 1.2rem; color: #5a4632; }
p { line-height: 1.55; }
.reference-entry { font-size: .9rem; color: #555; margin: .3rem 0; }
.reference-entry .filename { font-weight: bold; color: #222; }
</style>
</head>
<body>
{{.Body}}
<p><a href="/itinerary/pdf">Descargar PDF</a></p>
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageShell))

// htmlVisitor serializes the structural event stream into escaped markup.
type htmlVisitor struct {
	body strings.Builder
}

func (h *htmlVisitor) Heading(level int, text string) {
	fmt.Fprintf(&h.body, "<h%d>%s</h%d>\n", level, html.EscapeString(text), level)
}

func (h *htmlVisitor) Paragraph(text string) {
	fmt.Fprintf(&h.body, "<p>%s</p>\n", html.EscapeString(text))
}

func (h *htmlVisitor) AppendixEntry(ref types.ExtractedReference) {
	fmt.Fprintf(&h.body, "<div class=\"reference-entry\"><span class=\"filename\">%s</span> (%s)",
		html.EscapeString(ref.SourceFilename), html.EscapeString(statusLabel(ref.Status)))
	if ref.Note != "" {
		fmt.Fprintf(&h.body, ": %s", html.EscapeString(ref.Note))
	}
	h.body.WriteString("</div>\n")
}

// RenderHTML renders the document as a full HTML page. Reference-derived
// text is escaped; the body markup itself is produced by the visitor and is
// trusted by the shell template.
func RenderHTML(doc *types.ItineraryDocument) (string, error) {
	var visitor htmlVisitor
	if err := Walk(doc, &visitor); err != nil {
		return "", err
	}

	var out strings.Builder
	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: DocumentTitle,
		Body:  template.HTML(visitor.body.String()),
	}
	if err := pageTemplate.Execute(&out, data); err != nil {
		return "", &RenderError{Message: "failed to execute page template", Cause: err}
	}
	return out.String(), nil
}
