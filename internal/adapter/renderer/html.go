package renderer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const MediaTypeHTML = "text/html"

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body{font-family:-apple-system,Helvetica,Arial,sans-serif;max-width:720px;margin:2rem auto;color:#222}
table{width:100%%;border-collapse:collapse;margin:1.5rem 0}
th,td{border-bottom:1px solid #ddd;padding:.4rem .6rem}
th{background:#f5f5f5}
</style>
</head>
<body>
%s</body>
</html>
`

// HTMLRenderer renders the estimate document as a standalone HTML page and
// returns it as a base64 data URI.
type HTMLRenderer struct {
	md goldmark.Markdown
}

var _ interfaces.IDocumentRenderer = (*HTMLRenderer)(nil)

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{md: goldmark.New(goldmark.WithExtensions(extension.Table))}
}

func (r *HTMLRenderer) Render(_ context.Context, e entities.Estimate) (string, error) {
	page, err := r.Page(e)
	if err != nil {
		return "", err
	}
	return DataURI(MediaTypeHTML, page), nil
}

// Page returns the raw HTML page.
func (r *HTMLRenderer) Page(e entities.Estimate) ([]byte, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(Markdown(e)), &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	title := html.EscapeString("Estimate for " + e.Client.Name)
	return []byte(fmt.Sprintf(pageTemplate, title, body.String())), nil
}

// DataURI encodes data as a base64 data URI.
func DataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
