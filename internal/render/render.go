// Package render converts feed HTML into text the terminal views can show:
// a markdown-ish form for reading and export, and a collapsed single-line
// plain form for list summaries.
package render

import (
	"strings"

	markdown "github.com/JohannesKaufmann/html-to-markdown"
	nethtml "golang.org/x/net/html"
)

type Renderer struct {
	converter *markdown.Converter
}

func NewRenderer() *Renderer {
	c := markdown.NewConverter("", true, nil)
	return &Renderer{converter: c}
}

// Markdown converts an HTML fragment to markdown, keeping link targets
// inline. Conversion is best effort: on converter failure it falls back to
// the stripped plain text rather than reporting an error.
func (r *Renderer) Markdown(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	out, err := r.converter.ConvertString(html)
	if err != nil {
		return PlainText(html)
	}
	return strings.TrimSpace(out)
}

// PlainText strips an HTML fragment down to its visible text with runs of
// whitespace collapsed to single spaces.
func PlainText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return strings.Join(strings.Fields(raw), " ")
	}
	var b strings.Builder
	collectText(doc, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(node *nethtml.Node, b *strings.Builder) {
	if node == nil {
		return
	}
	if node.Type == nethtml.ElementNode {
		switch strings.ToLower(node.Data) {
		case "script", "style":
			return
		}
	}
	if node.Type == nethtml.TextNode {
		b.WriteString(node.Data)
		b.WriteString(" ")
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}
