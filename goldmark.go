package richdesc

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// goldmarkConverter converts markdown using goldmark with GFM
// extensions. Used by DialectExtended for catalogs whose descriptions
// exercise tables, strikethrough, or autolinks. The renderer is
// configured permissively (raw HTML passes through) because the
// sanitizer downstream is the sole safety boundary.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithUnsafe(), // Sanitizer handles raw HTML
			htmlrenderer.WithXHTML(),
		),
	)
	return &goldmarkConverter{md: md}
}

// ToMarkup converts markdown to a markup fragment. Conversion failures
// degrade to the escaped source text; the render contract stays total.
func (c *goldmarkConverter) ToMarkup(content string) string {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "<p>" + html.EscapeString(content) + "</p>"
	}
	return buf.String()
}
