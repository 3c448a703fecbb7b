package richdesc

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Precompiled markdown patterns.
var (
	// Line ending normalization.
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Block-level markers.
	headingLine = regexp.MustCompile(`^(#+) +(.*)$`)
	bulletLine  = regexp.MustCompile(`^[-*] +(.*)$`)

	// Inline markers, applied to already-escaped text. URLs other than
	// http/https are left as literal text for the sanitizer to judge.
	imageInline  = regexp.MustCompile(`!\[([^\]]*)\]\((https?://[^)\s]+)\)`)
	linkInline   = regexp.MustCompile(`\[([^\]]*)\]\((https?://[^)\s]+)\)`)
	strongInline = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	emInline     = regexp.MustCompile(`\*([^*]+)\*`)
	codeInline   = regexp.MustCompile("`([^`]+)`")
)

// markupConverter turns catalog text into intermediate markup. The
// output is untrusted: every converter's result still passes through
// the sanitizer.
type markupConverter interface {
	ToMarkup(content string) string
}

// constrainedConverter implements the catalog markdown dialect:
// headings, unordered lists, bold/italic/inline code, links, and
// images. Line-oriented, single pass, no nesting.
type constrainedConverter struct{}

// ToMarkup converts constrained markdown to a markup fragment.
// Contiguous bullet lines merge into a single list; a blank line, a
// non-bullet line, or end of input flushes the pending list.
func (c *constrainedConverter) ToMarkup(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")

	var blocks []string
	var items []string

	flush := func() {
		if len(items) == 0 {
			return
		}
		var sb strings.Builder
		sb.WriteString("<ul>")
		for _, it := range items {
			sb.WriteString("<li>")
			sb.WriteString(it)
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
		blocks = append(blocks, sb.String())
		items = items[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flush()

		case headingLine.MatchString(trimmed):
			flush()
			m := headingLine.FindStringSubmatch(trimmed)
			level := len(m[1])
			if level > 6 {
				level = 6
			}
			blocks = append(blocks, fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(m[2]), level))

		case bulletLine.MatchString(trimmed):
			m := bulletLine.FindStringSubmatch(trimmed)
			items = append(items, renderInline(m[1]))

		default:
			flush()
			blocks = append(blocks, "<p>"+renderInline(trimmed)+"</p>")
		}
	}
	flush()

	return strings.Join(blocks, "\n")
}

// renderInline applies the inline span rules in fixed order. Escaping
// happens first and exactly once; later steps insert tags into the
// escaped text and must never re-escape it. Matching is greedy and
// non-nested: emphasis inside link text is an accepted limitation.
func renderInline(text string) string {
	out := html.EscapeString(text)
	out = imageInline.ReplaceAllString(out, `<img src="$2" alt="$1">`)
	out = linkInline.ReplaceAllString(out, `<a href="$2">$1</a>`)
	out = strongInline.ReplaceAllString(out, "<strong>$1</strong>")
	out = emInline.ReplaceAllString(out, "<em>$1</em>")
	out = codeInline.ReplaceAllString(out, "<code>$1</code>")
	return out
}
