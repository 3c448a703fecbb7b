package richdesc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Hardened anchor values forced onto every surviving <a>, overriding
// whatever the input carried. target="_blank" opens catalog links away
// from the host surface; the rel value blocks reverse tabnabbing and
// referrer leakage.
const (
	anchorTarget = "_blank"
	anchorRel    = "noopener noreferrer nofollow"
)

// htmlSanitizer rewrites arbitrary markup against a Policy allowlist.
// It is stateless beyond the policy and safe for concurrent use.
type htmlSanitizer struct {
	policy *Policy
}

// newHTMLSanitizer creates a sanitizer; a nil policy means DefaultPolicy.
func newHTMLSanitizer(p *Policy) *htmlSanitizer {
	if p == nil {
		p = DefaultPolicy()
	}
	return &htmlSanitizer{policy: p}
}

// Sanitize ingests adversarial markup and returns allowlist-filtered
// markup. It never fails: blank input yields the fallback paragraph, a
// parse failure degrades to the escaped raw text wrapped in a
// paragraph, and an empty post-sanitization result yields the fallback
// again. Sanitizing already-sanitized output returns it unchanged.
func (s *htmlSanitizer) Sanitize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return s.fallback()
	}

	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	fragments, err := html.ParseFragment(strings.NewReader(trimmed), root)
	if err != nil {
		return "<p>" + html.EscapeString(trimmed) + "</p>"
	}
	for _, n := range fragments {
		root.AppendChild(n)
	}

	s.scrub(root)

	out, err := renderChildren(root)
	if err != nil {
		return "<p>" + html.EscapeString(trimmed) + "</p>"
	}
	if strings.TrimSpace(out) == "" {
		return s.fallback()
	}
	return out
}

// fallback returns the policy's placeholder text as a safe paragraph.
func (s *htmlSanitizer) fallback() string {
	return "<p>" + html.EscapeString(s.policy.fallbackText()) + "</p>"
}

// scrub walks n's children depth-first, mutating the tree in place.
// Each node decision is independent: disallowed elements are defanged
// to their visible text, allowed elements get their attributes
// filtered, comments and doctypes are dropped.
func (s *htmlSanitizer) scrub(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling

		switch c.Type {
		case html.ElementNode:
			tag := strings.ToLower(c.Data)
			if !s.policy.allowsTag(tag) {
				// Defang: keep the readable content, drop the wrapper.
				n.InsertBefore(&html.Node{Type: html.TextNode, Data: visibleText(c)}, c)
				n.RemoveChild(c)
			} else {
				s.filterAttrs(c, tag)
				if tag == "a" {
					hardenAnchor(c)
				}
				s.scrub(c)
			}

		case html.CommentNode, html.DoctypeNode:
			n.RemoveChild(c)
		}

		c = next
	}
}

// filterAttrs removes every attribute not in the policy's set for tag,
// plus style/on* names even when nominally allowed, plus href/src
// values carrying an unsafe scheme. The parser has already decoded
// entity references in attribute values, so &#106;avascript: tricks
// reach isUnsafeScheme in decoded form.
func (s *htmlSanitizer) filterAttrs(n *html.Node, tag string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		key := strings.ToLower(a.Key)
		if !s.policy.allowsAttr(tag, key) {
			continue
		}
		if (key == "href" || key == "src") && isUnsafeScheme(a.Val) {
			continue
		}
		a.Key = key
		kept = append(kept, a)
	}
	n.Attr = kept
}

// hardenAnchor forces the target and rel values on an anchor,
// overriding any originals that survived attribute filtering.
func hardenAnchor(n *html.Node) {
	setAttr(n, "target", anchorTarget)
	setAttr(n, "rel", anchorRel)
}

// setAttr overwrites attribute key on n, appending it if absent.
func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// visibleText concatenates the text nodes of n's subtree.
func visibleText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// renderChildren serializes the children of root without the synthetic
// root element itself.
func renderChildren(root *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
