package richdesc

import (
	"regexp"
	"strings"
)

// Precompiled detection patterns.
var (
	// ATX heading marker at the start of a line.
	headingMarker = regexp.MustCompile(`(?m)^#+ `)

	// Bracketed link or image syntax: [text](url) or ![alt](url).
	bracketedLink = regexp.MustCompile(`!?\[[^\]]*\]\([^)]*\)`)

	// Opening tag from the structural set, attribute-tolerant:
	// <p>, <a href="...">, <br/>, <H1 id=x>, ...
	structuralTag = regexp.MustCompile(`(?i)<(div|img|h[1-6]|p|a|ul|ol|li|br)(\s[^>]*)?/?>`)
)

// LooksLikeMarkdown reports whether s should be treated as markdown
// rather than markup. It is true when the text carries markdown
// evidence (a leading-# heading or bracketed link/image syntax) and no
// tag from the structural set. HTML evidence wins over markdown
// evidence: misparsing real HTML as markdown corrupts it, while the
// reverse merely renders literal text.
//
// The heuristic is deliberately approximate tag-sniffing, not a
// grammar classifier. A false negative costs formatting only; the
// sanitizer still runs on every path.
func LooksLikeMarkdown(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if structuralTag.MatchString(s) {
		return false
	}
	return headingMarker.MatchString(s) || bracketedLink.MatchString(s)
}
