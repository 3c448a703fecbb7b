package richdesc

import (
	"fmt"
	"os"
	"strings"

	"github.com/mlanted/go-richdesc/internal/yamlutil"
)

// DefaultFallback is emitted (escaped, wrapped in a paragraph) when the
// input is empty or sanitization leaves nothing displayable.
const DefaultFallback = "No description available."

// Policy maps allowed tag names to the attribute names permitted on
// them. A tag is allowed iff it appears as a key; a tag with no
// attributes maps to an empty list. Policies are immutable by
// convention: build one, then share it freely across goroutines.
//
// A Policy only decides which tags and attributes survive. The hard
// security rules are not configurable: style and event-handler
// attributes are always removed, href/src values with executable or
// embedded-data schemes are always dropped, and anchors are always
// hardened with target="_blank" and rel="noopener noreferrer nofollow".
type Policy struct {
	// Tags maps a lowercase tag name to its allowed attribute names.
	Tags map[string][]string

	// Fallback overrides DefaultFallback when non-empty. The text is
	// escaped before use, so it can never introduce markup.
	Fallback string
}

// DefaultPolicy returns the catalog-content allowlist: basic block
// structure, headings, unordered/ordered lists, inline emphasis and
// code, links, and images.
func DefaultPolicy() *Policy {
	return &Policy{
		Tags: map[string][]string{
			"div": nil, "p": nil, "br": nil,
			"h1": nil, "h2": nil, "h3": nil, "h4": nil, "h5": nil, "h6": nil,
			"ul": nil, "ol": nil, "li": nil,
			"strong": nil, "em": nil, "code": nil,
			"a":   {"href", "title", "target", "rel"},
			"img": {"src", "alt", "title"},
		},
	}
}

// fallbackText returns the placeholder text for this policy.
func (p *Policy) fallbackText() string {
	if p != nil && p.Fallback != "" {
		return p.Fallback
	}
	return DefaultFallback
}

// allowsTag reports whether tag (already lowercase) is in the allowlist.
func (p *Policy) allowsTag(tag string) bool {
	_, ok := p.Tags[tag]
	return ok
}

// allowsAttr reports whether attr is permitted on tag. Denied attribute
// names (style, on*) never pass, even when listed in the policy.
func (p *Policy) allowsAttr(tag, attr string) bool {
	if isDeniedAttr(attr) {
		return false
	}
	for _, a := range p.Tags[tag] {
		if strings.EqualFold(a, attr) {
			return true
		}
	}
	return false
}

// policyFile is the YAML shape accepted by LoadPolicy.
type policyFile struct {
	Tags     map[string][]string `yaml:"tags"`
	Fallback string              `yaml:"fallback"`
}

// LoadPolicy reads a Policy from a YAML file. The file must contain a
// "tags" mapping of tag name to attribute-name list; an optional
// "fallback" key overrides the placeholder text. Unknown keys are
// rejected. Tag and attribute names are normalized to lowercase.
//
// Policy files are first-party configuration, so unlike the render
// path this returns real errors.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- policy path is operator-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPolicyNotFound, path)
		}
		return nil, fmt.Errorf("reading policy file: %w", err)
	}

	var pf policyFile
	if err := yamlutil.UnmarshalStrict(data, &pf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPolicyParse, err)
	}
	if len(pf.Tags) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPolicy, path)
	}

	tags := make(map[string][]string, len(pf.Tags))
	for tag, attrs := range pf.Tags {
		lowered := make([]string, len(attrs))
		for i, a := range attrs {
			lowered[i] = strings.ToLower(a)
		}
		tags[strings.ToLower(tag)] = lowered
	}

	return &Policy{Tags: tags, Fallback: pf.Fallback}, nil
}

// unsafeSchemes are the URL scheme prefixes that make an href/src value
// executable or able to smuggle an embedded document.
var unsafeSchemes = []string{"javascript:", "vbscript:", "data:"}

// isUnsafeScheme reports whether a (raw, entity-decoded) URL value
// begins with an executable-script or embedded-data scheme. Comparison
// is case-insensitive after trimming and after stripping control
// characters that parsers ignore.
func isUnsafeScheme(val string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(val))
	cleaned = strings.ToLower(cleaned)

	for _, scheme := range unsafeSchemes {
		if strings.HasPrefix(cleaned, scheme) {
			return true
		}
	}
	return false
}

// isDeniedAttr reports whether an attribute name is unconditionally
// removed: inline styles and anything shaped like an event handler.
func isDeniedAttr(name string) bool {
	name = strings.ToLower(name)
	return name == "style" || strings.HasPrefix(name, "on")
}
