package richdesc

import (
	"fmt"
	"strings"
	"sync"
)

// Dialect selects the markdown converter used for markdown-like input.
type Dialect string

// Supported dialects.
const (
	// DialectConstrained is the default catalog dialect: headings,
	// unordered lists, bold/italic/inline code, links, images.
	DialectConstrained Dialect = "constrained"

	// DialectExtended uses Goldmark with GFM extensions. Output still
	// passes through the sanitizer, so tags outside the policy (tables,
	// del, ...) are defanged unless the policy allows them.
	DialectExtended Dialect = "extended"
)

// ParseDialect converts a string (e.g. a CLI flag value) to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(s)) {
	case DialectConstrained:
		return DialectConstrained, nil
	case DialectExtended:
		return DialectExtended, nil
	default:
		return "", fmt.Errorf("%w: %q (must be constrained or extended)", ErrInvalidDialect, s)
	}
}

// Service renders untrusted catalog text into safe markup. A Service
// is immutable after New and safe for concurrent use; each Render call
// is an independent, pure function of its input.
type Service struct {
	policy    *Policy
	dialect   Dialect
	fallback  string
	converter markupConverter
	sanitizer *htmlSanitizer
}

// Option configures a Service.
type Option func(*Service)

// WithPolicy sets the sanitization policy. Panics on a policy that
// allows no tags (programmer error: such a service could only ever
// emit the fallback).
func WithPolicy(p *Policy) Option {
	if p == nil || len(p.Tags) == 0 {
		panic("richdesc: WithPolicy requires a policy with at least one tag")
	}
	return func(s *Service) {
		s.policy = p
	}
}

// WithDialect selects the markdown dialect. Panics on an unknown
// dialect; use ParseDialect for untrusted strings.
func WithDialect(d Dialect) Option {
	if d != DialectConstrained && d != DialectExtended {
		panic("richdesc: WithDialect requires a known dialect")
	}
	return func(s *Service) {
		s.dialect = d
	}
}

// WithFallback sets the placeholder text returned for empty or
// unusable input, overriding the policy's fallback. The text is
// escaped before use.
func WithFallback(text string) Option {
	return func(s *Service) {
		s.fallback = text
	}
}

// New creates a Service with default configuration: the constrained
// dialect and DefaultPolicy.
func New(opts ...Option) *Service {
	s := &Service{dialect: DialectConstrained}

	for _, opt := range opts {
		opt(s)
	}

	if s.policy == nil {
		s.policy = DefaultPolicy()
	}
	if s.fallback != "" {
		// Copy so shared policies stay untouched.
		p := *s.policy
		p.Fallback = s.fallback
		s.policy = &p
	}
	s.sanitizer = newHTMLSanitizer(s.policy)

	switch s.dialect {
	case DialectExtended:
		s.converter = newGoldmarkConverter()
	default:
		s.converter = &constrainedConverter{}
	}

	return s
}

// Render converts raw catalog text to safe markup. The contract is
// total: any input, including empty or adversarial content, yields
// non-empty markup restricted to the policy allowlist. Markdown-like
// input goes through the markdown converter first; everything ends in
// the sanitizer.
func (s *Service) Render(raw string) string {
	if LooksLikeMarkdown(raw) {
		return s.sanitizer.Sanitize(s.converter.ToMarkup(raw))
	}
	return s.sanitizer.Sanitize(raw)
}

// defaultService backs the package-level Render. Built once; the
// default policy is process-wide and immutable.
var (
	defaultService     *Service
	defaultServiceOnce sync.Once
)

// Render converts raw catalog text to safe markup using the default
// service (constrained dialect, DefaultPolicy).
func Render(raw string) string {
	defaultServiceOnce.Do(func() {
		defaultService = New()
	})
	return defaultService.Render(raw)
}
