// Package richdesc renders untrusted rich-text metadata (mod and modpack
// descriptions, changelogs, server blurbs fetched from third-party
// catalogs) into display-safe HTML.
//
// # Quick Start
//
// The package-level Render function is total: it accepts any input,
// never returns an error, and always produces safe, non-empty markup.
//
//	html := richdesc.Render(description)
//
// For custom configuration, build a Service:
//
//	svc := richdesc.New(
//	    richdesc.WithDialect(richdesc.DialectExtended),
//	    richdesc.WithFallback("Nothing to show."),
//	)
//	html := svc.Render(description)
//
// # Rendering Pipeline
//
// Each call follows the same stages:
//
//  1. Detection: classify the input as markdown-like or already markup.
//     The heuristic is approximate by design; misclassified markdown
//     degrades to literal (escaped) text, never to unsafe output.
//  2. Markdown conversion (markdown-like input only): a constrained
//     dialect covering headings, unordered lists, bold/italic/inline
//     code, links, and images. DialectExtended swaps in a
//     Goldmark-backed converter for fuller markdown.
//  3. Sanitization (always): the markup is parsed into a tree and
//     rewritten against a tag/attribute allowlist. Disallowed elements
//     are defanged to their visible text, event-handler and style
//     attributes are dropped, executable and data URL schemes are
//     removed, and every anchor is forced to open in a new tab with a
//     hardened rel value.
//
// # Security Model
//
// The threat model is exclusively remote, adversarial catalog content.
// Whatever the input, the output contains only allowlisted tags and
// attributes and can be injected into a rendering surface without
// further escaping. Errors are absorbed internally through
// progressively safer fallbacks: full parse and sanitize, then an
// escaped plain-text paragraph, then a static placeholder.
//
// # Configuration
//
// Policies map tag names to permitted attribute names. DefaultPolicy
// covers the catalog subset; LoadPolicy reads a custom mapping from a
// YAML file. Hard rules (no style or on* attributes, no executable URL
// schemes, anchor hardening) apply regardless of policy.
package richdesc
