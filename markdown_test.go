package richdesc

import (
	"strings"
	"testing"
)

func TestConstrainedConverter_ToMarkup(t *testing.T) {
	t.Parallel()

	conv := &constrainedConverter{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading",
			input: "# Title",
			want:  "<h1>Title</h1>",
		},
		{
			name:  "heading level three",
			input: "### Changelog",
			want:  "<h3>Changelog</h3>",
		},
		{
			name:  "heading level clamped to six",
			input: "######## Deep",
			want:  "<h6>Deep</h6>",
		},
		{
			name:  "paragraph",
			input: "Adds copper tools.",
			want:  "<p>Adds copper tools.</p>",
		},
		{
			name:  "contiguous bullets merge into one list",
			input: "- one\n- two\n- three",
			want:  "<ul><li>one</li><li>two</li><li>three</li></ul>",
		},
		{
			name:  "star bullets",
			input: "* one\n* two",
			want:  "<ul><li>one</li><li>two</li></ul>",
		},
		{
			name:  "paragraph flushes pending list",
			input: "- one\ntext",
			want:  "<ul><li>one</li></ul>\n<p>text</p>",
		},
		{
			name:  "blank line splits lists",
			input: "- one\n\n- two",
			want:  "<ul><li>one</li></ul>\n<ul><li>two</li></ul>",
		},
		{
			name:  "crlf line endings",
			input: "# Title\r\n- item\r\n",
			want:  "<h1>Title</h1>\n<ul><li>item</li></ul>",
		},
		{
			name:  "strong",
			input: "some **bold** text",
			want:  "<p>some <strong>bold</strong> text</p>",
		},
		{
			name:  "emphasis",
			input: "some *italic* text",
			want:  "<p>some <em>italic</em> text</p>",
		},
		{
			name:  "inline code",
			input: "run `make build` first",
			want:  "<p>run <code>make build</code> first</p>",
		},
		{
			name:  "link",
			input: "[wiki](https://example.com/wiki)",
			want:  `<p><a href="https://example.com/wiki">wiki</a></p>`,
		},
		{
			name:  "image",
			input: "![logo](https://example.com/logo.png)",
			want:  `<p><img src="https://example.com/logo.png" alt="logo"></p>`,
		},
		{
			name:  "non http link stays literal",
			input: "[click](javascript:alert(1))",
			want:  "<p>[click](javascript:alert(1))</p>",
		},
		{
			name:  "ftp link stays literal",
			input: "[files](ftp://example.com/pub)",
			want:  "<p>[files](ftp://example.com/pub)</p>",
		},
		{
			name:  "raw markup is escaped",
			input: "tags like <b>bold</b> stay literal",
			want:  "<p>tags like &lt;b&gt;bold&lt;/b&gt; stay literal</p>",
		},
		{
			name:  "ampersand is escaped once",
			input: "salt & pepper",
			want:  "<p>salt &amp; pepper</p>",
		},
		{
			name:  "escaping does not break later inline passes",
			input: "**a & b**",
			want:  "<p><strong>a &amp; b</strong></p>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := conv.ToMarkup(tt.input)
			if got != tt.want {
				t.Errorf("ToMarkup(%q)\n got: %s\nwant: %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestConstrainedConverter_Document(t *testing.T) {
	t.Parallel()

	conv := &constrainedConverter{}
	input := "# Title\n- item one\n- item two\n\nSome **bold** and *italic* text with a [link](https://example.com)."

	got := conv.ToMarkup(input)

	wantBlocks := []string{
		"<h1>Title</h1>",
		"<ul><li>item one</li><li>item two</li></ul>",
		`<p>Some <strong>bold</strong> and <em>italic</em> text with a <a href="https://example.com">link</a>.</p>`,
	}
	for _, block := range wantBlocks {
		if !strings.Contains(got, block) {
			t.Errorf("ToMarkup() missing block %s\ngot: %s", block, got)
		}
	}
}
