package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLBasic(t *testing.T) {
	html, err := ToHTML("# Heading\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Heading") {
		t.Errorf("missing heading: %s", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("missing bold: %s", html)
	}
}

func TestToHTMLGFMTable(t *testing.T) {
	src := "| A | B |\n|---|---|\n| 1 | 2 |\n"
	html, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("GFM table not rendered: %s", html)
	}
}

func TestToHTMLRawHTMLPassThrough(t *testing.T) {
	// Bodies migrated from the old site contain raw HTML.
	src := `<div class="notice">Important</div>`
	html, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, `<div class="notice">`) {
		t.Errorf("raw HTML should pass through unchanged: %s", html)
	}
}

func TestToHTMLCodeHighlighting(t *testing.T) {
	src := "```go\nfunc main() {}\n```"
	html, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	// The highlighter emits inline-styled pre blocks instead of bare <pre><code>.
	if !strings.Contains(html, "<pre") {
		t.Errorf("code block not rendered: %s", html)
	}
}

func TestToHTMLHeadingAnchors(t *testing.T) {
	html, err := ToHTML("## Transfer Procedure")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, `id="transfer-procedure"`) {
		t.Errorf("auto heading ID missing: %s", html)
	}
}

func TestToHTMLEmpty(t *testing.T) {
	html, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Errorf("empty source should produce empty output, got %q", html)
	}
}
