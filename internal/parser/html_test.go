package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_HeadingsAndParagraphs(t *testing.T) {
	input := `<html><head><title>My Page</title></head><body>
<h1>Overview</h1>
<p>Overview paragraph.</p>
<h2>Details</h2>
<p>Detail paragraph.</p>
<script>ignored()</script>
</body></html>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "My Page" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}
	if len(doc.Children) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(doc.Children))
	}
	h1 := doc.Children[0]
	if h1.Title != "Overview" || !strings.Contains(h1.Text, "Overview paragraph.") {
		t.Errorf("unexpected h1 node %+v", h1)
	}
	if len(h1.Children) != 1 || h1.Children[0].Title != "Details" {
		t.Fatalf("expected Details under Overview, got %+v", h1.Children)
	}
	if strings.Contains(h1.Text, "ignored") || strings.Contains(h1.Children[0].Text, "ignored") {
		t.Error("script content must be skipped")
	}
}

func TestHTMLParser_NoHeadings(t *testing.T) {
	input := `<html><body><p>Only text.</p></body></html>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "flat.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "flat" {
		t.Errorf("expected filename-based title, got %q", doc.Title)
	}
	if len(doc.Children) != 1 || doc.Children[0].Text != "Only text." {
		t.Errorf("unexpected children %+v", doc.Children)
	}
}

func TestHeadingLevel(t *testing.T) {
	cases := map[string]int{"h1": 1, "h3": 3, "h6": 6, "p": 0, "h7": 0, "div": 0}
	for tag, want := range cases {
		if got := headingLevel(tag); got != want {
			t.Errorf("headingLevel(%q) = %d, want %d", tag, got, want)
		}
	}
}
