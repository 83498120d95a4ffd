// Package document models a parsed document as a heading tree and flattens
// it into viewer sections.
package document

import (
	"fmt"
	"strings"
)

// Document is the root of a parsed document.
type Document struct {
	Title    string  // Document title (from metadata or filename)
	Children []*Node // Top-level sections
}

// Node is a recursive section in the document tree.
type Node struct {
	Title    string  // Heading (empty for plain text nodes)
	Text     string  // Text content (may be empty for container nodes)
	Page     int     // Source page (0 if N/A)
	Children []*Node // Subsections
}

// SectionInput is a flattened (title, content) pair ready to be added to
// the section store.
type SectionInput struct {
	Title   string
	Content string
}

// Sections flattens the tree one level deep: each top-level node becomes a
// section whose content is its own text followed by all descendant text.
// Untitled nodes get positional titles. Nodes with no text anywhere are
// skipped.
func (d *Document) Sections() []SectionInput {
	var out []SectionInput
	for i, child := range d.Children {
		content := collectText(child)
		if content == "" {
			continue
		}
		title := child.Title
		if title == "" {
			title = fmt.Sprintf("Part %d", i+1)
		}
		out = append(out, SectionInput{Title: title, Content: content})
	}
	return out
}

func collectText(n *Node) string {
	var parts []string
	if t := strings.TrimSpace(n.Text); t != "" {
		parts = append(parts, t)
	}
	for _, child := range n.Children {
		if t := collectText(child); t != "" {
			if child.Title != "" {
				parts = append(parts, child.Title+"\n"+t)
			} else {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}
