package document

import "strings"

// TreeBuilder assembles a Document from a linear stream of headings and
// text blocks, nesting nodes by heading level. It factors out the stack
// bookkeeping shared by the markdown, HTML and DOCX parsers.
type TreeBuilder struct {
	root  *Node
	stack []stackEntry
	text  strings.Builder
}

type stackEntry struct {
	node  *Node
	level int
}

// NewTreeBuilder starts a tree titled title. Headings of any level nest
// under the implicit level-0 root.
func NewTreeBuilder(title string) *TreeBuilder {
	root := &Node{Title: title}
	return &TreeBuilder{
		root:  root,
		stack: []stackEntry{{node: root, level: 0}},
	}
}

// Heading closes the pending text block and opens a new node at the given
// level (1-6).
func (b *TreeBuilder) Heading(level int, title string) {
	b.flush()
	node := &Node{Title: title}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].node
	parent.Children = append(parent.Children, node)
	b.stack = append(b.stack, stackEntry{node: node, level: level})
}

// Text appends a text block to the current node.
func (b *TreeBuilder) Text(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if b.text.Len() > 0 {
		b.text.WriteString("\n\n")
	}
	b.text.WriteString(s)
}

// Build finalizes the tree. Heading-less documents collapse to a single
// untitled node holding all text.
func (b *TreeBuilder) Build() *Document {
	b.flush()
	doc := &Document{
		Title:    b.root.Title,
		Children: b.root.Children,
	}
	if len(doc.Children) == 0 && b.root.Text != "" {
		doc.Children = []*Node{{Text: b.root.Text}}
	}
	return doc
}

func (b *TreeBuilder) flush() {
	t := strings.TrimSpace(b.text.String())
	if t != "" {
		top := b.stack[len(b.stack)-1].node
		if top.Text != "" {
			top.Text += "\n\n" + t
		} else {
			top.Text = t
		}
	}
	b.text.Reset()
}
