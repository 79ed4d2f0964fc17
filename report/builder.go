package report

import (
	"github.com/google/uuid"

	"github.com/montaguethomas/reportree/log"
	"github.com/montaguethomas/reportree/node"
)

// Builder adds report content beneath the node it wraps. Every method taking
// an identifier generates a random one when it is empty.
type Builder struct {
	*Node
}

// New returns a builder for a new report whose root is a section titled
// title.
func New(id, title string) Builder {
	return Builder{node.NewWithValue(newID(id), Section(title))}
}

// Build wraps an existing node.
func Build(n *Node) Builder {
	return Builder{n}
}

// Section appends a subsection and returns a builder for it.
func (b Builder) Section(id, title string) Builder {
	return Builder{b.Append(newID(id), Section(title))}
}

// HTML appends raw HTML and returns the new node.
func (b Builder) HTML(id, html string) *Node {
	return b.Append(newID(id), HTML(html))
}

// Markdown appends Markdown and returns the new node.
func (b Builder) Markdown(id, md string) *Node {
	return b.Append(newID(id), Markdown(md))
}

// Text appends plain text and returns the new node.
func (b Builder) Text(id, text string) *Node {
	return b.Append(newID(id), Text(text))
}

// AddSection appends a subsection and returns the receiver.
func (b Builder) AddSection(id, title string) Builder {
	b.Section(id, title)
	return b
}

// AddHTML appends raw HTML and returns the receiver.
func (b Builder) AddHTML(id, html string) Builder {
	b.HTML(id, html)
	return b
}

// AddMarkdown appends Markdown and returns the receiver.
func (b Builder) AddMarkdown(id, md string) Builder {
	b.Markdown(id, md)
	return b
}

// AddText appends plain text and returns the receiver.
func (b Builder) AddText(id, text string) Builder {
	b.Text(id, text)
	return b
}

// WithText adds text to the wrapped node. A section gets a new text child;
// any other content gets the text appended to its body on a new line.
func (b Builder) WithText(text string) Builder {
	if b.Content.IsSection() {
		b.Text("", text)
		return b
	}
	if b.Content.Body == "" {
		b.Content.Body = text
	} else {
		b.Content.Body += "\n" + text
	}
	return b
}

// WithSection adds a subsection to the wrapped node. A node that is not a
// section is turned into one titled title, and its previous content moves to
// a new first child.
func (b Builder) WithSection(title string) Builder {
	if b.Content.IsSection() {
		b.Section("", title)
		return b
	}
	log.Debugf("turning %s of %q into section %q", b.Content.Kind, b.Identifier, title)
	previous := b.Content
	b.Content = Section(title)
	b.Prepend(newID(""), previous)
	return b
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
