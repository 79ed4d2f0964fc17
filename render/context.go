// Package render turns report trees into HTML and trees of any payload into a
// readable outline. Renderers only read the tree.
package render

import "github.com/montaguethomas/reportree/constants"

// Context is threaded through the recursion of the HTML renderer. Each level
// of sections below the top gets a context whose Level is one higher.
type Context struct {
	// Level is the heading level of sections rendered with this context.
	Level int
	// Anchors adds the node identifier as id attribute of section headings.
	// It is false in the zero value; NewContext turns it on.
	Anchors bool
}

// NewContext returns a context starting at heading level with Anchors
// enabled. A Context literal leaves Anchors off unless it is set.
func NewContext(level int) Context {
	return Context{Level: level, Anchors: true}
}

// Child returns the context for the children of a section.
func (c Context) Child() Context {
	c.Level++
	return c
}

// heading returns Level bounded to the levels HTML supports.
func (c Context) heading() int {
	switch {
	case c.Level < 1:
		return 1
	case c.Level > constants.MaxHeadingLevel:
		return constants.MaxHeadingLevel
	}
	return c.Level
}
