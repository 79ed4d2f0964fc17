package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/montaguethomas/reportree/node"
)

// Outline writes one line per node of the tree rooted at root, indented by
// depth, showing the identifier followed by the content. Identifiers are
// highlighted when colored is set.
func Outline[T any](w io.Writer, root *node.Node[T], colored bool) error {
	ident := color.New(color.FgCyan, color.Bold)
	if colored {
		ident.EnableColor()
	} else {
		ident.DisableColor()
	}

	var buf bytes.Buffer
	root.Walk(func(depth int, n *node.Node[T]) bool {
		buf.WriteString(strings.Repeat("  ", depth))
		buf.WriteString(ident.Sprint(n.Identifier))
		fmt.Fprintf(&buf, "  %v\n", n.Content)
		return true
	})
	return flush(w, &buf)
}
