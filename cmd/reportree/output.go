package main

import (
	"io"

	"github.com/montaguethomas/reportree/codec"
	"github.com/montaguethomas/reportree/config"
	"github.com/montaguethomas/reportree/render"
	"github.com/montaguethomas/reportree/report"
)

// write outputs the tree in the configured format.
func write(w io.Writer, c *config.Config, root *report.Node) error {
	switch c.Format {
	case config.FormatHTML:
		return c.Renderer().Document(w, root, c.Context())
	case config.FormatOutline:
		return render.Outline(w, root, c.Color)
	}

	f, err := codec.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	return codec.Encode(w, f, root)
}
