package render

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"

	"github.com/montaguethomas/reportree/constants"
	"github.com/montaguethomas/reportree/log"
	"github.com/montaguethomas/reportree/report"
)

// HTML renders report trees as HTML.
type HTML struct {
	markdown goldmark.Markdown
}

// Option configures an HTML renderer.
type Option func(*HTML)

// WithMarkdown sets the converter used for Markdown content. A nil converter
// makes Markdown content render as preformatted text.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(r *HTML) {
		r.markdown = md
	}
}

// NewHTML returns an HTML renderer converting Markdown with goldmark's
// default CommonMark settings.
func NewHTML(opts ...Option) *HTML {
	r := &HTML{markdown: goldmark.New()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document renders root as a complete HTML page. A section root supplies the
// page title and its children form the body, with top level sections rendered
// at ctx.Level. Any other root is titled by its identifier and rendered into
// the body itself.
func (r *HTML) Document(w io.Writer, root *report.Node, ctx Context) error {
	log.Debug("render.HTML Document starting.")
	defer log.Debug("render.HTML Document completed.")

	if err := root.Content.Validate(); err != nil {
		log.Errorf("%s: node %q", constants.ErrUnknownContent, root.Identifier)
		return errors.WithMessagef(err, "node %q", root.Identifier)
	}

	var body bytes.Buffer
	title := root.Content.Title
	if root.Content.IsSection() {
		for _, child := range root.Children {
			if err := r.render(&body, child, ctx); err != nil {
				return err
			}
		}
	} else {
		title = root.Identifier
		if err := r.render(&body, root, ctx); err != nil {
			return err
		}
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<html>\n<head>\n  <title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return flush(w, &page)
}

// Render renders the subtree rooted at n as an HTML fragment.
func (r *HTML) Render(w io.Writer, n *report.Node, ctx Context) error {
	var buf bytes.Buffer
	if err := r.render(&buf, n, ctx); err != nil {
		return err
	}
	return flush(w, &buf)
}

// String renders the subtree rooted at n and returns the fragment.
func (r *HTML) String(n *report.Node, ctx Context) (string, error) {
	var buf bytes.Buffer
	if err := r.render(&buf, n, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *HTML) render(buf *bytes.Buffer, n *report.Node, ctx Context) error {
	c := n.Content
	if err := c.Validate(); err != nil {
		log.Errorf("%s: node %q", constants.ErrUnknownContent, n.Identifier)
		return errors.WithMessagef(err, "node %q", n.Identifier)
	}

	switch {
	case c.IsSection():
		level := ctx.heading()
		if ctx.Anchors && n.Identifier != "" {
			fmt.Fprintf(buf, "  <h%d id=\"%s\">%s</h%d>\n", level, html.EscapeString(n.Identifier), html.EscapeString(c.Title), level)
		} else {
			fmt.Fprintf(buf, "  <h%d>%s</h%d>\n", level, html.EscapeString(c.Title), level)
		}
		for _, child := range n.Children {
			if err := r.render(buf, child, ctx.Child()); err != nil {
				return err
			}
		}
		return nil
	case c.Kind == report.KindHTML:
		buf.WriteString(c.Body)
	case c.Kind == report.KindMarkdown:
		if err := r.renderMarkdown(buf, c.Body); err != nil {
			return errors.WithMessagef(err, "node %q", n.Identifier)
		}
	case c.Kind == report.KindText:
		fmt.Fprintf(buf, "<p>%s</p>\n", html.EscapeString(c.Body))
	}

	// content nodes keep the heading level of their parent section
	for _, child := range n.Children {
		if err := r.render(buf, child, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *HTML) renderMarkdown(buf *bytes.Buffer, source string) error {
	if r.markdown == nil {
		fmt.Fprintf(buf, "<pre>%s</pre>\n", html.EscapeString(source))
		return nil
	}
	if err := r.markdown.Convert([]byte(source), buf); err != nil {
		log.Errorf("%s: %s", constants.ErrRendering, err)
		return errors.Wrap(constants.ErrRendering, err.Error())
	}
	return nil
}

func flush(w io.Writer, buf *bytes.Buffer) error {
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("%s: %s", constants.ErrRendering, err)
		return errors.Wrap(constants.ErrRendering, err.Error())
	}
	return nil
}
