// Package report provides the content carried by the nodes of a report tree
// (sections, raw HTML, Markdown and plain text) and helpers to build such a
// tree fluently.
package report

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/montaguethomas/reportree/constants"
	"github.com/montaguethomas/reportree/node"
)

// Kind is the type of a piece of report content.
type Kind string

const (
	KindSection  Kind = "section"
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
	KindText     Kind = "text"
)

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSection, KindHTML, KindMarkdown, KindText:
		return k, nil
	case "md":
		return KindMarkdown, nil
	}
	return "", errors.Wrapf(constants.ErrUnknownContent, "%q", s)
}

// Content is the payload of a report node. The zero value is an untitled
// section.
type Content struct {
	Kind  Kind   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Body  string `json:"body,omitempty" yaml:"body,omitempty"`
}

// Node is a node of a report tree.
type Node = node.Node[Content]

// Section returns section content with the given heading.
func Section(title string) Content {
	return Content{Kind: KindSection, Title: title}
}

// HTML returns content which is rendered verbatim.
func HTML(html string) Content {
	return Content{Kind: KindHTML, Body: html}
}

// Markdown returns content holding Markdown source.
func Markdown(md string) Content {
	return Content{Kind: KindMarkdown, Body: md}
}

// Text returns plain text content.
func Text(text string) Content {
	return Content{Kind: KindText, Body: text}
}

// NewContent returns content of kind k. For sections value is the title, for every
// other kind the body.
func NewContent(k Kind, value string) (Content, error) {
	switch k {
	case KindSection, "":
		return Section(value), nil
	case KindHTML:
		return HTML(value), nil
	case KindMarkdown:
		return Markdown(value), nil
	case KindText:
		return Text(value), nil
	}
	return Content{}, errors.Wrapf(constants.ErrUnknownContent, "%q", k)
}

// IsSection reports whether c is a section. Content without a kind is one.
func (c Content) IsSection() bool {
	return c.Kind == KindSection || c.Kind == ""
}

// Validate returns constants.ErrUnknownContent for kinds this package does
// not know about.
func (c Content) Validate() error {
	if c.IsSection() {
		return nil
	}
	switch c.Kind {
	case KindHTML, KindMarkdown, KindText:
		return nil
	}
	return errors.Wrapf(constants.ErrUnknownContent, "%q", c.Kind)
}

func (c Content) String() string {
	if c.IsSection() {
		return fmt.Sprintf("section %q", c.Title)
	}
	body := c.Body
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[:i] + "..."
	}
	return fmt.Sprintf("%s %q", c.Kind, body)
}
