// Package config holds the settings of the reportree command.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/montaguethomas/reportree/codec"
	"github.com/montaguethomas/reportree/constants"
	"github.com/montaguethomas/reportree/log"
	"github.com/montaguethomas/reportree/render"
)

// Output formats understood besides the codec formats.
const (
	FormatHTML    = "html"
	FormatOutline = "outline"
)

// Config represents the command's configuration.
type Config struct {
	// Format is how trees are written: html, outline, or one of the codec
	// formats (json, yaml, gob).
	Format string `json:"format" yaml:"format"`

	// HeadingLevel is the level of the outermost section headings (1-6).
	HeadingLevel int `json:"headingLevel" yaml:"headingLevel"`

	// Anchors adds node identifiers as id attributes of HTML headings.
	Anchors bool `json:"anchors" yaml:"anchors"`

	// Markdown converts Markdown content to HTML. When false it is rendered
	// as preformatted text.
	Markdown bool `json:"markdown" yaml:"markdown"`

	// Color highlights identifiers in the outline format.
	Color bool `json:"color" yaml:"color"`

	// LogLevel is one of debug, info, warn, error or disable.
	LogLevel string `json:"logLevel" yaml:"logLevel"`

	// Title is the title of the demo report.
	Title string `json:"title" yaml:"title"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Format:       constants.DefaultFormat,
		HeadingLevel: constants.DefaultHeadingLevel,
		Anchors:      true,
		Markdown:     true,
		LogLevel:     "info",
		Title:        constants.DefaultTitle,
	}
}

// Load reads the YAML file at path on top of the defaults. Keys missing from
// the file keep their default value.
func Load(path string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("%s %q: %s", constants.ErrOpenFile, path, err)
		return nil, errors.Wrap(constants.ErrOpenFile, err.Error())
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		log.Errorf("%s: %s", constants.ErrYAMLDecoding, err)
		return nil, errors.Wrap(constants.ErrYAMLDecoding, err.Error())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("loaded configuration from %q.", path)
	return c, nil
}

// Validate fills in empty values and rejects invalid ones.
func (c *Config) Validate() error {
	if c.Format == "" {
		c.Format = constants.DefaultFormat
	}
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case FormatHTML, FormatOutline:
	default:
		f, err := codec.ParseFormat(c.Format)
		if err != nil {
			return errors.Wrapf(constants.ErrInvalidConfig, "format %q", c.Format)
		}
		c.Format = string(f)
	}

	if c.HeadingLevel == 0 {
		c.HeadingLevel = constants.DefaultHeadingLevel
	}
	if c.HeadingLevel < 1 || c.HeadingLevel > constants.MaxHeadingLevel {
		return errors.Wrapf(constants.ErrInvalidConfig, "headingLevel %d not within 1-%d", c.HeadingLevel, constants.MaxHeadingLevel)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(constants.ErrInvalidConfig, "logLevel %q", c.LogLevel)
	}

	if c.Title == "" {
		c.Title = constants.DefaultTitle
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// Context returns the render context for the outermost sections.
func (c *Config) Context() render.Context {
	return render.Context{
		Level:   c.HeadingLevel,
		Anchors: c.Anchors,
	}
}

// Renderer returns an HTML renderer honouring the Markdown setting.
func (c *Config) Renderer() *render.HTML {
	if !c.Markdown {
		return render.NewHTML(render.WithMarkdown(nil))
	}
	return render.NewHTML()
}
