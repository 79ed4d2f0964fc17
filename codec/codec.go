// Package codec encodes trees to, and decodes them from, JSON, YAML and gob.
// The encodings are tree-shaped: identifier, ordered children and content of
// every node are reproduced exactly, without any identity tracking.
package codec

import (
	"encoding/gob"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/montaguethomas/reportree/constants"
	"github.com/montaguethomas/reportree/log"
	"github.com/montaguethomas/reportree/node"
)

// Format is a structural encoding of a tree.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	Gob  Format = "gob"
)

// Formats lists every supported format.
var Formats = []Format{JSON, YAML, Gob}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, YAML, Gob:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", errors.Wrapf(constants.ErrUnknownFormat, "%q", s)
}

// FormatFromPath guesses the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Wrapf(constants.ErrUnknownFormat, "no extension in %q", path)
	}
	return ParseFormat(ext)
}

// Encode writes the tree rooted at n to w.
func Encode[T any](w io.Writer, f Format, n *node.Node[T]) error {
	log.Debugf("codec Encode %s starting.", f)
	defer log.Debugf("codec Encode %s completed.", f)

	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(n); err != nil {
			log.Errorf("%s: %s", constants.ErrJSONEncoding, err)
			return errors.Wrap(constants.ErrJSONEncoding, err.Error())
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			log.Errorf("%s: %s", constants.ErrYAMLEncoding, err)
			return errors.Wrap(constants.ErrYAMLEncoding, err.Error())
		}
		if err := enc.Close(); err != nil {
			log.Errorf("%s: %s", constants.ErrYAMLEncoding, err)
			return errors.Wrap(constants.ErrYAMLEncoding, err.Error())
		}
	case Gob:
		if err := gob.NewEncoder(w).Encode(n); err != nil {
			log.Errorf("%s: %s", constants.ErrGOBEncoding, err)
			return errors.Wrap(constants.ErrGOBEncoding, err.Error())
		}
	default:
		log.Errorf("%s: %q", constants.ErrUnknownFormat, f)
		return errors.Wrapf(constants.ErrUnknownFormat, "%q", f)
	}
	return nil
}

// Decode reads a tree from r.
func Decode[T any](r io.Reader, f Format) (*node.Node[T], error) {
	log.Debugf("codec Decode %s starting.", f)
	defer log.Debugf("codec Decode %s completed.", f)

	n := new(node.Node[T])
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(n); err != nil {
			log.Errorf("%s: %s", constants.ErrJSONDecoding, err)
			return nil, errors.Wrap(constants.ErrJSONDecoding, err.Error())
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(n); err != nil {
			log.Errorf("%s: %s", constants.ErrYAMLDecoding, err)
			return nil, errors.Wrap(constants.ErrYAMLDecoding, err.Error())
		}
	case Gob:
		if err := gob.NewDecoder(r).Decode(n); err != nil {
			log.Errorf("%s: %s", constants.ErrGOBDecoding, err)
			return nil, errors.Wrap(constants.ErrGOBDecoding, err.Error())
		}
	default:
		log.Errorf("%s: %q", constants.ErrUnknownFormat, f)
		return nil, errors.Wrapf(constants.ErrUnknownFormat, "%q", f)
	}
	return n, nil
}

// DecodeFile reads the tree stored in path, picking the format from its
// extension. The format is returned alongside so the caller can write the
// tree back the same way.
func DecodeFile[T any](path string) (*node.Node[T], Format, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}

	file, err := os.Open(path)
	if err != nil {
		log.Errorf("%s %q: %s", constants.ErrOpenFile, path, err)
		return nil, "", errors.Wrap(constants.ErrOpenFile, err.Error())
	}
	defer file.Close()

	n, err := Decode[T](file, f)
	if err != nil {
		return nil, "", errors.WithMessage(err, path)
	}
	log.Debugf("decoded tree %q from %q.", n.Identifier, path)
	return n, f, nil
}
