package constants

import "errors"

var (
	// Tree errors
	ErrNodeNotFound = errors.New("node not found")
	ErrReplaceSelf  = errors.New("cannot replace the node the operation was invoked on")

	// Encoding errors
	ErrJSONEncoding  = errors.New("error encoding JSON")
	ErrJSONDecoding  = errors.New("error decoding JSON")
	ErrYAMLEncoding  = errors.New("error encoding YAML")
	ErrYAMLDecoding  = errors.New("error decoding YAML")
	ErrGOBEncoding   = errors.New("error encoding GOB")
	ErrGOBDecoding   = errors.New("error decoding GOB")
	ErrUnknownFormat = errors.New("unknown format")

	// Content errors
	ErrUnknownContent = errors.New("unknown content kind")
	ErrRendering      = errors.New("error rendering the node")

	// File errors
	ErrOpenFile = errors.New("error opening the file")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidLevel  = errors.New("invalid log level")
)
