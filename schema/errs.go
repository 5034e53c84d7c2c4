package schema

import "errors"

var (
	// ErrSchema reports a schema definition mistake. It is raised when the
	// schema is constructed and is fatal to that schema.
	ErrSchema = errors.New("schema error")

	// ErrParse reports malformed text on the decode side.
	ErrParse = errors.New("parse error")

	// ErrFormat reports a value that cannot be serialized on the encode side.
	ErrFormat = errors.New("format error")
)
