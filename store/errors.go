package store

import "errors"

var (
	// ErrInvalidDocument wraps every document validation failure.
	ErrInvalidDocument = errors.New("store: invalid map document")

	// ErrUnsupportedFormat is returned for files with an unknown extension.
	ErrUnsupportedFormat = errors.New("store: unsupported document format")

	// ErrDuplicateMap is returned when two loaded documents share a map id.
	ErrDuplicateMap = errors.New("store: duplicate map ID")
)
