package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingFile       = errors.New("file field is required")
)
