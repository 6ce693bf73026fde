package resizer

import "errors"

var (
	// ErrNotFound is returned when a typed path does not exist.
	ErrNotFound = errors.New("file does not exist")
	// ErrIsDirectory is returned when a typed path names a directory.
	ErrIsDirectory = errors.New("file is a directory")
	// ErrInvalidNumber is returned when a dimension is not a whole number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDecodeFailure is returned when a file exists but is not a readable image.
	ErrDecodeFailure = errors.New("cannot decode image")
	// ErrEncodeFailure is returned when there is nothing to save or the destination cannot be written.
	ErrEncodeFailure = errors.New("cannot encode image")
	// ErrNoImage is returned by operations that need a source image before one is loaded.
	ErrNoImage = errors.New("no image loaded")
)
