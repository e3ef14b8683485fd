package site

import "errors"

// Classification errors.
//
// Design decision: We use package-level sentinel errors so callers can
// distinguish "you pointed me at a file" from "the directory could not
// be enumerated" with errors.Is(), while the wrapped message still
// carries the offending path.
var (
	// ErrNotADirectory is returned when the scan target does not exist
	// or is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrDirectoryRead is returned when the directory entries cannot
	// be enumerated (permission problems, I/O errors).
	ErrDirectoryRead = errors.New("failed to read directory")
)
