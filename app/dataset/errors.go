package dataset

import "errors"

// Fatal run errors. Wrapped with context, match with errors.Is.
var (
	ErrInputAccess    = errors.New("input not accessible")
	ErrMalformedInput = errors.New("malformed input")
	ErrOutputWrite    = errors.New("output not writable")
)
