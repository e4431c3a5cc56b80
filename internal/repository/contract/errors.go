package contract

import "errors"

var (
	// ErrNoteNotFound covers both a missing id and a note owned by someone else.
	ErrNoteNotFound = errors.New("note not found")
	// ErrNoteNotUnique means a single-row lookup matched more than one row.
	ErrNoteNotUnique = errors.New("note lookup matched more than one row")
)
