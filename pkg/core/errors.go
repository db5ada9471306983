package core

import "errors"

// Common errors.
var (
	// ErrNoNotes is returned when the storage file does not exist yet.
	// It is a valid state, not a failure.
	ErrNoNotes = errors.New("no notes found")

	// ErrWrite wraps any I/O failure while appending a note.
	ErrWrite = errors.New("could not write to the notes file")

	// ErrRead wraps any I/O failure while reading notes, other than absence.
	ErrRead = errors.New("could not read the notes file")

	ErrReadOnly = errors.New("notebook is in read-only mode")
)
