package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Storage is append-only: notes are never edited or removed once written.
type Repository interface {
	// Initialize ensures the underlying storage is usable.
	// It must not create the notebook itself; that happens on the first Append.
	Initialize(ctx context.Context) error

	// Append persists a note after every note already stored.
	Append(ctx context.Context, n Note) error

	// List returns all notes in insertion order.
	// It returns ErrNoNotes if nothing was ever stored.
	List(ctx context.Context) ([]Note, error)
}

// Watchable defines an interface for repositories that can report new notes.
type Watchable interface {
	// Watch emits an event for every note appended after the call.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
