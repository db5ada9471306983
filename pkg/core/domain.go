package core

import "fmt"

// EventType represents the type of change observed on the storage file.
type EventType string

const (
	// EventAppend reports a note appended to the storage file.
	EventAppend EventType = "APPEND"
	// EventReset reports the storage file was truncated, replaced or removed.
	// Readers should discard what they have seen so far.
	EventReset EventType = "RESET"
)

// Event represents a change in the notebook.
type Event struct {
	Type      EventType
	Note      Note
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	if e.Type == EventAppend {
		return fmt.Sprintf("%s %s", e.Type, e.Note)
	}
	return string(e.Type)
}
