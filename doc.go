// Package jot is the Composition Root for the jot note-taking tool.
//
// It connects the core business logic (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) the same way the CLI does, so programs can add and list
// notes without going through the interactive menu.
//
// A notebook is a plain text file holding one note per line:
//
//	[2024-03-09 14:05:07] buy milk
//
// Notes are only ever appended. The file is created on the first note.
//
// Usage:
//
//	svc, err := jot.New("my_notes.txt", jot.WithLogger(logger))
//
//	// Add a note
//	note, err := svc.AddNote(ctx, "buy milk")
//
//	// Read them back, in insertion order
//	notes, err := svc.ListNotes(ctx)
package jot
