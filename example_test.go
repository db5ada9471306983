package jot_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
)

// Example_basic demonstrates how to open a notebook, add notes and read them back.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "jot-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// A fixed clock keeps the output stable.
	clock := func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local) }

	svc, err := jot.New(filepath.Join(tmpDir, "my_notes.txt"), jot.WithClock(clock))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.TODO()

	// 1. Nothing has been written yet
	if _, err := svc.ListNotes(ctx); errors.Is(err, core.ErrNoNotes) {
		fmt.Println("no notes yet")
	}

	// 2. Add two notes
	for _, content := range []string{"buy milk", "call the plumber"} {
		if _, err := svc.AddNote(ctx, content); err != nil {
			log.Fatal(err)
		}
	}

	// 3. List them in insertion order
	notes, err := svc.ListNotes(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range notes {
		fmt.Println(n)
	}

	// Output:
	// no notes yet
	// [2024-03-09 14:05:07] buy milk
	// [2024-03-09 14:05:07] call the plumber
}

// Example_readOnly shows that a read-only notebook refuses writes.
func Example_readOnly() {
	tmpDir, err := os.MkdirTemp("", "jot-readonly-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := jot.New(filepath.Join(tmpDir, "my_notes.txt"), jot.WithReadOnly(true))
	if err != nil {
		log.Fatal(err)
	}

	_, err = svc.AddNote(context.TODO(), "ignored")
	fmt.Println(err)

	// Output:
	// notebook is in read-only mode
}
