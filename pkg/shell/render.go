package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/jot/pkg/core"
)

// Notebook is the subset of core.Service the shell drives.
type Notebook interface {
	AddNote(ctx context.Context, content string) (core.Note, error)
	ListNotes(ctx context.Context) ([]core.Note, error)
}

// AddNote stores content and tells the user how it went.
// The notebook error, if any, is returned after being reported.
func AddNote(ctx context.Context, nb Notebook, out io.Writer, content string) error {
	if _, err := nb.AddNote(ctx, content); err != nil {
		fmt.Fprintln(out, MsgWriteError)
		return err
	}
	fmt.Fprintln(out, MsgNoteAdded)
	return nil
}

// ViewNotes prints every note between a header and a footer.
// A notebook that was never written to is not an error.
func ViewNotes(ctx context.Context, nb Notebook, out io.Writer) error {
	notes, err := nb.ListNotes(ctx)
	switch {
	case errors.Is(err, core.ErrNoNotes):
		fmt.Fprintln(out, MsgNoNotes)
		return nil
	case err != nil:
		fmt.Fprintln(out, MsgReadError)
		return err
	case len(notes) == 0:
		fmt.Fprintln(out, MsgEmpty)
		return nil
	}

	fmt.Fprintln(out, Header)
	for _, n := range notes {
		fmt.Fprintln(out, strings.TrimSpace(n.String()))
	}
	fmt.Fprintln(out, Footer)
	return nil
}
