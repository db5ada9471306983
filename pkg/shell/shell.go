package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Shell is the interactive add/view/exit loop.
type Shell struct {
	nb     Notebook
	in     *bufio.Reader
	out    *errWriter
	logger *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger for the shell.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// New creates a Shell reading choices from in and printing to out.
func New(nb Notebook, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		nb:  nb,
		in:  bufio.NewReader(in),
		out: &errWriter{w: out},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user picks Exit or input ends, both of which return nil.
// It returns early only if ctx is cancelled or out can no longer be written.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return s.out.err
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		done, err := s.dispatch(ctx, strings.TrimSpace(choice))
		if s.out.err != nil {
			return fmt.Errorf("failed to write output: %w", s.out.err)
		}
		if err != nil || done {
			return err
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, choice string) (done bool, err error) {
	if s.logger != nil {
		s.logger.Debug("menu choice", "choice", choice)
	}

	switch choice {
	case choiceAdd:
		fmt.Fprint(s.out, PromptNote)
		content, err := s.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return true, nil
		}
		if err != nil {
			return true, fmt.Errorf("failed to read input: %w", err)
		}
		// Reported to the user; the loop carries on.
		_ = AddNote(ctx, s.nb, s.out, content)

	case choiceView:
		_ = ViewNotes(ctx, s.nb, s.out)

	case choiceExit:
		fmt.Fprintln(s.out, MsgExiting)
		return true, nil

	default:
		fmt.Fprintln(s.out, MsgInvalidChoice)
	}
	return false, nil
}

func (s *Shell) printMenu() {
	fmt.Fprintf(s.out, "\n%s\n%s\n%s\n%s\n%s", MenuTitle, MenuAdd, MenuView, MenuExit, PromptInput)
}

// readLine returns the next line without its terminator.
// A last line without '\n' is returned normally; io.EOF only means nothing was left.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// errWriter remembers the first write failure and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
