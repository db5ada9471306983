package fs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/jot/pkg/core"
)

const (
	// DefaultPerm is used when the notebook file has to be created.
	DefaultPerm os.FileMode = 0644
)

// Repository implements core.Repository on top of a single append-only text file.
// One note is stored per line.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path     string
	Perm     os.FileMode // Mode for a newly created notebook. Zero means DefaultPerm.
	ReadOnly bool
	Logger   *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
// No I/O happens until a method is called.
func NewRepository(config Config) *Repository {
	if config.Perm == 0 {
		config.Perm = DefaultPerm
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize validates the notebook path.
// The file itself is created lazily by the first Append.
// An unusable path is only logged: Append and List report it as
// core.ErrWrite and core.ErrRead, so the caller can keep running.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.Path == "" {
		return fmt.Errorf("notebook path is empty")
	}

	info, err := os.Stat(r.Path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		r.warn("notebook path cannot be inspected", err)
	case info.IsDir():
		r.warn("notebook path is a directory", nil)
	}
	return nil
}

func (r *Repository) warn(msg string, err error) {
	if r.config.Logger == nil {
		return
	}
	if err != nil {
		r.config.Logger.Warn(msg, "path", r.Path, "error", err)
		return
	}
	r.config.Logger.Warn(msg, "path", r.Path)
}

// Append writes n as a single line at the end of the notebook, creating the
// file (and its parent directories) if absent. The write is synced before
// Append returns.
func (r *Repository) Append(ctx context.Context, n core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(r.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %w", core.ErrWrite, err)
		}
	}

	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, r.config.Perm)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}

	// A single write keeps the line intact with O_APPEND.
	if _, err := f.WriteString(n.String() + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: failed to sync: %w", core.ErrWrite, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("note written", "path", r.Path)
	}
	return nil
}

// List reads every line of the notebook in order.
func (r *Repository) List(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.Path)
	if os.IsNotExist(err) {
		return nil, core.ErrNoNotes
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrRead, err)
	}
	defer f.Close()

	notes, err := readNotes(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrRead, err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("notes read", "path", r.Path, "count", len(notes))
	}
	return notes, nil
}

// readNotes splits src on '\n'. A final line without terminator is kept.
// bufio.Reader is used instead of a Scanner so long lines are never rejected.
func readNotes(src io.Reader) ([]core.Note, error) {
	var notes []core.Note
	br := bufio.NewReader(src)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			notes = append(notes, parseLine(line))
		}
		if err == io.EOF {
			return notes, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func parseLine(line string) core.Note {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	n, _ := core.ParseNote(line)
	return n
}
