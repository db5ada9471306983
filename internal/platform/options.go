package platform

import (
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// options holds the internal configuration for the jot service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	clock      func() time.Time
	readOnly   bool
	perm       os.FileMode
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		clock:      nil,
		readOnly:   false,
		perm:       0,
	}
}

// WithLogger sets the logger for the service and its storage.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source used to stamp notes (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithReadOnly enables read-only mode.
// In this mode adding a note returns core.ErrReadOnly and the notebook is never created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithPerm sets the file mode used when the notebook is first created.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
