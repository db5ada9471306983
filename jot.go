package jot

import (
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Service is a public alias for the notebook service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source used to stamp notes.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithReadOnly opens the notebook without ever writing to it.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithPerm sets the file mode used when the notebook is first created.
func WithPerm(perm os.FileMode) Option {
	return platform.WithPerm(perm)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// --- Factory ---

// New creates a notebook Service backed by the file at path.
// The file is created on the first note added.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init prepares a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Configuration Loading ---

// Config is the resolved CLI configuration.
type Config = platform.Config

// ConfigSources lists where LoadConfig looks for settings.
type ConfigSources = platform.ConfigSources

// DefaultFile is the notebook used when nothing else is configured.
const DefaultFile = platform.DefaultFile

// LoadConfig resolves configuration with priority: flag > env > config file > default.
func LoadConfig(src ConfigSources) (*Config, error) {
	return platform.LoadConfig(src)
}
