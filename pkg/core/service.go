package core

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Service handles the business logic for notes.
type Service struct {
	repo   Repository
	now    func() time.Time
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source used to stamp new notes.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddNote stamps content with the current local time and appends it.
// Empty content is allowed. Line breaks are folded into spaces.
func (s *Service) AddNote(ctx context.Context, content string) (Note, error) {
	n := Note{
		Timestamp: s.now().Local().Truncate(time.Second),
		Content:   sanitize(content),
	}

	if err := s.repo.Append(ctx, n); err != nil {
		if s.logger != nil {
			s.logger.Debug("failed to append note", "error", err)
		}
		return Note{}, err
	}

	if s.logger != nil {
		s.logger.Debug("note appended", "timestamp", n.Timestamp.Format(TimestampLayout), "length", len(n.Content))
	}
	return n, nil
}

// ListNotes retrieves all notes in insertion order.
// It returns ErrNoNotes if no note was ever added, and an empty slice
// if the notebook exists but holds nothing.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	// Callers own user-facing reporting, so failures are only traced here.
	notes, err := s.repo.List(ctx)
	if err != nil {
		if s.logger != nil && !errors.Is(err, ErrNoNotes) {
			s.logger.Debug("failed to list notes", "error", err)
		}
		return nil, err
	}
	return notes, nil
}

// Watch observes new notes if the repository supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}
