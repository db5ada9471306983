package core_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Watchable to test fallback/errors.
type MockRepository struct {
	notes   []core.Note
	created bool
	failErr error
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func (m *MockRepository) Append(ctx context.Context, n core.Note) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.created = true
	m.notes = append(m.notes, n)
	return nil
}

func (m *MockRepository) List(ctx context.Context) ([]core.Note, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	if !m.created {
		return nil, core.ErrNoNotes
	}
	return append([]core.Note{}, m.notes...), nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_AddAndList(t *testing.T) {
	repo := &MockRepository{}
	at := time.Date(2024, 3, 9, 14, 5, 7, 987654321, time.Local)
	service := core.NewService(repo, core.WithClock(fixedClock(at)))
	ctx := context.TODO()

	// 1. Nothing stored yet
	if _, err := service.ListNotes(ctx); !errors.Is(err, core.ErrNoNotes) {
		t.Fatalf("expected ErrNoNotes before first add, got %v", err)
	}

	// 2. Add
	n, err := service.AddNote(ctx, "buy milk")
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if got, want := n.String(), "[2024-03-09 14:05:07] buy milk"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// 3. Order is preserved
	_, _ = service.AddNote(ctx, "call mom")
	notes, err := service.ListNotes(ctx)
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Content != "buy milk" || notes[1].Content != "call mom" {
		t.Errorf("unexpected order: %v", notes)
	}
}

func TestService_AddNote_Sanitizes(t *testing.T) {
	repo := &MockRepository{}
	service := core.NewService(repo)

	n, err := service.AddNote(context.TODO(), "line one\nline two\r\nline three")
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if n.Content != "line one line two line three" {
		t.Errorf("unexpected content: %q", n.Content)
	}
	if n.Timestamp.Nanosecond() != 0 {
		t.Errorf("expected second precision, got %v", n.Timestamp)
	}
}

func TestService_AddNote_Empty(t *testing.T) {
	repo := &MockRepository{}
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	service := core.NewService(repo, core.WithClock(fixedClock(at)))

	n, err := service.AddNote(context.TODO(), "")
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if got := n.String(); got != "[2024-01-01 00:00:00] " {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestService_PropagatesErrors(t *testing.T) {
	repo := &MockRepository{failErr: core.ErrWrite}
	service := core.NewService(repo)

	if _, err := service.AddNote(context.TODO(), "x"); !errors.Is(err, core.ErrWrite) {
		t.Errorf("expected ErrWrite, got %v", err)
	}

	repo.failErr = core.ErrRead
	if _, err := service.ListNotes(context.TODO()); !errors.Is(err, core.ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := core.NewService(&MockRepository{})

	_, err := service.Watch(context.TODO())
	if err == nil {
		t.Fatal("expected error for non-watchable repo")
	}
	if err.Error() != "repository does not support watching" {
		t.Errorf("unexpected error msg: %v", err)
	}
}

func TestService_State(t *testing.T) {
	service := core.NewService(&MockRepository{})

	state, ok := service.State().(core.ServiceState)
	if !ok {
		t.Fatalf("unexpected state type %T", service.State())
	}
	if state.RepositoryType != "repository" {
		t.Errorf("expected generic repository type, got %q", state.RepositoryType)
	}
	if state.Watchable {
		t.Error("mock repository should not be watchable")
	}
}

func TestService_FailuresAreNotLoggedAsErrors(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	repo := &MockRepository{failErr: core.ErrWrite}
	service := core.NewService(repo, core.WithLogger(logger))

	_, _ = service.AddNote(context.TODO(), "x")
	repo.failErr = core.ErrRead
	_, _ = service.ListNotes(context.TODO())

	if strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("callers report failures; service should not log errors:\n%s", logs.String())
	}
	if !strings.Contains(logs.String(), "failed to append note") {
		t.Errorf("expected a debug trace of the failure, got:\n%s", logs.String())
	}
}
