package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerNoteService struct {
	calls int

	addFn    func(ctx context.Context, userID string, req models.AddNoteRequest) (models.Note, error)
	editFn   func(ctx context.Context, userID, noteID string, req models.EditNoteRequest) (models.Note, error)
	listFn   func(ctx context.Context, userID string) ([]models.Note, error)
	deleteFn func(ctx context.Context, userID, noteID string) error
	pinFn    func(ctx context.Context, userID, noteID string, req models.PinNoteRequest) (models.Note, error)
	searchFn func(ctx context.Context, userID string, req models.SearchNotesRequest) ([]models.Note, error)
}

func (m *mockInnerNoteService) AddNote(ctx context.Context, userID string, req models.AddNoteRequest) (models.Note, error) {
	m.calls++
	if m.addFn != nil {
		return m.addFn(ctx, userID, req)
	}
	return models.Note{}, nil
}

func (m *mockInnerNoteService) EditNote(ctx context.Context, userID, noteID string, req models.EditNoteRequest) (models.Note, error) {
	m.calls++
	if m.editFn != nil {
		return m.editFn(ctx, userID, noteID, req)
	}
	return models.Note{}, nil
}

func (m *mockInnerNoteService) GetAllNotes(ctx context.Context, userID string) ([]models.Note, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockInnerNoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, noteID)
	}
	return nil
}

func (m *mockInnerNoteService) PinNote(ctx context.Context, userID, noteID string, req models.PinNoteRequest) (models.Note, error) {
	m.calls++
	if m.pinFn != nil {
		return m.pinFn(ctx, userID, noteID, req)
	}
	return models.Note{}, nil
}

func (m *mockInnerNoteService) SearchNotes(ctx context.Context, userID string, req models.SearchNotesRequest) ([]models.Note, error) {
	m.calls++
	if m.searchFn != nil {
		return m.searchFn(ctx, userID, req)
	}
	return nil, nil
}

func newWrapped() (NoteService, *mockInnerNoteService) {
	inner := &mockInnerNoteService{}
	return NewNoteValidationService().Wrap(inner), inner
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestNoteValidationService_AddNote(t *testing.T) {
	svc, inner := newWrapped()
	ctx := context.Background()

	_, err := svc.AddNote(ctx, "u", models.AddNoteRequest{Content: "C"})
	assert.ErrorIs(t, err, validators.ErrTitleRequired)

	_, err = svc.AddNote(ctx, "u", models.AddNoteRequest{Title: "T"})
	assert.ErrorIs(t, err, validators.ErrContentRequired)
	assert.Zero(t, inner.calls, "inner service must not be called on invalid input")

	inner.addFn = func(_ context.Context, userID string, req models.AddNoteRequest) (models.Note, error) {
		return models.Note{UserID: userID, Title: req.Title}, nil
	}
	note, err := svc.AddNote(ctx, "u", models.AddNoteRequest{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.Equal(t, "u", note.UserID)
	assert.Equal(t, 1, inner.calls)
}

func TestNoteValidationService_EditNote(t *testing.T) {
	svc, inner := newWrapped()
	ctx := context.Background()

	_, err := svc.EditNote(ctx, "u", "n", models.EditNoteRequest{IsPinned: true})
	assert.ErrorIs(t, err, validators.ErrNoChangesProvided)
	assert.Zero(t, inner.calls)

	_, err = svc.EditNote(ctx, "u", "n", models.EditNoteRequest{Tags: models.Tags{"a"}})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestNoteValidationService_SearchNotes(t *testing.T) {
	svc, inner := newWrapped()
	ctx := context.Background()

	_, err := svc.SearchNotes(ctx, "u", models.SearchNotesRequest{})
	assert.ErrorIs(t, err, validators.ErrSearchQueryRequired)
	assert.Zero(t, inner.calls)

	_, err = svc.SearchNotes(ctx, "u", models.SearchNotesRequest{Query: "go"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestNoteValidationService_PassThrough(t *testing.T) {
	svc, inner := newWrapped()
	ctx := context.Background()

	_, _ = svc.GetAllNotes(ctx, "u")
	_ = svc.DeleteNote(ctx, "u", "n")
	_, _ = svc.PinNote(ctx, "u", "n", models.PinNoteRequest{})

	assert.Equal(t, 3, inner.calls)
}
