package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteValidationService validates note requests before handing them to the
// wrapped NoteService. Requests without a body to check are passed through.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) AddNote(ctx context.Context, userID string, req models.AddNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before saving: %w", err)
	}

	return v.inner.AddNote(ctx, userID, req)
}

func (v *NoteValidationService) EditNote(ctx context.Context, userID, noteID string, req models.EditNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before update: %w", err)
	}

	return v.inner.EditNote(ctx, userID, noteID, req)
}

func (v *NoteValidationService) GetAllNotes(ctx context.Context, userID string) ([]models.Note, error) {
	return v.inner.GetAllNotes(ctx, userID)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID, noteID string) error {
	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *NoteValidationService) PinNote(ctx context.Context, userID, noteID string, req models.PinNoteRequest) (models.Note, error) {
	return v.inner.PinNote(ctx, userID, noteID, req)
}

func (v *NoteValidationService) SearchNotes(ctx context.Context, userID string, req models.SearchNotesRequest) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during search query validation: %w", err)
	}

	return v.inner.SearchNotes(ctx, userID, req)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
