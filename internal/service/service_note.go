// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService is the storage-backed NoteService. It expects requests that
// already passed validation; see NewNoteValidationService.
type noteService struct {
	noteRepository store.NoteRepository
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// AddNote creates an unpinned note owned by userID. Missing tags are stored
// as an empty list.
func (n *noteService) AddNote(ctx context.Context, userID string, req models.AddNoteRequest) (models.Note, error) {
	tags := req.Tags
	if tags == nil {
		tags = models.Tags{}
	}

	createdOn := now()
	note := models.Note{
		ID:         n.ids.Generate(),
		Title:      req.Title,
		Content:    req.Content,
		Tags:       tags,
		IsPinned:   false,
		UserID:     userID,
		CreatedOn:  createdOn,
		LastEdited: createdOn,
	}

	saved, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.AddNote").Str("user_id", userID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return saved, nil
}

// EditNote applies the non-empty parts of req to the note. IsPinned is only
// applied when true; an edit cannot unpin a note.
func (n *noteService) EditNote(ctx context.Context, userID, noteID string, req models.EditNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.FindNote(ctx, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "noteService.EditNote").Str("note_id", noteID).Msg("note search failed")
		return models.Note{}, fmt.Errorf("note search failed: %w", err)
	}

	if req.Title != "" {
		note.Title = req.Title
	}
	if req.Content != "" {
		note.Content = req.Content
	}
	if len(req.Tags) > 0 {
		note.Tags = req.Tags
	}
	if req.IsPinned {
		note.IsPinned = true
	}
	note.LastEdited = now()

	updated, err := n.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "noteService.EditNote").Str("note_id", noteID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

func (n *noteService) GetAllNotes(ctx context.Context, userID string) ([]models.Note, error) {
	notes, err := n.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.GetAllNotes").Str("user_id", userID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

func (n *noteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	if _, err := n.noteRepository.FindNote(ctx, noteID, userID); err != nil {
		log.Err(err).Str("func", "noteService.DeleteNote").Str("note_id", noteID).Msg("note search failed")
		return fmt.Errorf("note search failed: %w", err)
	}

	if err := n.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		log.Err(err).Str("func", "noteService.DeleteNote").Str("note_id", noteID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}

// PinNote sets the pin state to exactly the requested value.
func (n *noteService) PinNote(ctx context.Context, userID, noteID string, req models.PinNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.FindNote(ctx, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "noteService.PinNote").Str("note_id", noteID).Msg("note search failed")
		return models.Note{}, fmt.Errorf("note search failed: %w", err)
	}

	note.IsPinned = req.Pinned()
	note.LastEdited = now()

	updated, err := n.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "noteService.PinNote").Str("note_id", noteID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

func (n *noteService) SearchNotes(ctx context.Context, userID string, req models.SearchNotesRequest) ([]models.Note, error) {
	notes, err := n.noteRepository.SearchNotes(ctx, userID, req.Query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.SearchNotes").Str("user_id", userID).Msg("note search failed")
		return nil, fmt.Errorf("note search failed: %w", err)
	}

	return notes, nil
}
