// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.AddNoteRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.AddNote(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Envelope: models.Envelope{Error: false, Message: msgNoteAdded},
		Note:     note,
	}, http.StatusOK)
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.EditNoteRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, err)
		return
	}

	noteID, ok := noteIDFromRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.EditNote(r.Context(), userID, noteID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Envelope: models.Envelope{Error: false, Message: msgNoteUpdated},
		Note:     note,
	}, http.StatusOK)
}

func (h *Handler) getAllNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.GetAllNotes(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeNotes(w, notes, msgAllNotesRetrieved)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	noteID, ok := noteIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, http.StatusOK, false, msgNoteDeleted)
}

func (h *Handler) pinNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	// an empty body reads as {}
	var req models.PinNoteRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, err)
		return
	}

	noteID, ok := noteIDFromRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.PinNote(r.Context(), userID, noteID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Envelope: models.Envelope{Error: false, Message: msgNotePinned},
		Note:     note,
	}, http.StatusOK)
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	req := models.SearchNotesRequest{Query: r.URL.Query().Get("query")}

	notes, err := h.services.NoteService.SearchNotes(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeNotes(w, notes, msgSearchRetrieved)
}

// noteIDFromRequest reads {noteId}. Ids that are not UUIDs cannot exist and
// are answered like a missing note.
func noteIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	noteID := chi.URLParam(r, "noteId")
	if !utils.IsValidID(noteID) {
		writeError(w, r, store.ErrNoteNotFound)
		return "", false
	}

	return noteID, true
}

func writeNotes(w http.ResponseWriter, notes []models.Note, message string) {
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, models.NotesResponse{
		Envelope: models.Envelope{Error: false, Message: message},
		Notes:    notes,
	}, http.StatusOK)
}
