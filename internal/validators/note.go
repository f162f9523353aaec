// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants used to restrict note validation to a subset of
// fields.
const (
	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"

	// FieldChanges requires an edit request to carry at least one of
	// title, content or tags.
	FieldChanges = "changes"

	// FieldQuery targets the search query.
	FieldQuery = "query"
)

// NoteValidator implements the Validator interface for note requests:
// AddNoteRequest, EditNoteRequest and SearchNotesRequest.
//
// It supports both value and pointer forms of every request type and allows
// optional field-level scoping via variadic field name arguments.
type NoteValidator struct{}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known request.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddNoteRequest:
		return v.validateAddNoteRequest(value, fields...)
	case *models.AddNoteRequest:
		return v.validateAddNoteRequest(*value, fields...)

	case models.EditNoteRequest:
		return v.validateEditNoteRequest(value, fields...)
	case *models.EditNoteRequest:
		return v.validateEditNoteRequest(*value, fields...)

	case models.SearchNotesRequest:
		return v.validateSearchNotesRequest(value, fields...)
	case *models.SearchNotesRequest:
		return v.validateSearchNotesRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateAddNoteRequest checks title then content.
// Tags are optional and never validated.
func (v *NoteValidator) validateAddNoteRequest(req models.AddNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title == "" {
				return ErrTitleRequired
			}
		case FieldContent:
			if req.Content == "" {
				return ErrContentRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEditNoteRequest rejects edits without title, content or tags.
// An edit carrying only isPinned is rejected too.
func (v *NoteValidator) validateEditNoteRequest(req models.EditNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			if !req.HasChanges() {
				return ErrNoChangesProvided
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateSearchNotesRequest(req models.SearchNotesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if req.Query == "" {
				return ErrSearchQueryRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
