// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the notes REST API.
//
// [NotesAPI] decouples callers such as cmd/client from HTTP details. The
// HTTP implementation ([NewHTTPNotesAPI]) keeps the access token returned by
// Register and Login and attaches it to every protected request.
//
// Failed calls return an [*APIError] carrying the status and the server's
// message. It unwraps to sentinels defined in errors.go so that callers can
// use [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesAPI defines communication with the notes server.
type NotesAPI interface {
	// SetToken stores the bearer token attached to protected requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Version returns the plain text server version.
	Version(ctx context.Context) (string, error)

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates by username and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// GetUser returns the account the stored token belongs to.
	GetUser(ctx context.Context) (models.User, error)

	// Logout deletes the account with userID; it must be the caller's own.
	// The stored token is cleared on success.
	Logout(ctx context.Context, userID string) error

	AddNote(ctx context.Context, req models.AddNoteRequest) (models.Note, error)
	EditNote(ctx context.Context, noteID string, req models.EditNoteRequest) (models.Note, error)
	GetAllNotes(ctx context.Context) ([]models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	PinNote(ctx context.Context, noteID string, pinned bool) (models.Note, error)
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)
}
