package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID string) (models.User, error)

	// Logout removes the account userID. Only the owner (callerID) may do so.
	Logout(ctx context.Context, callerID, userID string) error
}

// NoteService manages the notes of a single user. Every method takes the
// owner's id and never touches notes of other users.
type NoteService interface {
	AddNote(ctx context.Context, userID string, req models.AddNoteRequest) (models.Note, error)
	EditNote(ctx context.Context, userID, noteID string, req models.EditNoteRequest) (models.Note, error)
	GetAllNotes(ctx context.Context, userID string) ([]models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
	PinNote(ctx context.Context, userID, noteID string, req models.PinNoteRequest) (models.Note, error)
	SearchNotes(ctx context.Context, userID string, req models.SearchNotesRequest) ([]models.Note, error)
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
