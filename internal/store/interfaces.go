package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// NoteRepository persists notes. Every method except CreateNote is scoped
// by the owning user id.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	FindNote(ctx context.Context, noteID, userID string) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	SearchNotes(ctx context.Context, userID, query string) ([]models.Note, error)
}

// ErrorClassificator maps driver errors of a particular database to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
