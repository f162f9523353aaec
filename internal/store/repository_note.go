package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. It executes
// all note CRUD operations against the "notes" table.
//
// Every read and write except CreateNote filters by user_id, so a note can
// only be seen or changed by its owner.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a fully populated note. A missing owner is reported
// as [ErrNoUserWasFound].
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = n.ExecContext(ctx, query, args...); err != nil {
		if n.classify(err) == ForeignKeyViolation {
			return models.Note{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// FindNote returns the note with noteID owned by userID or [ErrNoteNotFound].
func (n *noteRepository) FindNote(ctx context.Context, noteID, userID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(n.builder, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FindNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(n.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).
			Str("func", "noteRepository.FindNote").
			Str("note_id", noteID).
			Str("user_id", userID).
			Msg("failed to query note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// UpdateNote saves title, content, tags, pin state and last edit time of
// an existing note owned by note.UserID.
func (n *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", note.ID).
			Str("user_id", note.UserID).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return note, nil
}

// DeleteNote removes the note with noteID owned by userID.
func (n *noteRepository) DeleteNote(ctx context.Context, noteID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(n.builder, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID).
			Str("user_id", userID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ListNotes returns every note of userID, pinned notes first.
// Returns an empty slice when the user has no notes.
func (n *noteRepository) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	query, args, err := buildListNotesQuery(n.builder, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryNotes(ctx, "noteRepository.ListNotes", userID, query, args)
}

// SearchNotes returns notes of userID whose title or content contains
// query, case-insensitively. Returns an empty slice when nothing matches.
func (n *noteRepository) SearchNotes(ctx context.Context, userID, query string) ([]models.Note, error) {
	sqlQuery, args, err := buildSearchNotesQuery(n.builder, userID, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.SearchNotes").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryNotes(ctx, "noteRepository.SearchNotes", userID, sqlQuery, args)
}

func (n *noteRepository) queryNotes(ctx context.Context, funcName, userID, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := n.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("user_id", userID).
			Msg("failed to execute query for getting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Str("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Tags,
		&note.IsPinned,
		&note.CreatedOn,
		&note.LastEdited,
	)

	return note, err
}
