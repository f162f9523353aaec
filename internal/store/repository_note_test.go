// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return &noteRepository{DB: newPostgresDB(db, l), logger: l}, mock
}

func testNote() models.Note {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.Note{
		ID:         "0192f7a4-0000-7000-8000-000000000001",
		UserID:     "0192f7a4-0000-7000-8000-0000000000aa",
		Title:      "Groceries",
		Content:    "milk, eggs",
		Tags:       models.Tags{"home"},
		IsPinned:   false,
		CreatedOn:  created,
		LastEdited: created,
	}
}

func noteRows(notes ...models.Note) *sqlmock.Rows {
	rows := sqlmock.NewRows(noteColumns)
	for _, n := range notes {
		rows.AddRow(n.ID, n.UserID, n.Title, n.Content, `["home"]`, n.IsPinned, n.CreatedOn, n.LastEdited)
	}
	return rows
}

func TestNoteRepository_CreateNote(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		wantErr error
	}{
		{name: "success"},
		{name: "owner missing", result: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrNoUserWasFound},
		{name: "db error", result: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)
			note := testNote()

			exp := mock.ExpectExec("INSERT INTO notes").
				WithArgs(note.ID, note.UserID, note.Title, note.Content, `["home"]`, note.IsPinned, note.CreatedOn, note.LastEdited)
			if tt.result != nil {
				exp.WillReturnError(tt.result)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			created, err := repo.CreateNote(context.Background(), note)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, note, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoteRepository_FindNote(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		note := testNote()

		mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE id = $1 AND user_id = $2 LIMIT 1")).
			WithArgs(note.ID, note.UserID).
			WillReturnRows(noteRows(note))

		got, err := repo.FindNote(context.Background(), note.ID, note.UserID)
		require.NoError(t, err)
		assert.Equal(t, note, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectQuery("FROM notes").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindNote(context.Background(), "n", "u")
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectQuery("FROM notes").WillReturnError(errors.New("boom"))

		_, err := repo.FindNote(context.Background(), "n", "u")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestNoteRepository_UpdateNote(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		note := testNote()
		note.IsPinned = true

		mock.ExpectExec(regexp.QuoteMeta("UPDATE notes SET title = $1, content = $2, tags = $3, is_pinned = $4, last_edited = $5 WHERE id = $6 AND user_id = $7")).
			WithArgs(note.Title, note.Content, `["home"]`, true, note.LastEdited, note.ID, note.UserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := repo.UpdateNote(context.Background(), note)
		require.NoError(t, err)
		assert.True(t, got.IsPinned)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectExec("UPDATE notes").WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateNote(context.Background(), testNote())
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectExec("UPDATE notes").WillReturnError(errors.New("boom"))

		_, err := repo.UpdateNote(context.Background(), testNote())
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestNoteRepository_DeleteNote(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE id = $1 AND user_id = $2")).
			WithArgs("n", "u").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteNote(context.Background(), "n", "u"))
	})

	t.Run("foreign note", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectExec("DELETE FROM notes").
			WithArgs("n", "other").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteNote(context.Background(), "n", "other"), ErrNoteNotFound)
	})
}

func TestNoteRepository_ListNotes(t *testing.T) {
	t.Run("pinned first", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		pinned := testNote()
		pinned.ID = "pinned"
		pinned.IsPinned = true
		plain := testNote()

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY is_pinned DESC, created_on ASC, id ASC")).
			WithArgs(plain.UserID).
			WillReturnRows(noteRows(pinned, plain))

		notes, err := repo.ListNotes(context.Background(), plain.UserID)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "pinned", notes[0].ID)
		assert.Equal(t, models.Tags{"home"}, notes[1].Tags)
	})

	t.Run("empty is not nil", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectQuery("FROM notes").WillReturnRows(sqlmock.NewRows(noteColumns))

		notes, err := repo.ListNotes(context.Background(), "u")
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectQuery("FROM notes").WillReturnError(errors.New("boom"))

		_, err := repo.ListNotes(context.Background(), "u")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		mock.ExpectQuery("FROM notes").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only-id"))

		_, err := repo.ListNotes(context.Background(), "u")
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("rows error", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)

		rows := noteRows(testNote()).RowError(0, errors.New("broken row"))
		mock.ExpectQuery("FROM notes").WillReturnRows(rows)

		_, err := repo.ListNotes(context.Background(), "u")
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestNoteRepository_SearchNotes(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := testNote()

	mock.ExpectQuery(regexp.QuoteMeta(`(LOWER(title) LIKE $2 ESCAPE '\' OR LOWER(content) LIKE $3 ESCAPE '\')`)).
		WithArgs(note.UserID, "%milk%", "%milk%").
		WillReturnRows(noteRows(note))

	notes, err := repo.SearchNotes(context.Background(), note.UserID, "MILK")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
