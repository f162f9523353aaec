package store

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable = "users"
	notesTable = "notes"
)

var (
	userColumns = []string{"id", "fullname", "email", "username", "password", "created_on"}
	noteColumns = []string{"id", "user_id", "title", "content", "tags", "is_pinned", "created_on", "last_edited"}
)

// likeEscaper escapes LIKE wildcards so a search query matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.FullName, user.Email, user.Username, user.Password, user.CreatedOn).
		ToSql()
}

// buildSelectUserQuery selects a single user by one unique column
// ("id", "email" or "username").
func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.UserID, note.Title, note.Content, note.Tags, note.IsPinned, note.CreatedOn, note.LastEdited).
		ToSql()
}

func buildSelectNoteQuery(b sq.StatementBuilderType, noteID, userID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Limit(1).
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Update(notesTable).
		Set("title", note.Title).
		Set("content", note.Content).
		Set("tags", note.Tags).
		Set("is_pinned", note.IsPinned).
		Set("last_edited", note.LastEdited).
		Where(sq.Eq{"id": note.ID, "user_id": note.UserID}).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, noteID, userID string) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

// buildListNotesQuery selects all notes of a user, pinned first.
func buildListNotesQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_pinned DESC", "created_on ASC", "id ASC").
		ToSql()
}

// buildSearchNotesQuery selects notes of a user whose title or content
// contains query, ignoring case.
func buildSearchNotesQuery(b sq.StatementBuilderType, userID, query string) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(content) LIKE ? ESCAPE '\'`, pattern),
		}).
		OrderBy("is_pinned DESC", "created_on ASC", "id ASC").
		ToSql()
}
