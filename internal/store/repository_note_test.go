// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/migrations"
	"github.com/MKhiriev/cosmic-brain/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T, dialect migrations.Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, dialect: dialect, logger: logger.Nop()}
	if dialect == migrations.Postgres {
		db.errorClassificator = NewPostgresErrorClassifier()
	} else {
		db.errorClassificator = NewSQLiteErrorClassifier()
	}
	return db, mock
}

func newTestNoteRepo(t *testing.T, dialect migrations.Dialect) (*noteRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, dialect)
	repo := &noteRepository{db: db, logger: logger.Nop(), now: func() time.Time { return fixedNow }}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func noteRows() *sqlmock.Rows {
	return sqlmock.NewRows(noteColumns)
}

// ── Insert ────────────────────────────────────────────────────────────────────

func TestNoteRepository_Insert_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectQuery(`INSERT INTO notes \(content,category,processed,created_at\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs("I need to remember to call my dentist", "tasks", false, fixedNow).
		WillReturnRows(noteRows().AddRow(7, "I need to remember to call my dentist", "tasks", false, fixedNow))

	saved, err := repo.Insert(context.Background(), models.Note{
		Content:  "I need to remember to call my dentist",
		Category: models.CategoryTasks,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, models.CategoryTasks, saved.Category)
	assert.Equal(t, fixedNow, saved.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Insert_SQLitePlaceholders(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.SQLite)

	mock.ExpectQuery(`INSERT INTO notes \(content,category,processed,created_at\) VALUES \(\?,\?,\?,\?\)`).
		WithArgs("plant basil", "garden", false, fixedNow).
		WillReturnRows(noteRows().AddRow(1, "plant basil", "garden", false, fixedNow))

	saved, err := repo.Insert(context.Background(), models.Note{Content: "plant basil", Category: models.CategoryGarden})

	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Insert_NoRow(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectQuery("INSERT INTO notes").WillReturnRows(noteRows())

	_, err := repo.Insert(context.Background(), models.Note{Content: "x", Category: models.CategoryRandom})
	assert.ErrorIs(t, err, ErrNoteNotSaved)
}

func TestNoteRepository_Insert_DBError(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectQuery("INSERT INTO notes").WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.Insert(context.Background(), models.Note{Content: "x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestNoteRepository_Insert_RetriesSerializationFailure verifies that a
// retryable error is followed by a second attempt.
func TestNoteRepository_Insert_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectQuery("INSERT INTO notes").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("INSERT INTO notes").
		WillReturnRows(noteRows().AddRow(3, "x", "random", false, fixedNow))

	saved, err := repo.Insert(context.Background(), models.Note{Content: "x", Category: models.CategoryRandom})

	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── List / Count ──────────────────────────────────────────────────────────────

func TestNoteRepository_List_WithFilter(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)
	processed := false
	since := fixedNow.Add(-24 * time.Hour)

	mock.ExpectQuery(`SELECT id, content, category, processed, created_at FROM notes WHERE category = \$1 AND LOWER\(content\) LIKE \$2 ESCAPE '\\' AND created_at >= \$3 AND processed = \$4 ORDER BY created_at DESC, id DESC LIMIT 5`).
		WithArgs("tasks", "%dentist%", since, false).
		WillReturnRows(noteRows().
			AddRow(2, "call the dentist", "tasks", false, fixedNow).
			AddRow(1, "Dentist bill", "tasks", false, fixedNow.Add(-time.Hour)))

	notes, err := repo.List(context.Background(), models.NoteFilter{
		Category:  models.CategoryTasks,
		Search:    " Dentist ",
		Since:     since,
		Processed: &processed,
		Limit:     5,
	})

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(2), notes[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_List_NoFilterReturnsEmptySlice(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.SQLite)

	mock.ExpectQuery(`SELECT id, content, category, processed, created_at FROM notes ORDER BY created_at DESC, id DESC$`).
		WillReturnRows(noteRows())

	notes, err := repo.List(context.Background(), models.NoteFilter{})

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepository_List_QueryError(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), models.NoteFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNoteRepository_List_ScanError(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.List(context.Background(), models.NoteFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestNoteRepository_List_SearchWildcardsAreLiteral(t *testing.T) {
	tests := []struct {
		search string
		want   string
	}{
		{search: "100%", want: `%100\%%`},
		{search: "to_do", want: `%to\_do%`},
		{search: `C:\Notes`, want: `%c:\\notes%`},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t, migrations.SQLite)

			mock.ExpectQuery(`WHERE LOWER\(content\) LIKE \? ESCAPE '\\'`).
				WithArgs(tt.want).
				WillReturnRows(noteRows())

			_, err := repo.List(context.Background(), models.NoteFilter{Search: tt.search})

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoteRepository_Get(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		wantErr error
	}{
		{name: "found", rows: noteRows().AddRow(12, "plant basil", "garden", false, fixedNow)},
		{name: "missing", rows: noteRows(), wantErr: ErrNoteNotFound},
		{name: "query error", err: errors.New("connection reset"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t, migrations.Postgres)

			q := mock.ExpectQuery(`SELECT id, content, category, processed, created_at FROM notes WHERE id = \$1`).WithArgs(int64(12))
			if tt.err != nil {
				q.WillReturnError(tt.err)
			} else {
				q.WillReturnRows(tt.rows)
			}

			note, err := repo.Get(context.Background(), 12)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "plant basil", note.Content)
			assert.Equal(t, models.CategoryGarden, note.Category)
		})
	}
}

func TestNoteRepository_Count(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)
	processed := true

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notes WHERE processed = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(context.Background(), models.NoteFilter{Processed: &processed, Limit: 3})

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNoteRepository_CountByCategory(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectQuery(`SELECT category, COUNT\(\*\) AS total FROM notes GROUP BY category ORDER BY total DESC, category`).
		WillReturnRows(sqlmock.NewRows([]string{"category", "total"}).
			AddRow("tasks", 5).
			AddRow("garden", 2))

	counts, err := repo.CountByCategory(context.Background(), models.NoteFilter{})

	require.NoError(t, err)
	assert.Equal(t, []models.CategoryCount{
		{Category: models.CategoryTasks, Count: 5},
		{Category: models.CategoryGarden, Count: 2},
	}, counts)
}

// ── SetProcessed / Delete ─────────────────────────────────────────────────────

func TestNoteRepository_SetProcessed(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectExec(`UPDATE notes SET processed = \$1 WHERE id = \$2`).
		WithArgs(true, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetProcessed(context.Background(), 9, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_SetProcessed_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectExec("UPDATE notes").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetProcessed(context.Background(), 404, true)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_Delete(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.SQLite)

	mock.ExpectExec(`DELETE FROM notes WHERE id = \?`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 9))
}

func TestNoteRepository_Delete_Errors(t *testing.T) {
	repo, mock := newTestNoteRepo(t, migrations.Postgres)

	mock.ExpectExec("DELETE FROM notes").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrNoteNotFound)

	mock.ExpectExec("DELETE FROM notes").WillReturnError(sql.ErrConnDone)
	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrExecutingStatement)
}
