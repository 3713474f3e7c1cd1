package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/models"
)

const notesTable = "notes"

var noteColumns = []string{"id", "content", "category", "processed", "created_at"}

// noteRepository is the SQL implementation of [NoteRepository]. The same
// code serves PostgreSQL and SQLite; squirrel renders the placeholders of
// the connection's dialect.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Insert writes the note with a UTC creation time and scans the stored row
// back from the RETURNING clause. Retryable driver errors are retried.
func (r *noteRepository) Insert(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(notesTable).
		Columns("content", "category", "processed", "created_at").
		Values(note.Content, string(note.Category), note.Processed, r.now().UTC()).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Insert").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Note
	err = r.db.withRetry(ctx, func() error {
		return scanNote(r.db.QueryRowContext(ctx, query, args...), &saved)
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Error().Str("func", "*noteRepository.Insert").Msg("insert returned no row")
		return models.Note{}, ErrNoteNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Insert").Str("pg_code", postgresError(err)).Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

func (r *noteRepository) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	builder := applyNoteFilter(r.db.builder().Select(noteColumns...).From(notesTable), filter).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)
	for rows.Next() {
		var note models.Note
		if err := scanNote(rows, &note); err != nil {
			log.Err(err).Str("func", "*noteRepository.List").Msg("failed to scan note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// Get returns the note with id or [ErrNoteNotFound].
func (r *noteRepository) Get(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().Select(noteColumns...).From(notesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Get").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = scanNote(r.db.QueryRowContext(ctx, query, args...), &note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Get").Int64("note_id", id).Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) Count(ctx context.Context, filter models.NoteFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := applyNoteFilter(r.db.builder().Select("COUNT(*)").From(notesTable), filter).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Count").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*noteRepository.Count").Msg("failed to count notes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *noteRepository) CountByCategory(ctx context.Context, filter models.NoteFilter) ([]models.CategoryCount, error) {
	log := logger.FromContext(ctx)

	query, args, err := applyNoteFilter(r.db.builder().Select("category", "COUNT(*) AS total").From(notesTable), filter).
		GroupBy("category").
		OrderBy("total DESC", "category").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CountByCategory").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CountByCategory").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make([]models.CategoryCount, 0, len(models.Categories))
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (r *noteRepository) SetProcessed(ctx context.Context, id int64, processed bool) error {
	query, args, err := r.db.builder().
		Update(notesTable).
		Set("processed", processed).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingNote(ctx, "*noteRepository.SetProcessed", id, query, args)
}

func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.builder().
		Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingNote(ctx, "*noteRepository.Delete", id, query, args)
}

// execAffectingNote runs a statement that must touch exactly the note id.
func (r *noteRepository) execAffectingNote(ctx context.Context, fn string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	var result sql.Result
	err := r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", fn).Int64("note_id", id).Msg("failed to execute statement")
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

// likeEscaper makes LIKE wildcards in user search text match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyNoteFilter adds the WHERE clauses of filter to b.
func applyNoteFilter(b sq.SelectBuilder, filter models.NoteFilter) sq.SelectBuilder {
	if filter.Category != "" {
		b = b.Where(sq.Eq{"category": string(filter.Category)})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		b = b.Where(sq.Expr(`LOWER(content) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(search))+"%"))
	}
	if !filter.Since.IsZero() {
		b = b.Where(sq.GtOrEq{"created_at": filter.Since.UTC()})
	}
	if filter.Processed != nil {
		b = b.Where(sq.Eq{"processed": *filter.Processed})
	}
	return b
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(&note.ID, &note.Content, &note.Category, &note.Processed, &note.CreatedAt)
}
