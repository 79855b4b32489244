package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/dbx"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/models"
	"github.com/google/uuid"
)

var _ Repository = (*SQLiteRepository)(nil)

const timeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wraps a database already migrated by RunMigrations.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert makes s the current version of its filename slot and appends it to
// the slot's history, both in one transaction. An empty s.ID is filled with a
// new UUID.
func (r *SQLiteRepository) Upsert(ctx context.Context, s *models.Submission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	ts := s.SubmittedAt.UTC().Format(timeLayout)

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO submissions (filename, version_id, student, hash, size, submitted_at)
			values (?, ?, ?, ?, ?, ?)
			ON CONFLICT(filename) DO UPDATE SET
				version_id = excluded.version_id,
				student = excluded.student,
				hash = excluded.hash,
				size = excluded.size,
				submitted_at = excluded.submitted_at
		`
		if _, err := tx.ExecContext(ctx, query, s.Filename, s.ID, s.Student, s.Hash, s.Size, ts); err != nil {
			return fmt.Errorf("failed to upsert submission: %w", err)
		}

		query = `INSERT INTO submission_history (id, filename, student, hash, size, submitted_at, seq)
			SELECT ?, ?, ?, ?, ?, ?, COALESCE(MAX(seq), 0) + 1
			FROM submission_history WHERE filename = ?
		`
		if _, err := tx.ExecContext(ctx, query, s.ID, s.Filename, s.Student, s.Hash, s.Size, ts, s.Filename); err != nil {
			return fmt.Errorf("failed to append history: %w", err)
		}
		return nil
	})
}

// Get returns the current version of filename or common.ErrorNotFound.
func (r *SQLiteRepository) Get(ctx context.Context, filename string) (*models.Submission, error) {
	query := `select version_id, filename, student, hash, size, submitted_at from submissions where filename=?`
	row := r.db.QueryRowContext(ctx, query, filename)

	s, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading submission: %w", err)
	}
	return s, nil
}

// History returns every recorded version of filename, oldest first. An
// unknown filename yields no versions and no error.
func (r *SQLiteRepository) History(ctx context.Context, filename string) ([]*models.Submission, error) {
	query := `select id, filename, student, hash, size, submitted_at from submission_history
		where filename=? order by seq`
	return r.query(ctx, query, filename)
}

// All returns the current version of every slot ordered by filename.
func (r *SQLiteRepository) All(ctx context.Context) ([]*models.Submission, error) {
	query := `select version_id, filename, student, hash, size, submitted_at from submissions order by filename`
	return r.query(ctx, query)
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]*models.Submission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error selecting submissions: %w", err)
	}
	defer rows.Close()

	var result []*models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*models.Submission, error) {
	var s models.Submission
	var ts string
	if err := row.Scan(&s.ID, &s.Filename, &s.Student, &s.Hash, &s.Size, &ts); err != nil {
		return nil, err
	}
	t, err := time.Parse(timeLayout, ts)
	if err != nil {
		return nil, fmt.Errorf("bad submitted_at %q: %w", ts, err)
	}
	s.SubmittedAt = t
	return &s, nil
}
