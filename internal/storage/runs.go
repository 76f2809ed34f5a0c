package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/salesprep/internal/model"
)

// ErrRunNotFound is returned when a run id has no stored record.
var ErrRunNotFound = errors.New("validation run not found")

// SaveRun persists a validation run summary. A missing ID or creation time is
// filled in before the insert and written back to run.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.RunSummary) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(run); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	attrs, err := json.Marshal(run.Attributes)
	if err != nil {
		return fmt.Errorf("failed to encode attributes: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO validation_runs (id, source, rows, duplicates, attributes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.Rows, run.Duplicates, string(attrs), run.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRun returns a single run by id.
func (s *SQLiteStorage) GetRun(ctx context.Context, id string) (*model.RunSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, rows, duplicates, attributes, created_at
		FROM validation_runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

// ListRuns returns stored runs, newest first. A limit of zero returns all runs.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]model.RunSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, ErrInvalidListLimit
	}

	query := `
		SELECT id, source, rows, duplicates, attributes, created_at
		FROM validation_runs
		ORDER BY created_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.RunSummary
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*model.RunSummary, error) {
	var run model.RunSummary
	var attrs string
	if err := sc.Scan(&run.ID, &run.Source, &run.Rows, &run.Duplicates, &attrs, &run.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	if err := json.Unmarshal([]byte(attrs), &run.Attributes); err != nil {
		return nil, fmt.Errorf("failed to decode attributes for run %s: %w", run.ID, err)
	}
	return &run, nil
}
