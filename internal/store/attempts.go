package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt is one finished quiz session recorded for local history.
type Attempt struct {
	ID         string
	Slug       string
	Correct    int
	Incorrect  int
	Unanswered int
	FinishedAt time.Time
}

// RecordAttempt appends a finished session to the attempts log.
func (s *Store) RecordAttempt(ctx context.Context, slug string, correct, incorrect, unanswered int) (*Attempt, error) {
	a := &Attempt{
		ID:         uuid.New().String(),
		Slug:       slug,
		Correct:    correct,
		Incorrect:  incorrect,
		Unanswered: unanswered,
		FinishedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (id, slug, correct, incorrect, unanswered, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Slug, a.Correct, a.Incorrect, a.Unanswered, a.FinishedAt)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}
	return a, nil
}

// Attempts returns the most recent attempts for a slug, newest first.
// limit <= 0 means no limit.
func (s *Store) Attempts(ctx context.Context, slug string, limit int) ([]Attempt, error) {
	q := `SELECT id, slug, correct, incorrect, unanswered, finished_at
		FROM attempts WHERE slug = ? ORDER BY finished_at DESC`
	args := []any{slug}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.Slug, &a.Correct, &a.Incorrect, &a.Unanswered, &a.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
