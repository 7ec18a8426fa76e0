package store

import (
	"context"
	"fmt"
)

// AppendExchange inserts one question/answer row for a candidate. Rows are
// append-only and ordered by insertion timestamp; no uniqueness constraint.
func (s *Store) AppendExchange(ctx context.Context, email, question, answer string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO interview_log (candidate_email, question, answer)
		 VALUES ($1, $2, $3)`,
		email, question, answer,
	)
	if err != nil {
		return fmt.Errorf("failed to append exchange: %w", err)
	}
	return nil
}

// ListExchanges retrieves interview rows, optionally filtered by candidate
// email, in insertion order.
func (s *Store) ListExchanges(ctx context.Context, email string) ([]Exchange, error) {
	query := `SELECT id, candidate_email, question, answer, timestamp
		FROM interview_log`
	args := []any{}
	if email != "" {
		query += ` WHERE candidate_email = $1`
		args = append(args, email)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []Exchange
	for rows.Next() {
		var e Exchange
		if err := rows.Scan(&e.ID, &e.CandidateEmail, &e.Question, &e.Answer, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		exchanges = append(exchanges, e)
	}
	return exchanges, nil
}
