package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-scout/internal/types"
)

// UpsertCandidate inserts a candidate row keyed by unique email. A duplicate
// email is silently ignored rather than updated: the first insert wins.
// The profile must have name, email, and years_experience set.
func (s *Store) UpsertCandidate(ctx context.Context, profile types.CandidateProfile, consent bool) error {
	if !profile.Complete() {
		return fmt.Errorf("cannot persist incomplete profile, missing: %v", profile.MissingRequired())
	}

	stack, err := encodeTechStack(profile.TechStack)
	if err != nil {
		return fmt.Errorf("failed to encode tech stack: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidates
		   (name, email, phone, years_experience, desired_position, current_location, tech_stack, consent_given)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (email) DO NOTHING`,
		*profile.Name, *profile.Email, profile.Phone, *profile.YearsExperience,
		profile.DesiredPosition, profile.CurrentLocation, stack, consent,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}
	return nil
}

// GetCandidateByEmail retrieves a candidate row by email
func (s *Store) GetCandidateByEmail(ctx context.Context, email string) (*Candidate, error) {
	var c Candidate
	var stack string
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, years_experience, desired_position, current_location, tech_stack, consent_given, timestamp
		 FROM candidates WHERE email = $1`,
		email,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.YearsExperience, &c.DesiredPosition, &c.CurrentLocation, &stack, &c.ConsentGiven, &c.Timestamp)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	c.TechStack, err = decodeTechStack(stack)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tech stack for %s: %w", email, err)
	}
	return &c, nil
}

// ListCandidates retrieves candidate rows ordered by insertion time
func (s *Store) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, phone, years_experience, desired_position, current_location, tech_stack, consent_given, timestamp
		 FROM candidates ORDER BY timestamp ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		var stack string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.YearsExperience, &c.DesiredPosition, &c.CurrentLocation, &stack, &c.ConsentGiven, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		c.TechStack, err = decodeTechStack(stack)
		if err != nil {
			return nil, fmt.Errorf("failed to decode tech stack for %s: %w", c.Email, err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// encodeTechStack stores the ordered technology list as a JSON array in a
// text column. A nil slice encodes as an empty array, not null.
func encodeTechStack(stack []string) (string, error) {
	if stack == nil {
		stack = []string{}
	}
	data, err := json.Marshal(stack)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeTechStack parses the JSON-encoded technology list from a text column.
func decodeTechStack(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	var stack []string
	if err := json.Unmarshal([]byte(text), &stack); err != nil {
		return nil, err
	}
	return stack, nil
}
