package store

import "time"

// Candidate is a persisted candidate row
type Candidate struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	YearsExperience int       `json:"years_experience"`
	DesiredPosition *string   `json:"desired_position,omitempty"`
	CurrentLocation *string   `json:"current_location,omitempty"`
	TechStack       []string  `json:"tech_stack"`
	ConsentGiven    bool      `json:"consent_given"`
	Timestamp       time.Time `json:"timestamp"`
}

// Exchange is a persisted interview question/answer row
type Exchange struct {
	ID             int64     `json:"id"`
	CandidateEmail string    `json:"candidate_email"`
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	Timestamp      time.Time `json:"timestamp"`
}
