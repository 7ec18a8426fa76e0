// Package types provides type definitions for structured data used throughout the talent-scout system.
package types

// CandidateProfile is the candidate record assembled turn by turn during
// the info-gathering phase. Nil fields are unknown; a known value is never
// unset, only overwritten by a newer non-null extraction.
type CandidateProfile struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	YearsExperience *int     `json:"years_experience"`
	DesiredPosition *string  `json:"desired_position"`
	CurrentLocation *string  `json:"current_location"`
	TechStack       []string `json:"tech_stack"`
}

// requiredFields is the fixed check order for advancement out of info gathering.
var requiredFields = []string{"name", "email", "years_experience"}

// Merge overlays non-null extracted values onto the profile. Null (or empty)
// extracted values leave the stored value unchanged, so the merge is monotonic.
func (p *CandidateProfile) Merge(extracted CandidateProfile) {
	if extracted.Name != nil && *extracted.Name != "" {
		p.Name = extracted.Name
	}
	if extracted.Email != nil && *extracted.Email != "" {
		p.Email = extracted.Email
	}
	if extracted.Phone != nil && *extracted.Phone != "" {
		p.Phone = extracted.Phone
	}
	if extracted.YearsExperience != nil {
		p.YearsExperience = extracted.YearsExperience
	}
	if extracted.DesiredPosition != nil && *extracted.DesiredPosition != "" {
		p.DesiredPosition = extracted.DesiredPosition
	}
	if extracted.CurrentLocation != nil && *extracted.CurrentLocation != "" {
		p.CurrentLocation = extracted.CurrentLocation
	}
	if len(extracted.TechStack) > 0 {
		p.TechStack = extracted.TechStack
	}
}

// MissingRequired returns the names of required fields that are still null,
// in the fixed check order: name, email, years_experience.
func (p *CandidateProfile) MissingRequired() []string {
	var missing []string
	for _, field := range requiredFields {
		switch field {
		case "name":
			if p.Name == nil || *p.Name == "" {
				missing = append(missing, field)
			}
		case "email":
			if p.Email == nil || *p.Email == "" {
				missing = append(missing, field)
			}
		case "years_experience":
			if p.YearsExperience == nil {
				missing = append(missing, field)
			}
		}
	}
	return missing
}

// Complete reports whether the profile has all required fields and is ready
// to be persisted.
func (p *CandidateProfile) Complete() bool {
	return len(p.MissingRequired()) == 0
}
