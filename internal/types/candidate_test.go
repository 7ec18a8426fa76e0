package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCandidateProfile_Merge(t *testing.T) {
	t.Run("Non-null values overwrite", func(t *testing.T) {
		p := CandidateProfile{Name: strPtr("Alex")}
		p.Merge(CandidateProfile{Name: strPtr("Alexandra"), Email: strPtr("alex@example.com")})

		assert.Equal(t, "Alexandra", *p.Name)
		assert.Equal(t, "alex@example.com", *p.Email)
	})

	t.Run("Nulls never erase known values", func(t *testing.T) {
		p := CandidateProfile{
			Name:            strPtr("Alex"),
			Email:           strPtr("alex@example.com"),
			YearsExperience: intPtr(5),
			TechStack:       []string{"Python"},
		}
		p.Merge(CandidateProfile{})

		assert.Equal(t, "Alex", *p.Name)
		assert.Equal(t, "alex@example.com", *p.Email)
		assert.Equal(t, 5, *p.YearsExperience)
		assert.Equal(t, []string{"Python"}, p.TechStack)
	})

	t.Run("Empty strings do not overwrite", func(t *testing.T) {
		p := CandidateProfile{Name: strPtr("Alex")}
		p.Merge(CandidateProfile{Name: strPtr("")})

		assert.Equal(t, "Alex", *p.Name)
	})

	t.Run("Empty tech stack does not clobber", func(t *testing.T) {
		p := CandidateProfile{TechStack: []string{"Go"}}
		p.Merge(CandidateProfile{TechStack: []string{}})

		assert.Equal(t, []string{"Go"}, p.TechStack)
	})

	t.Run("Optional fields merge too", func(t *testing.T) {
		p := CandidateProfile{}
		p.Merge(CandidateProfile{
			Phone:           strPtr("+1 555 0100"),
			DesiredPosition: strPtr("Backend Engineer"),
			CurrentLocation: strPtr("Berlin"),
		})

		assert.Equal(t, "+1 555 0100", *p.Phone)
		assert.Equal(t, "Backend Engineer", *p.DesiredPosition)
		assert.Equal(t, "Berlin", *p.CurrentLocation)
	})
}

func TestCandidateProfile_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		profile CandidateProfile
		want    []string
	}{
		{
			name:    "All missing, fixed order",
			profile: CandidateProfile{},
			want:    []string{"name", "email", "years_experience"},
		},
		{
			name:    "Only name known",
			profile: CandidateProfile{Name: strPtr("Alex")},
			want:    []string{"email", "years_experience"},
		},
		{
			name: "Complete",
			profile: CandidateProfile{
				Name:            strPtr("Alex"),
				Email:           strPtr("alex@example.com"),
				YearsExperience: intPtr(5),
			},
			want: nil,
		},
		{
			name: "Optional fields do not gate",
			profile: CandidateProfile{
				Name:            strPtr("Alex"),
				Email:           strPtr("alex@example.com"),
				YearsExperience: intPtr(0),
			},
			want: nil,
		},
		{
			name:    "Empty string counts as missing",
			profile: CandidateProfile{Name: strPtr(""), Email: strPtr("a@b.c"), YearsExperience: intPtr(1)},
			want:    []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.MissingRequired())
			assert.Equal(t, len(tt.want) == 0, tt.profile.Complete())
		})
	}
}
