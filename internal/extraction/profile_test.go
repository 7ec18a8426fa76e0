package extraction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProfile(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantError bool
	}{
		{
			name: "Full extraction",
			raw: `{
				"name": "Alex",
				"email": "alex@example.com",
				"phone": null,
				"years_experience": 5,
				"desired_position": null,
				"current_location": null,
				"tech_stack": ["Python", "Django"]
			}`,
		},
		{
			name: "All nulls",
			raw:  `{"name": null, "email": null, "years_experience": null}`,
		},
		{
			name: "Unknown extra fields are tolerated",
			raw:  `{"name": "Alex", "confidence": 0.9}`,
		},
		{
			name:      "Array is rejected",
			raw:       `[1, 2, 3]`,
			wantError: true,
		},
		{
			name:      "Wrong type for years_experience",
			raw:       `{"years_experience": "five"}`,
			wantError: true,
		},
		{
			name:      "Wrong item type in tech_stack",
			raw:       `{"tech_stack": [1, 2]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProfile(json.RawMessage(tt.raw))
			if tt.wantError {
				assert.Error(t, err)
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDecodeProfile_FieldValues(t *testing.T) {
	raw := json.RawMessage(`{
		"name": "Alex",
		"email": "alex@example.com",
		"phone": null,
		"years_experience": 5,
		"tech_stack": ["Python", "Django"]
	}`)

	profile, err := DecodeProfile(raw)
	require.NoError(t, err)

	require.NotNil(t, profile.Name)
	assert.Equal(t, "Alex", *profile.Name)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "alex@example.com", *profile.Email)
	assert.Nil(t, profile.Phone)
	require.NotNil(t, profile.YearsExperience)
	assert.Equal(t, 5, *profile.YearsExperience)
	assert.Equal(t, []string{"Python", "Django"}, profile.TechStack)
	assert.Nil(t, profile.DesiredPosition)
	assert.Nil(t, profile.CurrentLocation)
}
