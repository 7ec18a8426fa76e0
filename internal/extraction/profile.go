package extraction

import (
	"encoding/json"

	"github.com/jonathan/talent-scout/internal/schemas"
	"github.com/jonathan/talent-scout/internal/types"
)

// DecodeProfile turns a recovered JSON value into candidate profile fields.
// The value must be an object matching the extraction schema; anything else
// (an array, wrong field types) is a parse failure, not a partial result.
func DecodeProfile(raw json.RawMessage) (types.CandidateProfile, error) {
	var profile types.CandidateProfile

	if err := schemas.ValidateBytes(schemas.CandidateProfileSchema, raw); err != nil {
		return profile, &ParseError{Message: "extraction does not match profile schema", Cause: err}
	}

	if err := json.Unmarshal(raw, &profile); err != nil {
		return profile, &ParseError{Message: "failed to decode profile fields", Cause: err}
	}

	return profile, nil
}
