package types

import "github.com/go-playground/validator/v10"

// DefaultCVName is the placeholder used when no name could be extracted.
const DefaultCVName = "Name unspecified"

// CVRecord is the canonical representation of a résumé/CV.
// Name is never empty; list fields are never nil after normalization.
type CVRecord struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	DesiredPosition string `json:"desired_position,omitempty"`

	// Display strings derived from raw entries or structured sub-records,
	// e.g. "Engineer at Acme (2020-2022)".
	ExperienceEntries []string `json:"experience_entries"`
	EducationEntries  []string `json:"education_entries"`
	Skills            []string `json:"skills"`
}

// Validate validates the CVRecord invariants using the validator.
func (r *CVRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
