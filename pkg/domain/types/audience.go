package types

import "fmt"

// Audience names a strategy for resolving which users receive a
// notification.
type Audience string

const (
	// AudienceAccessors targets the accessors assigned to the innovation's
	// engaging or completed supports.
	AudienceAccessors Audience = "ACCESSORS"
	// AudienceInnovators targets the innovation owner.
	AudienceInnovators Audience = "INNOVATORS"
	// AudienceQualifyingAccessors targets qualifying accessors of the
	// organisations suggested by the innovation's assessments.
	AudienceQualifyingAccessors Audience = "QUALIFYING_ACCESSORS"
	// AudienceAssessmentUsers targets all needs-assessment staff.
	AudienceAssessmentUsers Audience = "ASSESSMENT_USERS"
)

// IsValid checks if the audience is valid
func (a Audience) IsValid() bool {
	switch a {
	case AudienceAccessors,
		AudienceInnovators,
		AudienceQualifyingAccessors,
		AudienceAssessmentUsers:
		return true
	default:
		return false
	}
}

// String returns the string representation of the audience
func (a Audience) String() string {
	return string(a)
}

// ParseAudience parses a string into an Audience
func ParseAudience(s string) (Audience, error) {
	a := Audience(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid audience: %s", s)
	}
	return a, nil
}
