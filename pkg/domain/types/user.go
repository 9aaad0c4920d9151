package types

import "fmt"

// UserType is the coarse role of a user within the service.
type UserType string

const (
	UserTypeInnovator  UserType = "INNOVATOR"
	UserTypeAccessor   UserType = "ACCESSOR"
	UserTypeAssessment UserType = "ASSESSMENT"
	UserTypeAdmin      UserType = "ADMIN"
)

// IsValid checks if the user type is valid
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeInnovator, UserTypeAccessor, UserTypeAssessment, UserTypeAdmin:
		return true
	default:
		return false
	}
}

// String returns the string representation of the user type
func (t UserType) String() string {
	return string(t)
}

// ParseUserType parses a string into a UserType
func ParseUserType(s string) (UserType, error) {
	t := UserType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid user type: %s", s)
	}
	return t, nil
}

// OrgRole is a user's role within an organisation. Only qualifying
// accessors may create or update support records for their unit.
type OrgRole string

const (
	OrgRoleQualifyingAccessor OrgRole = "QUALIFYING_ACCESSOR"
	OrgRoleAccessor           OrgRole = "ACCESSOR"
)

// IsValid checks if the organisation role is valid
func (r OrgRole) IsValid() bool {
	switch r {
	case OrgRoleQualifyingAccessor, OrgRoleAccessor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the organisation role
func (r OrgRole) String() string {
	return string(r)
}
