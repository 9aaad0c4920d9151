package model

import (
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// User is a directory entry cached from the external identity provider,
// enriched with the service-side role and organisation memberships used for
// authorization and audience resolution.
type User struct {
	ID                 string
	ExternalID         string // Identity-provider ID
	Name               string
	Email              string
	Type               types.UserType
	OrganisationID     string // Set for accessor users
	OrganisationUnitID string
	OrganisationRole   types.OrgRole
	UpdatedAt          time.Time
}
