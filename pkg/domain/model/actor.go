package model

import "github.com/inno-lab/innovaid/pkg/domain/types"

// Actor is the acting-user context a request carries. Organisation fields
// are populated only for accessor users and drive the authorization checks
// of the support workflow.
type Actor struct {
	ID                 string
	ExternalID         string // Identity-provider ID
	Type               types.UserType
	OrganisationID     string
	OrganisationUnitID string
	OrganisationRole   types.OrgRole
}

// HasOrganisation reports whether the actor carries an organisation
// membership
func (a *Actor) HasOrganisation() bool {
	return a.OrganisationID != ""
}

// HasOrganisationUnit reports whether the actor carries an
// organisation-unit membership
func (a *Actor) HasOrganisationUnit() bool {
	return a.OrganisationUnitID != ""
}

// IsQualifyingAccessor reports whether the actor holds the role required
// to create or update support records
func (a *Actor) IsQualifyingAccessor() bool {
	return a.OrganisationRole == types.OrgRoleQualifyingAccessor
}
