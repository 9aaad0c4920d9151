package model

import (
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// SupportLogEntry is an append-only audit trail scoped to an organisation
// unit's engagement, distinct from the innovation activity log. Entries are
// written when a support record reaches ENGAGING or COMPLETE, or when an
// assessment suggests organisation units. Immutable once written.
type SupportLogEntry struct {
	ID                 string
	InnovationID       string
	OrganisationUnitID string
	Type               types.SupportLogType
	Description        string
	SupportStatus      types.SupportStatus // Snapshot at creation time
	SuggestedUnitIDs   []string
	CreatedBy          string
	CreatedAt          time.Time
}
