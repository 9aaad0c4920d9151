package model

import (
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// SupportRecord represents one organisational unit's engagement with one
// innovation. At most one record exists per (innovation, unit) pair; the
// record is soft-deleted, never removed.
type SupportRecord struct {
	ID                 string
	InnovationID       string
	OrganisationID     string
	OrganisationUnitID string
	Status             types.SupportStatus
	AccessorIDs        []string // User IDs assigned while ENGAGING
	Version            int64    // Incremented on every update, checked for conflicts
	CreatedBy          string
	UpdatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

// IsDeleted reports whether the record has been soft-deleted
func (s *SupportRecord) IsDeleted() bool {
	return s.DeletedAt != nil
}

// SupportPayload is the caller-supplied input for creating or updating a
// support record. Message, when non-empty, is persisted as a comment in the
// same transaction as the status change.
type SupportPayload struct {
	Status      types.SupportStatus
	Message     string
	AccessorIDs []string
}
