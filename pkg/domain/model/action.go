package model

import (
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// Action represents a to-do item scoped to a support record. When the
// support record leaves ENGAGING, every open action is forcibly marked
// DELETED in the same transaction as the status change.
type Action struct {
	ID           string
	SupportID    string
	InnovationID string
	Description  string
	SectionID    string // Innovation record section the action refers to
	Status       types.ActionStatus
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
