package model

import "time"

// Comment is a free-text message attached to an innovation, optionally
// scoped to the support record whose status change it accompanied.
type Comment struct {
	ID           string
	InnovationID string
	SupportID    string // Empty when the comment is not support-scoped
	Message      string
	CreatedBy    string
	CreatedAt    time.Time
}
