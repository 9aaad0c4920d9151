package model

import "time"

// Innovation is the aggregate root the support workflow operates on. The
// engine only reads it; full record management lives elsewhere.
type Innovation struct {
	ID        string
	Name      string
	OwnerID   string // The innovator who owns the record
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InnovationAssessment is a needs-assessment outcome for an innovation. The
// suggested organisations drive the qualifying-accessor audience.
type InnovationAssessment struct {
	ID                       string
	InnovationID             string
	SuggestedOrganisationIDs []string
	FinishedAt               *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
