package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// InnovationRepository defines read access to innovations. Record
// management is owned elsewhere; Put exists for seeding and tests.
type InnovationRepository interface {
	// Get retrieves an innovation by ID
	Get(ctx context.Context, id string) (*model.Innovation, error)

	// Put saves an innovation (upsert)
	Put(ctx context.Context, innovation *model.Innovation) error
}

// AssessmentRepository defines read access to needs-assessment records
type AssessmentRepository interface {
	// ListByInnovation retrieves all assessments of an innovation
	ListByInnovation(ctx context.Context, innovationID string) ([]*model.InnovationAssessment, error)

	// Put saves an assessment (upsert)
	Put(ctx context.Context, assessment *model.InnovationAssessment) error
}
