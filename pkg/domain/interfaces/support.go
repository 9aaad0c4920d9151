package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// SupportRepository defines read access to support records. All writes go
// through the workflow transaction (see Tx) so status changes and their
// side effects share one commit unit.
type SupportRepository interface {
	// Get retrieves a support record by ID. Soft-deleted records are not
	// returned.
	Get(ctx context.Context, id string) (*model.SupportRecord, error)

	// GetByInnovationAndUnit retrieves the support record for one
	// (innovation, organisation unit) pair. Returns nil, nil when the pair
	// has no record yet.
	GetByInnovationAndUnit(ctx context.Context, innovationID, unitID string) (*model.SupportRecord, error)

	// ListByInnovation retrieves all support records of an innovation,
	// optionally restricted to the given statuses.
	ListByInnovation(ctx context.Context, innovationID string, statuses ...types.SupportStatus) ([]*model.SupportRecord, error)
}
