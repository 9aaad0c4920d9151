package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// OrganisationRepository defines the interface for organisation data
// access. The directory is seeded from configuration at startup.
type OrganisationRepository interface {
	// Get retrieves an organisation by ID
	Get(ctx context.Context, id string) (*model.Organisation, error)

	// List retrieves all organisations
	List(ctx context.Context) ([]*model.Organisation, error)

	// Put saves an organisation (upsert)
	Put(ctx context.Context, org *model.Organisation) error
}
