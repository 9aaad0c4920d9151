package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// UserRepository defines the interface for user directory data access. The
// directory is a cache refreshed in bulk from the external identity
// provider; audience resolution reads from it.
type UserRepository interface {
	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*model.User, error)

	// ListByType retrieves all users of the given type
	ListByType(ctx context.Context, userType types.UserType) ([]*model.User, error)

	// ListByOrganisationRole retrieves every user holding the given role in
	// any of the given organisations.
	ListByOrganisationRole(ctx context.Context, orgIDs []string, role types.OrgRole) ([]*model.User, error)

	// Put saves a single user (upsert)
	Put(ctx context.Context, user *model.User) error

	// SaveMany saves multiple users in bulk, used by the directory refresh
	// worker. Handles backend batch limits internally.
	SaveMany(ctx context.Context, users []*model.User) error
}
