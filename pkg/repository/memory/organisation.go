package memory

import (
	"context"
	"sort"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type organisationRepository struct {
	store *store
}

// copyOrganisation creates a deep copy of an organisation
func copyOrganisation(o *model.Organisation) *model.Organisation {
	units := make([]model.OrganisationUnit, len(o.Units))
	copy(units, o.Units)

	copied := *o
	copied.Units = units
	return &copied
}

func (r *organisationRepository) Get(ctx context.Context, id string) (*model.Organisation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, exists := r.store.organisations[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "organisation not found", goerr.V("id", id))
	}

	return copyOrganisation(o), nil
}

func (r *organisationRepository) List(ctx context.Context) ([]*model.Organisation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orgs := make([]*model.Organisation, 0, len(r.store.organisations))
	for _, o := range r.store.organisations {
		orgs = append(orgs, copyOrganisation(o))
	}

	sort.Slice(orgs, func(i, j int) bool {
		return orgs[i].ID < orgs[j].ID
	})

	return orgs, nil
}

func (r *organisationRepository) Put(ctx context.Context, org *model.Organisation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.organisations[org.ID] = copyOrganisation(org)
	return nil
}
