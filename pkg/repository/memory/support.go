package memory

import (
	"context"
	"sort"
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type supportRepository struct {
	store *store
}

// copySupport creates a deep copy of a support record
func copySupport(s *model.SupportRecord) *model.SupportRecord {
	accessorIDs := make([]string, len(s.AccessorIDs))
	copy(accessorIDs, s.AccessorIDs)

	var deletedAt *time.Time
	if s.DeletedAt != nil {
		t := *s.DeletedAt
		deletedAt = &t
	}

	return &model.SupportRecord{
		ID:                 s.ID,
		InnovationID:       s.InnovationID,
		OrganisationID:     s.OrganisationID,
		OrganisationUnitID: s.OrganisationUnitID,
		Status:             s.Status,
		AccessorIDs:        accessorIDs,
		Version:            s.Version,
		CreatedBy:          s.CreatedBy,
		UpdatedBy:          s.UpdatedBy,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

func (r *supportRepository) Get(ctx context.Context, id string) (*model.SupportRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, exists := r.store.supports[id]
	if !exists || s.IsDeleted() {
		return nil, goerr.Wrap(ErrNotFound, "support record not found", goerr.V("id", id))
	}

	return copySupport(s), nil
}

func (r *supportRepository) GetByInnovationAndUnit(ctx context.Context, innovationID, unitID string) (*model.SupportRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, s := range r.store.supports {
		if s.InnovationID == innovationID && s.OrganisationUnitID == unitID && !s.IsDeleted() {
			return copySupport(s), nil
		}
	}

	return nil, nil
}

func (r *supportRepository) ListByInnovation(ctx context.Context, innovationID string, statuses ...types.SupportStatus) ([]*model.SupportRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[types.SupportStatus]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}

	records := []*model.SupportRecord{}
	for _, s := range r.store.supports {
		if s.InnovationID != innovationID || s.IsDeleted() {
			continue
		}
		if len(wanted) > 0 && !wanted[s.Status] {
			continue
		}
		records = append(records, copySupport(s))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	return records, nil
}
