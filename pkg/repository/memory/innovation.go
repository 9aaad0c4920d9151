package memory

import (
	"context"
	"sort"
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type innovationRepository struct {
	store *store
}

// copyInnovation creates a deep copy of an innovation
func copyInnovation(i *model.Innovation) *model.Innovation {
	copied := *i
	return &copied
}

func (r *innovationRepository) Get(ctx context.Context, id string) (*model.Innovation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, exists := r.store.innovations[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "innovation not found", goerr.V("id", id))
	}

	return copyInnovation(i), nil
}

func (r *innovationRepository) Put(ctx context.Context, innovation *model.Innovation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	stored := copyInnovation(innovation)
	if existing, ok := r.store.innovations[innovation.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.store.innovations[stored.ID] = stored
	return nil
}

type assessmentRepository struct {
	store *store
}

// copyAssessment creates a deep copy of an assessment
func copyAssessment(a *model.InnovationAssessment) *model.InnovationAssessment {
	suggested := make([]string, len(a.SuggestedOrganisationIDs))
	copy(suggested, a.SuggestedOrganisationIDs)

	var finishedAt *time.Time
	if a.FinishedAt != nil {
		t := *a.FinishedAt
		finishedAt = &t
	}

	copied := *a
	copied.SuggestedOrganisationIDs = suggested
	copied.FinishedAt = finishedAt
	return &copied
}

func (r *assessmentRepository) ListByInnovation(ctx context.Context, innovationID string) ([]*model.InnovationAssessment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	assessments := []*model.InnovationAssessment{}
	for _, a := range r.store.assessments {
		if a.InnovationID != innovationID {
			continue
		}
		assessments = append(assessments, copyAssessment(a))
	}

	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.Before(assessments[j].CreatedAt)
	})

	return assessments, nil
}

func (r *assessmentRepository) Put(ctx context.Context, assessment *model.InnovationAssessment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	stored := copyAssessment(assessment)
	if existing, ok := r.store.assessments[assessment.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.store.assessments[stored.ID] = stored
	return nil
}
