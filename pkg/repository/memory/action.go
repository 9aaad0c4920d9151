package memory

import (
	"context"
	"sort"
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type actionRepository struct {
	store *store
}

// copyAction creates a deep copy of an action
func copyAction(a *model.Action) *model.Action {
	copied := *a
	return &copied
}

func (r *actionRepository) Get(ctx context.Context, id string) (*model.Action, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, exists := r.store.actions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
	}

	return copyAction(a), nil
}

func (r *actionRepository) ListBySupport(ctx context.Context, supportID string, statuses ...types.ActionStatus) ([]*model.Action, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[types.ActionStatus]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}

	actions := []*model.Action{}
	for _, a := range r.store.actions {
		if a.SupportID != supportID {
			continue
		}
		if len(wanted) > 0 && !wanted[a.Status] {
			continue
		}
		actions = append(actions, copyAction(a))
	}

	sort.Slice(actions, func(i, j int) bool {
		return actions[i].CreatedAt.Before(actions[j].CreatedAt)
	})

	return actions, nil
}

func (r *actionRepository) Put(ctx context.Context, action *model.Action) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	stored := copyAction(action)
	if existing, ok := r.store.actions[action.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.store.actions[stored.ID] = stored
	return nil
}
