package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/inno-lab/innovaid/pkg/domain/model"
)

type supportLogRepository struct {
	store *store
}

// copySupportLog creates a deep copy of a support log entry
func copySupportLog(e *model.SupportLogEntry) *model.SupportLogEntry {
	suggested := make([]string, len(e.SuggestedUnitIDs))
	copy(suggested, e.SuggestedUnitIDs)

	copied := *e
	copied.SuggestedUnitIDs = suggested
	return &copied
}

func (r *supportLogRepository) Create(ctx context.Context, entry *model.SupportLogEntry) (*model.SupportLogEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := copySupportLog(entry)
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.store.supportLogs[created.ID] = created
	return copySupportLog(created), nil
}

func (r *supportLogRepository) ListByInnovation(ctx context.Context, innovationID string) ([]*model.SupportLogEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := []*model.SupportLogEntry{}
	for _, e := range r.store.supportLogs {
		if e.InnovationID != innovationID {
			continue
		}
		entries = append(entries, copySupportLog(e))
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
