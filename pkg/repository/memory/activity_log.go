package memory

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
)

type activityLogRepository struct {
	store *store
}

// copyActivityLog creates a deep copy of an activity log entry
func copyActivityLog(l *model.ActivityLog) *model.ActivityLog {
	params := make(json.RawMessage, len(l.Params))
	copy(params, l.Params)

	return &model.ActivityLog{
		ID:           l.ID,
		InnovationID: l.InnovationID,
		Type:         l.Type,
		Params:       params,
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
	}
}

func (r *activityLogRepository) ListByInnovation(ctx context.Context, innovationID string, category types.ActivityCategory) ([]*model.ActivityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	logs := []*model.ActivityLog{}
	for _, l := range r.store.activityLogs {
		if l.InnovationID != innovationID {
			continue
		}
		if category != "" && l.Type.Category() != category {
			continue
		}
		logs = append(logs, copyActivityLog(l))
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})

	return logs, nil
}
