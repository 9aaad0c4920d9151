package memory

import (
	"context"
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// memoryTx collects staged writes. Nothing touches the store until the
// enclosing Transaction applies them under one lock.
type memoryTx struct {
	supports     []*model.SupportRecord
	comments     []*model.Comment
	activityLogs []*model.ActivityLog
	actions      []*model.Action
}

var _ interfaces.Tx = &memoryTx{}

func (tx *memoryTx) PutSupport(s *model.SupportRecord) {
	tx.supports = append(tx.supports, s)
}

func (tx *memoryTx) PutComment(c *model.Comment) {
	tx.comments = append(tx.comments, c)
}

func (tx *memoryTx) PutActivityLog(l *model.ActivityLog) {
	tx.activityLogs = append(tx.activityLogs, l)
}

func (tx *memoryTx) UpdateActions(actions []*model.Action) {
	tx.actions = append(tx.actions, actions...)
}

// Transaction runs fn with a staging Tx, then applies every staged write
// atomically. fn returning an error discards the staged writes; a version
// conflict on any staged support record discards them too.
func (m *Memory) Transaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.Tx) error) error {
	tx := &memoryTx{}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	return m.store.apply(tx)
}

func (s *store) apply(tx *memoryTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	// Version checks first so a conflict leaves the store untouched
	for _, sup := range tx.supports {
		existing, ok := s.supports[sup.ID]
		if !ok {
			continue
		}
		if existing.Version != sup.Version {
			return goerr.Wrap(ErrConflict, "support record was modified concurrently",
				goerr.V("supportID", sup.ID),
				goerr.V("staged_version", sup.Version),
				goerr.V("stored_version", existing.Version))
		}
	}

	for _, sup := range tx.supports {
		stored := copySupport(sup)
		if existing, ok := s.supports[sup.ID]; ok {
			stored.CreatedAt = existing.CreatedAt
		} else if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		stored.Version = sup.Version + 1
		stored.UpdatedAt = now
		s.supports[stored.ID] = stored
	}

	for _, c := range tx.comments {
		stored := copyComment(c)
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		s.comments[stored.ID] = stored
	}

	for _, l := range tx.activityLogs {
		stored := copyActivityLog(l)
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		s.activityLogs[stored.ID] = stored
	}

	for _, a := range tx.actions {
		stored := copyAction(a)
		if existing, ok := s.actions[a.ID]; ok {
			stored.CreatedAt = existing.CreatedAt
		}
		stored.UpdatedAt = now
		s.actions[stored.ID] = stored
	}

	return nil
}
