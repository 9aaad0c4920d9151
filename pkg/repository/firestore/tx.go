package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreTx collects staged writes. The enclosing Transaction applies
// them inside one Firestore transaction so Firestore's reads-before-writes
// rule holds: all version-check reads happen before the first Set.
type firestoreTx struct {
	supports     []*model.SupportRecord
	comments     []*model.Comment
	activityLogs []*model.ActivityLog
	actions      []*model.Action
}

var _ interfaces.Tx = &firestoreTx{}

func (tx *firestoreTx) PutSupport(s *model.SupportRecord) {
	tx.supports = append(tx.supports, s)
}

func (tx *firestoreTx) PutComment(c *model.Comment) {
	tx.comments = append(tx.comments, c)
}

func (tx *firestoreTx) PutActivityLog(l *model.ActivityLog) {
	tx.activityLogs = append(tx.activityLogs, l)
}

func (tx *firestoreTx) UpdateActions(actions []*model.Action) {
	tx.actions = append(tx.actions, actions...)
}

// Transaction runs fn with a staging Tx, then flushes the staged writes in
// one Firestore transaction. Version checks on staged support records run
// as transactional reads; a stale version aborts without writing anything.
func (f *Firestore) Transaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.Tx) error) error {
	staged := &firestoreTx{}
	if err := fn(ctx, staged); err != nil {
		return err
	}

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return f.flush(tx, staged)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to commit workflow transaction")
	}

	return nil
}

func (f *Firestore) flush(tx *firestore.Transaction, staged *firestoreTx) error {
	now := time.Now().UTC()

	// Reads first: Firestore requires all transactional reads before any
	// write.
	existing := make(map[string]*supportDoc, len(staged.supports))
	for _, sup := range staged.supports {
		ref := f.support.collection().Doc(sup.ID)
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			return goerr.Wrap(err, "failed to read support record", goerr.V("supportID", sup.ID))
		}

		var d supportDoc
		if err := doc.DataTo(&d); err != nil {
			return goerr.Wrap(err, "failed to unmarshal support record", goerr.V("supportID", sup.ID))
		}
		existing[sup.ID] = &d
	}

	for _, sup := range staged.supports {
		stored := f.support.toDoc(sup)
		if d, ok := existing[sup.ID]; ok {
			if d.Version != sup.Version {
				return goerr.Wrap(ErrConflict, "support record was modified concurrently",
					goerr.V("supportID", sup.ID),
					goerr.V("staged_version", sup.Version),
					goerr.V("stored_version", d.Version))
			}
			stored.CreatedAt = d.CreatedAt
		} else if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		stored.Version = sup.Version + 1
		stored.UpdatedAt = now

		if err := tx.Set(f.support.collection().Doc(sup.ID), stored); err != nil {
			return goerr.Wrap(err, "failed to write support record", goerr.V("supportID", sup.ID))
		}
	}

	for _, c := range staged.comments {
		stored := f.comment.toDoc(c)
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		if err := tx.Set(f.comment.collection().Doc(c.ID), stored); err != nil {
			return goerr.Wrap(err, "failed to write comment", goerr.V("commentID", c.ID))
		}
	}

	for _, l := range staged.activityLogs {
		stored := f.activityLog.toDoc(l)
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		if err := tx.Set(f.activityLog.collection().Doc(l.ID), stored); err != nil {
			return goerr.Wrap(err, "failed to write activity log", goerr.V("activityID", l.ID))
		}
	}

	for _, a := range staged.actions {
		stored := f.action.toDoc(a)
		stored.UpdatedAt = now
		if err := tx.Set(f.action.collection().Doc(a.ID), stored); err != nil {
			return goerr.Wrap(err, "failed to write action", goerr.V("actionID", a.ID))
		}
	}

	return nil
}
