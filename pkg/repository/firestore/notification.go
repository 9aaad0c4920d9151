package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	notificationsCollection = "notifications"
	recipientsCollection    = "notification_recipients"

	// Maximum document references per GetAll
	firestoreGetAllLimit = 30
)

type notificationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// notificationDoc is the Firestore persistence model
type notificationDoc struct {
	ID           string    `firestore:"id"`
	InnovationID string    `firestore:"innovation_id"`
	ContextType  string    `firestore:"context_type"`
	ContextID    string    `firestore:"context_id"`
	Message      string    `firestore:"message"`
	CreatedBy    string    `firestore:"created_by"`
	CreatedAt    time.Time `firestore:"created_at"`
}

// recipientDoc is one recipient row. Read is denormalized from ReadAt so
// the unread query stays a simple equality filter.
type recipientDoc struct {
	NotificationID string     `firestore:"notification_id"`
	UserID         string     `firestore:"user_id"`
	Read           bool       `firestore:"read"`
	ReadAt         *time.Time `firestore:"read_at"`
	CreatedAt      time.Time  `firestore:"created_at"`
}

func (r *notificationRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, notificationsCollection))
}

func (r *notificationRepository) recipients() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, recipientsCollection))
}

func recipientDocID(notificationID, userID string) string {
	return notificationID + "_" + userID
}

func (r *notificationRepository) toDoc(n *model.Notification) *notificationDoc {
	return &notificationDoc{
		ID:           n.ID,
		InnovationID: n.InnovationID,
		ContextType:  string(n.ContextType),
		ContextID:    n.ContextID,
		Message:      n.Message,
		CreatedBy:    n.CreatedBy,
		CreatedAt:    n.CreatedAt,
	}
}

func (r *notificationRepository) fromDoc(doc *notificationDoc) *model.Notification {
	return &model.Notification{
		ID:           doc.ID,
		InnovationID: doc.InnovationID,
		ContextType:  types.NotificationContextType(doc.ContextType),
		ContextID:    doc.ContextID,
		Message:      doc.Message,
		CreatedBy:    doc.CreatedBy,
		CreatedAt:    doc.CreatedAt,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification, recipientIDs []string) (*model.Notification, error) {
	now := time.Now().UTC()
	created := *n
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}

	bulkWriter := r.client.BulkWriter(ctx)
	defer bulkWriter.End()

	if _, err := bulkWriter.Set(r.collection().Doc(created.ID), r.toDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to write notification", goerr.V("id", created.ID))
	}

	for _, userID := range recipientIDs {
		doc := &recipientDoc{
			NotificationID: created.ID,
			UserID:         userID,
			CreatedAt:      now,
		}
		ref := r.recipients().Doc(recipientDocID(created.ID, userID))
		if _, err := bulkWriter.Set(ref, doc); err != nil {
			return nil, goerr.Wrap(err, "failed to write notification recipient",
				goerr.V("notificationID", created.ID),
				goerr.V("userID", userID))
		}
	}

	bulkWriter.Flush()

	return &created, nil
}

func (r *notificationRepository) ListUnreadByUser(ctx context.Context, userID string, filter model.NotificationFilter) ([]*model.Notification, error) {
	iter := r.recipients().
		Where("user_id", "==", userID).
		Where("read", "==", false).
		Documents(ctx)
	defer iter.Stop()

	var notificationIDs []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notification recipients", goerr.V("userID", userID))
		}

		var d recipientDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal notification recipient", goerr.V("docID", doc.Ref.ID))
		}
		notificationIDs = append(notificationIDs, d.NotificationID)
	}

	notifications := []*model.Notification{}
	for i := 0; i < len(notificationIDs); i += firestoreGetAllLimit {
		end := i + firestoreGetAllLimit
		if end > len(notificationIDs) {
			end = len(notificationIDs)
		}
		batch := notificationIDs[i:end]

		refs := make([]*firestore.DocumentRef, len(batch))
		for j, id := range batch {
			refs[j] = r.collection().Doc(id)
		}

		docs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to batch get notifications", goerr.V("count", len(batch)))
		}

		for _, doc := range docs {
			if !doc.Exists() {
				continue
			}

			var d notificationDoc
			if err := doc.DataTo(&d); err != nil {
				return nil, goerr.Wrap(err, "failed to unmarshal notification", goerr.V("docID", doc.Ref.ID))
			}

			n := r.fromDoc(&d)
			if filter.InnovationID != "" && n.InnovationID != filter.InnovationID {
				continue
			}
			if filter.ContextType != "" && n.ContextType != filter.ContextType {
				continue
			}
			if filter.ContextID != "" && n.ContextID != filter.ContextID {
				continue
			}

			notifications = append(notifications, n)
		}
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, userID string) error {
	ref := r.recipients().Doc(recipientDocID(notificationID, userID))
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "notification recipient not found",
				goerr.V("notificationID", notificationID),
				goerr.V("userID", userID))
		}
		return goerr.Wrap(err, "failed to get notification recipient", goerr.V("notificationID", notificationID))
	}

	var d recipientDoc
	if err := doc.DataTo(&d); err != nil {
		return goerr.Wrap(err, "failed to unmarshal notification recipient", goerr.V("notificationID", notificationID))
	}
	if d.Read {
		return nil
	}

	now := time.Now().UTC()
	if _, err := ref.Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
		{Path: "read_at", Value: &now},
	}); err != nil {
		return goerr.Wrap(err, "failed to mark notification read",
			goerr.V("notificationID", notificationID),
			goerr.V("userID", userID))
	}

	return nil
}
