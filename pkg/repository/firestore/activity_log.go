package firestore

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

const activityLogsCollection = "activity_logs"

type activityLogRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// activityLogDoc is the Firestore persistence model. The params blob is
// stored as a JSON string; category is denormalized from the activity type
// so the read path can filter server-side.
type activityLogDoc struct {
	ID           string    `firestore:"id"`
	InnovationID string    `firestore:"innovation_id"`
	Type         string    `firestore:"type"`
	Category     string    `firestore:"category"`
	Params       string    `firestore:"params"`
	CreatedBy    string    `firestore:"created_by"`
	CreatedAt    time.Time `firestore:"created_at"`
}

func (r *activityLogRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, activityLogsCollection))
}

func (r *activityLogRepository) toDoc(l *model.ActivityLog) *activityLogDoc {
	return &activityLogDoc{
		ID:           l.ID,
		InnovationID: l.InnovationID,
		Type:         string(l.Type),
		Category:     string(l.Type.Category()),
		Params:       string(l.Params),
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
	}
}

func (r *activityLogRepository) fromDoc(doc *activityLogDoc) *model.ActivityLog {
	return &model.ActivityLog{
		ID:           doc.ID,
		InnovationID: doc.InnovationID,
		Type:         types.ActivityType(doc.Type),
		Params:       json.RawMessage(doc.Params),
		CreatedBy:    doc.CreatedBy,
		CreatedAt:    doc.CreatedAt,
	}
}

func (r *activityLogRepository) ListByInnovation(ctx context.Context, innovationID string, category types.ActivityCategory) ([]*model.ActivityLog, error) {
	query := r.collection().Where("innovation_id", "==", innovationID)
	if category != "" {
		query = query.Where("category", "==", string(category))
	}

	iter := query.OrderBy("created_at", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	logs := []*model.ActivityLog{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate activity logs", goerr.V("innovationID", innovationID))
		}

		var d activityLogDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal activity log", goerr.V("docID", doc.Ref.ID))
		}

		logs = append(logs, r.fromDoc(&d))
	}

	return logs, nil
}
