package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type ActivityUseCase struct {
	repo     interfaces.Repository
	resolver interfaces.NameResolver
}

func NewActivityUseCase(repo interfaces.Repository, resolver interfaces.NameResolver) *ActivityUseCase {
	return &ActivityUseCase{
		repo:     repo,
		resolver: resolver,
	}
}

// Create stages one activity log entry on the caller's transaction so the
// entry commits (or rolls back) together with the writes it documents.
func (uc *ActivityUseCase) Create(tx interfaces.Tx, actor *model.Actor, innovationID string, activity types.ActivityType, params model.ActivityParams) error {
	if actor == nil || innovationID == "" {
		return goerr.Wrap(ErrInvalidParams, "actor and innovation are required")
	}
	if !activity.IsValid() {
		return goerr.Wrap(ErrInvalidParams, "unknown activity type", goerr.V("activity", activity))
	}

	raw, err := model.EncodeActivityParams(params)
	if err != nil {
		return goerr.Wrap(err, "failed to encode activity params", goerr.V("activity", activity))
	}

	tx.PutActivityLog(&model.ActivityLog{
		ID:           uuid.NewString(),
		InnovationID: innovationID,
		Type:         activity,
		Params:       raw,
		CreatedBy:    actor.ID,
	})

	return nil
}

// List materializes the activity log of an innovation for display, newest
// first, optionally narrowed to one category. User-id fields in the stored
// blobs are replaced by display names in the returned views.
func (uc *ActivityUseCase) List(ctx context.Context, innovationID string, category types.ActivityCategory) ([]*model.ActivityView, error) {
	if innovationID == "" {
		return nil, goerr.Wrap(ErrInvalidParams, "innovation is required")
	}
	if category != "" && !category.IsValid() {
		return nil, goerr.Wrap(ErrInvalidParams, "invalid activity category", goerr.V("category", category))
	}

	logs, err := uc.repo.ActivityLog().ListByInnovation(ctx, innovationID, category)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list activity logs", goerr.V(InnovationIDKey, innovationID))
	}

	views := make([]*model.ActivityView, 0, len(logs))
	for _, l := range logs {
		params, err := model.ResolveActivityParams(l.Params, uc.resolveName(ctx))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve activity params", goerr.V("activityID", l.ID))
		}

		views = append(views, &model.ActivityView{
			ID:           l.ID,
			InnovationID: l.InnovationID,
			Type:         l.Type,
			Category:     l.Type.Category(),
			Params:       params,
			CreatedBy:    l.CreatedBy,
			CreatedAt:    l.CreatedAt,
		})
	}

	return views, nil
}

// resolveName adapts the directory resolver; without one, names resolve to
// the empty string rather than failing the read path.
func (uc *ActivityUseCase) resolveName(ctx context.Context) func(userID string) string {
	return func(userID string) string {
		if uc.resolver == nil {
			return ""
		}
		return uc.resolver.ResolveName(ctx, userID)
	}
}
