package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// SuggestOrganisations records a needs-assessment suggestion: the named
// organisations become the innovation's suggested accessors, which drives
// the qualifying-accessor audience from then on. An activity log entry
// commits with the write; the support log entry and qualifying-accessor
// notifications follow best-effort.
func (uc *SupportUseCase) SuggestOrganisations(ctx context.Context, actor *model.Actor, innovationID string, organisationIDs, unitIDs []string) (*model.InnovationAssessment, error) {
	if actor == nil || innovationID == "" || len(organisationIDs) == 0 {
		return nil, goerr.Wrap(ErrInvalidParams, "actor, innovation and organisations are required")
	}
	if actor.Type != types.UserTypeAssessment {
		return nil, goerr.Wrap(ErrInvalidUserRole, "organisation suggestion requires an assessment user",
			goerr.V(ActorIDKey, actor.ID),
			goerr.V("userType", actor.Type))
	}

	if _, err := uc.repo.Innovation().Get(ctx, innovationID); err != nil {
		return nil, goerr.Wrap(ErrNotFound, "innovation not found", goerr.V(InnovationIDKey, innovationID))
	}

	assessments, err := uc.repo.Assessment().ListByInnovation(ctx, innovationID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments", goerr.V(InnovationIDKey, innovationID))
	}
	if len(assessments) == 0 {
		return nil, goerr.Wrap(ErrNotFound, "innovation has no needs assessment", goerr.V(InnovationIDKey, innovationID))
	}

	assessment := assessments[0]
	for _, a := range assessments[1:] {
		if a.CreatedAt.After(assessment.CreatedAt) {
			assessment = a
		}
	}

	assessment.SuggestedOrganisationIDs = dedupe(organisationIDs)
	if err := uc.repo.Assessment().Put(ctx, assessment); err != nil {
		return nil, goerr.Wrap(err, "failed to save assessment suggestion",
			goerr.V(InnovationIDKey, innovationID),
			goerr.V(ActorIDKey, actor.ID))
	}

	err = uc.repo.Transaction(ctx, func(ctx context.Context, tx interfaces.Tx) error {
		return uc.activity.Create(tx, actor, innovationID, types.ActivityOrganisationSuggestion,
			model.ParamsActor{ActionUserID: actor.ID})
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to log organisation suggestion",
			goerr.V(InnovationIDKey, innovationID),
			goerr.V(ActorIDKey, actor.ID))
	}

	uc.notifySuggestion(ctx, actor, assessment, unitIDs)

	return assessment, nil
}

func (uc *SupportUseCase) notifySuggestion(ctx context.Context, actor *model.Actor, assessment *model.InnovationAssessment, unitIDs []string) {
	var eg errgroup.Group

	eg.Go(func() error {
		_, err := uc.notification.Create(ctx, actor, types.AudienceQualifyingAccessors,
			assessment.InnovationID, types.NotificationContextAssessment, assessment.ID,
			"Your organisation has been suggested to support an innovation", nil)
		errutil.Handle(ctx, err, "qualifying accessor notification failed")
		return nil
	})

	eg.Go(func() error {
		var err error
		if uc.queue != nil {
			err = uc.queue.Enqueue(ctx, &model.QueueMessage{
				Action:  types.QueueActionOrganisationSuggestion,
				EventID: uuid.NewString(),
				Body: model.QueueBody{
					InnovationID: assessment.InnovationID,
					ContextID:    assessment.ID,
					Actor: model.QueueActor{
						ID:         actor.ID,
						ExternalID: actor.ExternalID,
						Role:       string(actor.Type),
					},
					SuggestedUnitIDs: unitIDs,
				},
			})
		}
		errutil.Handle(ctx, err, "suggestion queue dispatch failed")
		return nil
	})

	if len(unitIDs) > 0 {
		eg.Go(func() error {
			_, err := uc.supportLog.Create(ctx, actor, assessment.InnovationID, &model.SupportLogEntry{
				Type:             types.SupportLogAccessorSuggestion,
				Description:      "Organisation units suggested by needs assessment",
				SuggestedUnitIDs: unitIDs,
			})
			errutil.Handle(ctx, err, "suggestion support log failed")
			return nil
		})
	}

	_ = eg.Wait()
}
