package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// SupportUseCase drives the support status workflow: it validates the
// actor, applies the status transition and its cascading writes in one
// transaction, and fans out best-effort notifications after commit.
type SupportUseCase struct {
	repo         interfaces.Repository
	queue        interfaces.QueueClient
	notification *NotificationUseCase
	supportLog   *SupportLogUseCase
	activity     *ActivityUseCase
}

func NewSupportUseCase(repo interfaces.Repository, queue interfaces.QueueClient, notification *NotificationUseCase, supportLog *SupportLogUseCase, activity *ActivityUseCase) *SupportUseCase {
	return &SupportUseCase{
		repo:         repo,
		queue:        queue,
		notification: notification,
		supportLog:   supportLog,
		activity:     activity,
	}
}

// authorize checks the membership and role preconditions shared by both
// workflow operations. Checked in a fixed order: organisation, unit, role.
func (uc *SupportUseCase) authorize(actor *model.Actor) error {
	if actor == nil {
		return goerr.Wrap(ErrInvalidParams, "actor is required")
	}
	if !actor.HasOrganisation() {
		return goerr.Wrap(ErrMissingUserOrganisation, "support workflow requires an organisation membership", goerr.V(ActorIDKey, actor.ID))
	}
	if !actor.HasOrganisationUnit() {
		return goerr.Wrap(ErrMissingUserOrganisationUnit, "support workflow requires an organisation unit membership", goerr.V(ActorIDKey, actor.ID))
	}
	if !actor.IsQualifyingAccessor() {
		return goerr.Wrap(ErrInvalidUserRole, "support workflow requires the qualifying accessor role",
			goerr.V(ActorIDKey, actor.ID),
			goerr.V("role", actor.OrganisationRole))
	}
	return nil
}

func validatePayload(payload *model.SupportPayload) error {
	if payload == nil {
		return goerr.Wrap(ErrInvalidParams, "payload is required")
	}
	if !payload.Status.IsValid() {
		return goerr.Wrap(ErrInvalidParams, "invalid support status", goerr.V("status", payload.Status))
	}
	return nil
}

// CreateSupport starts an organisation unit's engagement with an
// innovation. The new record, its optional comment and its activity log
// entry commit atomically; notifications follow after commit and never
// fail the operation.
func (uc *SupportUseCase) CreateSupport(ctx context.Context, actor *model.Actor, innovationID string, payload *model.SupportPayload) (*model.SupportRecord, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	if err := uc.authorize(actor); err != nil {
		return nil, err
	}

	if _, err := uc.repo.Innovation().Get(ctx, innovationID); err != nil {
		return nil, goerr.Wrap(ErrNotFound, "innovation not found", goerr.V(InnovationIDKey, innovationID))
	}

	existing, err := uc.repo.Support().GetByInnovationAndUnit(ctx, innovationID, actor.OrganisationUnitID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check existing support record", goerr.V(InnovationIDKey, innovationID))
	}
	if existing != nil {
		return nil, goerr.Wrap(ErrSupportAlreadyExists, "one support record per innovation and unit",
			goerr.V(InnovationIDKey, innovationID),
			goerr.V(SupportIDKey, existing.ID))
	}

	if !types.SupportStatusUnassigned.CanTransitionTo(payload.Status) {
		return nil, goerr.Wrap(ErrInvalidStatusTransition, "status not reachable from UNASSIGNED",
			goerr.V("to", payload.Status))
	}

	record := &model.SupportRecord{
		ID:                 uuid.NewString(),
		InnovationID:       innovationID,
		OrganisationID:     actor.OrganisationID,
		OrganisationUnitID: actor.OrganisationUnitID,
		Status:             payload.Status,
		AccessorIDs:        payload.AccessorIDs,
		CreatedBy:          actor.ID,
		UpdatedBy:          actor.ID,
	}

	err = uc.repo.Transaction(ctx, func(ctx context.Context, tx interfaces.Tx) error {
		if payload.Message != "" {
			tx.PutComment(&model.Comment{
				ID:           uuid.NewString(),
				InnovationID: innovationID,
				SupportID:    record.ID,
				Message:      payload.Message,
				CreatedBy:    actor.ID,
			})
		}

		tx.PutSupport(record)

		return uc.activity.Create(tx, actor, innovationID, types.ActivitySupportStatusUpdate,
			model.ParamsSupportStatus{
				ActionUserID:  actor.ID,
				SupportStatus: payload.Status,
			})
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return nil, goerr.Wrap(ErrConflict, "concurrent support update detected",
				goerr.V(InnovationIDKey, innovationID))
		}
		return nil, goerr.Wrap(err, "failed to create support record",
			goerr.V(InnovationIDKey, innovationID),
			goerr.V(ActorIDKey, actor.ID))
	}

	uc.notifyPhase(ctx, actor, record, true, true)

	created, err := uc.repo.Support().Get(ctx, record.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to reload support record", goerr.V(SupportIDKey, record.ID))
	}
	return created, nil
}

// UpdateSupport moves an existing support record to a new status. Leaving
// ENGAGING clears the accessor list and force-cancels every open action in
// the same transaction.
func (uc *SupportUseCase) UpdateSupport(ctx context.Context, actor *model.Actor, supportID, innovationID string, payload *model.SupportPayload) (*model.SupportRecord, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	if err := uc.authorize(actor); err != nil {
		return nil, err
	}

	support, err := uc.repo.Support().Get(ctx, supportID)
	if err != nil {
		return nil, goerr.Wrap(ErrNotFound, "support record not found", goerr.V(SupportIDKey, supportID))
	}
	if support.InnovationID != innovationID || support.OrganisationUnitID != actor.OrganisationUnitID {
		return nil, goerr.Wrap(ErrNotFound, "support record not in actor's scope",
			goerr.V(SupportIDKey, supportID),
			goerr.V(InnovationIDKey, innovationID))
	}

	oldStatus := support.Status
	newStatus := payload.Status
	statusChanged := oldStatus != newStatus

	if !oldStatus.CanTransitionTo(newStatus) {
		return nil, goerr.Wrap(ErrInvalidStatusTransition, "transition not allowed",
			goerr.V("from", oldStatus),
			goerr.V("to", newStatus))
	}

	leavingEngaging := oldStatus == types.SupportStatusEngaging && statusChanged

	var cancelled []*model.Action
	if leavingEngaging {
		open, err := uc.repo.Action().ListBySupport(ctx, supportID, types.OpenActionStatuses()...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list open actions", goerr.V(SupportIDKey, supportID))
		}
		for _, a := range open {
			c := *a
			c.Status = types.ActionStatusDeleted
			c.UpdatedBy = actor.ID
			cancelled = append(cancelled, &c)
		}
	}

	updated := *support
	updated.Status = newStatus
	updated.UpdatedBy = actor.ID
	if leavingEngaging {
		updated.AccessorIDs = nil
	} else {
		updated.AccessorIDs = payload.AccessorIDs
	}

	err = uc.repo.Transaction(ctx, func(ctx context.Context, tx interfaces.Tx) error {
		if payload.Message != "" {
			tx.PutComment(&model.Comment{
				ID:           uuid.NewString(),
				InnovationID: innovationID,
				SupportID:    supportID,
				Message:      payload.Message,
				CreatedBy:    actor.ID,
			})
		}

		if len(cancelled) > 0 {
			tx.UpdateActions(cancelled)
			if err := uc.activity.Create(tx, actor, innovationID, types.ActivityActionStatusCancelled,
				model.ParamsActionCount{
					ActionUserID: actor.ID,
					TotalActions: len(cancelled),
				}); err != nil {
				return err
			}
		}

		tx.PutSupport(&updated)

		return uc.activity.Create(tx, actor, innovationID, types.ActivitySupportStatusUpdate,
			model.ParamsSupportStatus{
				ActionUserID:  actor.ID,
				SupportStatus: newStatus,
			})
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return nil, goerr.Wrap(ErrConflict, "concurrent support update detected",
				goerr.V(SupportIDKey, supportID))
		}
		return nil, goerr.Wrap(err, "failed to update support record",
			goerr.V(SupportIDKey, supportID),
			goerr.V(ActorIDKey, actor.ID))
	}

	uc.notifyPhase(ctx, actor, &updated, false, statusChanged)

	reloaded, err := uc.repo.Support().Get(ctx, supportID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to reload support record", goerr.V(SupportIDKey, supportID))
	}
	return reloaded, nil
}

// List returns the innovation's support records, oldest first, optionally
// narrowed to the given statuses.
func (uc *SupportUseCase) List(ctx context.Context, innovationID string, statuses ...types.SupportStatus) ([]*model.SupportRecord, error) {
	if innovationID == "" {
		return nil, goerr.Wrap(ErrInvalidParams, "innovation is required")
	}
	for _, s := range statuses {
		if !s.IsValid() {
			return nil, goerr.Wrap(ErrInvalidParams, "invalid support status", goerr.V("status", s))
		}
	}

	supports, err := uc.repo.Support().ListByInnovation(ctx, innovationID, statuses...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list support records", goerr.V(InnovationIDKey, innovationID))
	}

	return supports, nil
}

// notifyPhase runs the best-effort side effects after the transaction has
// committed. Every failure is logged and swallowed individually: the
// caller has already seen the operation succeed, and a failing queue or
// notification call must never look like a failed status change.
//
// Innovator- and accessor-facing events fire only when the status actually
// changed. The needs-assessment event and the support log entry track the
// status the record landed on, so a same-status update re-emits them; the
// assessment side is not involved in creates.
func (uc *SupportUseCase) notifyPhase(ctx context.Context, actor *model.Actor, record *model.SupportRecord, created, statusChanged bool) {
	status := record.Status
	message := fmt.Sprintf("Support status is now %s", status)

	var eg errgroup.Group

	if statusChanged {
		eg.Go(func() error {
			_, err := uc.notification.Create(ctx, actor, types.AudienceInnovators,
				record.InnovationID, types.NotificationContextSupport, record.ID, message, nil)
			errutil.Handle(ctx, err, "innovator notification failed")
			return nil
		})
		eg.Go(func() error {
			err := uc.enqueue(ctx, types.QueueActionSupportStatusInnovator, actor, record, statusChanged)
			errutil.Handle(ctx, err, "innovator queue dispatch failed")
			return nil
		})
	}

	if statusChanged && status == types.SupportStatusEngaging {
		eg.Go(func() error {
			_, err := uc.notification.Create(ctx, actor, types.AudienceAccessors,
				record.InnovationID, types.NotificationContextSupport, record.ID, message, record.AccessorIDs)
			errutil.Handle(ctx, err, "accessor notification failed")
			return nil
		})
		eg.Go(func() error {
			err := uc.enqueue(ctx, types.QueueActionSupportStatusAccessors, actor, record, statusChanged)
			errutil.Handle(ctx, err, "accessor queue dispatch failed")
			return nil
		})
	}

	switch status {
	case types.SupportStatusWithdrawn, types.SupportStatusNotYet, types.SupportStatusWaiting:
		if !created {
			eg.Go(func() error {
				_, err := uc.notification.Create(ctx, actor, types.AudienceAssessmentUsers,
					record.InnovationID, types.NotificationContextSupport, record.ID, message, nil)
				errutil.Handle(ctx, err, "assessment notification failed")
				return nil
			})
			eg.Go(func() error {
				err := uc.enqueue(ctx, types.QueueActionSupportStatusAssessment, actor, record, statusChanged)
				errutil.Handle(ctx, err, "assessment queue dispatch failed")
				return nil
			})
		}
	}

	if logType := statusLogType(status); logType != "" {
		eg.Go(func() error {
			_, err := uc.supportLog.Create(ctx, actor, record.InnovationID, &model.SupportLogEntry{
				OrganisationUnitID: record.OrganisationUnitID,
				Type:               logType,
				Description:        message,
				SupportStatus:      status,
			})
			errutil.Handle(ctx, err, "support log creation failed")
			return nil
		})
	}

	// Closures swallow their own errors; Wait only synchronizes.
	_ = eg.Wait()
}

func (uc *SupportUseCase) enqueue(ctx context.Context, action types.QueueAction, actor *model.Actor, record *model.SupportRecord, statusChanged bool) error {
	if uc.queue == nil {
		return nil
	}

	return uc.queue.Enqueue(ctx, &model.QueueMessage{
		Action:  action,
		EventID: uuid.NewString(),
		Body: model.QueueBody{
			InnovationID: record.InnovationID,
			ContextID:    record.ID,
			Actor: model.QueueActor{
				ID:         actor.ID,
				ExternalID: actor.ExternalID,
				Role:       string(actor.Type),
			},
			SupportID:          record.ID,
			SupportStatus:      record.Status,
			StatusChanged:      statusChanged,
			OrganisationUnitID: record.OrganisationUnitID,
		},
	})
}
