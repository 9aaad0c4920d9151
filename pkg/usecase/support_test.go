package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/repository/memory"
	"github.com/inno-lab/innovaid/pkg/service/queue"
	"github.com/inno-lab/innovaid/pkg/usecase"
)

type workflowFixture struct {
	repo  *memory.Memory
	queue *queue.Memory
	uc    *usecase.UseCases
	actor *model.Actor
}

const (
	testInnovationID = "inv-1"
	testOwnerID      = "user-owner"
)

func newWorkflowFixture(t *testing.T) (context.Context, *workflowFixture) {
	t.Helper()
	ctx := context.Background()

	repo := memory.New()
	q := queue.NewMemory()
	uc := usecase.New(repo, usecase.WithQueue(q))

	gt.NoError(t, repo.Innovation().Put(ctx, &model.Innovation{
		ID:      testInnovationID,
		Name:    "Smart Wound Dressing",
		OwnerID: testOwnerID,
	})).Required()

	users := []*model.User{
		{ID: testOwnerID, Name: "Olivia Owner", Type: types.UserTypeInnovator},
		{ID: "user-na", Name: "Nina Assessor", Type: types.UserTypeAssessment},
		{
			ID: "user-qa", Name: "Quentin Lead", Type: types.UserTypeAccessor,
			OrganisationID: "org-1", OrganisationUnitID: "unit-1",
			OrganisationRole: types.OrgRoleQualifyingAccessor,
		},
		{
			ID: "user-acc-a", Name: "Amy Accessor", Type: types.UserTypeAccessor,
			OrganisationID: "org-1", OrganisationUnitID: "unit-1",
			OrganisationRole: types.OrgRoleAccessor,
		},
		{
			ID: "user-acc-b", Name: "Ben Accessor", Type: types.UserTypeAccessor,
			OrganisationID: "org-1", OrganisationUnitID: "unit-1",
			OrganisationRole: types.OrgRoleAccessor,
		},
	}
	for _, u := range users {
		gt.NoError(t, repo.User().Put(ctx, u)).Required()
	}

	return ctx, &workflowFixture{
		repo:  repo,
		queue: q,
		uc:    uc,
		actor: &model.Actor{
			ID:                 "user-qa",
			ExternalID:         "ext-qa",
			Type:               types.UserTypeAccessor,
			OrganisationID:     "org-1",
			OrganisationUnitID: "unit-1",
			OrganisationRole:   types.OrgRoleQualifyingAccessor,
		},
	}
}

func queueActions(msgs []*model.QueueMessage) []types.QueueAction {
	actions := make([]types.QueueAction, 0, len(msgs))
	for _, m := range msgs {
		actions = append(actions, m.Action)
	}
	return actions
}

func unreadCount(t *testing.T, f *workflowFixture, userID string) int {
	t.Helper()
	ctx := context.Background()
	notifications := gt.R1(f.repo.Notification().ListUnreadByUser(ctx, userID, model.NotificationFilter{})).NoError(t)
	return len(notifications)
}

func TestCreateSupport_Engaging(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	record := gt.R1(f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
		Status:      types.SupportStatusEngaging,
		Message:     "We will take this forward",
		AccessorIDs: []string{"user-acc-b"},
	})).NoError(t)

	gt.V(t, record.Status).Equal(types.SupportStatusEngaging)
	gt.V(t, record.Version).Equal(1)
	gt.V(t, record.OrganisationID).Equal("org-1")
	gt.V(t, record.OrganisationUnitID).Equal("unit-1")
	gt.A(t, record.AccessorIDs).Length(1).Has("user-acc-b")

	comments := gt.R1(f.repo.Comment().ListByInnovation(ctx, testInnovationID)).NoError(t)
	gt.A(t, comments).Length(1)
	gt.V(t, comments[0].Message).Equal("We will take this forward")
	gt.V(t, comments[0].SupportID).Equal(record.ID)

	logs := gt.R1(f.repo.ActivityLog().ListByInnovation(ctx, testInnovationID, "")).NoError(t)
	gt.A(t, logs).Length(1)
	gt.V(t, logs[0].Type).Equal(types.ActivitySupportStatusUpdate)

	entries := gt.R1(f.repo.SupportLog().ListByInnovation(ctx, testInnovationID)).NoError(t)
	gt.A(t, entries).Length(1)
	gt.V(t, entries[0].Type).Equal(types.SupportLogStatusUpdate)
	gt.V(t, entries[0].SupportStatus).Equal(types.SupportStatusEngaging)
	gt.V(t, entries[0].OrganisationUnitID).Equal("unit-1")

	// Owner hears as innovator, the assigned accessor hears as accessor,
	// the acting user hears nothing.
	gt.V(t, unreadCount(t, f, testOwnerID)).Equal(1)
	gt.V(t, unreadCount(t, f, "user-acc-b")).Equal(1)
	gt.V(t, unreadCount(t, f, "user-qa")).Equal(0)
	gt.V(t, unreadCount(t, f, "user-acc-a")).Equal(0)

	msgs := f.queue.Messages()
	gt.A(t, queueActions(msgs)).Length(2).
		Has(types.QueueActionSupportStatusInnovator).
		Has(types.QueueActionSupportStatusAccessors)
	for _, m := range msgs {
		gt.V(t, m.Body.SupportID).Equal(record.ID)
		gt.V(t, m.Body.SupportStatus).Equal(types.SupportStatusEngaging)
		gt.V(t, m.Body.StatusChanged).Equal(true)
		gt.V(t, m.Body.Actor.ID).Equal("user-qa")
		gt.S(t, m.EventID).NotEqual("")
	}
}

func TestCreateSupport_Waiting(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	record := gt.R1(f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
		Status:      types.SupportStatusWaiting,
		AccessorIDs: []string{"user-acc-a"},
	})).NoError(t)

	// The accessor list is stored as given; WAITING produces no support log.
	gt.A(t, record.AccessorIDs).Length(1).Has("user-acc-a")
	entries := gt.R1(f.repo.SupportLog().ListByInnovation(ctx, testInnovationID)).NoError(t)
	gt.A(t, entries).Length(0)

	// No comment without a message
	comments := gt.R1(f.repo.Comment().ListByInnovation(ctx, testInnovationID)).NoError(t)
	gt.A(t, comments).Length(0)

	// A create only involves the innovator; the assessment side hears about
	// updates landing on its statuses, not creations.
	gt.V(t, unreadCount(t, f, testOwnerID)).Equal(1)
	gt.V(t, unreadCount(t, f, "user-na")).Equal(0)
	gt.A(t, queueActions(f.queue.Messages())).Length(1).
		Has(types.QueueActionSupportStatusInnovator)
}

func TestCreateSupport_Rejections(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	t.Run("invalid status", func(t *testing.T) {
		_, err := f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
			Status: types.SupportStatus("SOMETHING"),
		})
		gt.B(t, errors.Is(err, usecase.ErrInvalidParams)).True()
	})

	t.Run("status not reachable from UNASSIGNED", func(t *testing.T) {
		_, err := f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
			Status: types.SupportStatusComplete,
		})
		gt.B(t, errors.Is(err, usecase.ErrInvalidStatusTransition)).True()
	})

	t.Run("unknown innovation", func(t *testing.T) {
		_, err := f.uc.Support.CreateSupport(ctx, f.actor, "inv-missing", &model.SupportPayload{
			Status: types.SupportStatusWaiting,
		})
		gt.B(t, errors.Is(err, usecase.ErrNotFound)).True()
	})

	t.Run("actor without organisation", func(t *testing.T) {
		actor := *f.actor
		actor.OrganisationID = ""
		_, err := f.uc.Support.CreateSupport(ctx, &actor, testInnovationID, &model.SupportPayload{
			Status: types.SupportStatusWaiting,
		})
		gt.B(t, errors.Is(err, usecase.ErrMissingUserOrganisation)).True()
	})

	t.Run("actor without organisation unit persists nothing", func(t *testing.T) {
		actor := *f.actor
		actor.OrganisationUnitID = ""
		_, err := f.uc.Support.CreateSupport(ctx, &actor, testInnovationID, &model.SupportPayload{
			Status:  types.SupportStatusEngaging,
			Message: "should not survive",
		})
		gt.B(t, errors.Is(err, usecase.ErrMissingUserOrganisationUnit)).True()

		supports := gt.R1(f.repo.Support().ListByInnovation(ctx, testInnovationID)).NoError(t)
		gt.A(t, supports).Length(0)
		comments := gt.R1(f.repo.Comment().ListByInnovation(ctx, testInnovationID)).NoError(t)
		gt.A(t, comments).Length(0)
		gt.A(t, f.queue.Messages()).Length(0)
	})

	t.Run("actor without qualifying role", func(t *testing.T) {
		actor := *f.actor
		actor.OrganisationRole = types.OrgRoleAccessor
		_, err := f.uc.Support.CreateSupport(ctx, &actor, testInnovationID, &model.SupportPayload{
			Status: types.SupportStatusWaiting,
		})
		gt.B(t, errors.Is(err, usecase.ErrInvalidUserRole)).True()
	})

	t.Run("second record for the same unit", func(t *testing.T) {
		gt.R1(f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
			Status: types.SupportStatusWaiting,
		})).NoError(t)

		_, err := f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
			Status: types.SupportStatusWaiting,
		})
		gt.B(t, errors.Is(err, usecase.ErrSupportAlreadyExists)).True()
	})
}

func TestUpdateSupport_LeavingEngagingCancelsOpenActions(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	record := gt.R1(f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
		Status:      types.SupportStatusEngaging,
		AccessorIDs: []string{"user-acc-a", "user-acc-b"},
	})).NoError(t)

	actions := []*model.Action{
		{ID: "act-1", SupportID: record.ID, InnovationID: testInnovationID, Status: types.ActionStatusRequested, CreatedBy: "user-acc-a"},
		{ID: "act-2", SupportID: record.ID, InnovationID: testInnovationID, Status: types.ActionStatusInReview, CreatedBy: "user-acc-b"},
		{ID: "act-3", SupportID: record.ID, InnovationID: testInnovationID, Status: types.ActionStatusCompleted, CreatedBy: "user-acc-a"},
	}
	for _, a := range actions {
		gt.NoError(t, f.repo.Action().Put(ctx, a)).Required()
	}

	f.queue.Clear()

	updated := gt.R1(f.uc.Support.UpdateSupport(ctx, f.actor, record.ID, testInnovationID, &model.SupportPayload{
		Status: types.SupportStatusWithdrawn,
	})).NoError(t)

	gt.V(t, updated.Status).Equal(types.SupportStatusWithdrawn)
	gt.V(t, updated.Version).Equal(2)
	gt.A(t, updated.AccessorIDs).Length(0)

	// Both open actions cancelled, the completed one untouched
	for _, id := range []string{"act-1", "act-2"} {
		a := gt.R1(f.repo.Action().Get(ctx, id)).NoError(t)
		gt.V(t, a.Status).Equal(types.ActionStatusDeleted)
		gt.V(t, a.UpdatedBy).Equal("user-qa")
	}
	done := gt.R1(f.repo.Action().Get(ctx, "act-3")).NoError(t)
	gt.V(t, done.Status).Equal(types.ActionStatusCompleted)

	// Cancellation leaves its own activity entry next to the status update
	logs := gt.R1(f.repo.ActivityLog().ListByInnovation(ctx, testInnovationID, "")).NoError(t)
	logTypes := make([]types.ActivityType, 0, len(logs))
	for _, l := range logs {
		logTypes = append(logTypes, l.Type)
	}
	gt.A(t, logTypes).Length(3).
		Has(types.ActivityActionStatusCancelled).
		Has(types.ActivitySupportStatusUpdate)

	gt.A(t, queueActions(f.queue.Messages())).Length(2).
		Has(types.QueueActionSupportStatusInnovator).
		Has(types.QueueActionSupportStatusAssessment)

	// Assessment users hear about the withdrawal
	gt.V(t, unreadCount(t, f, "user-na")).Equal(1)
}

func TestUpdateSupport_SameStatusReplacesAccessors(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	record := gt.R1(f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
		Status:      types.SupportStatusEngaging,
		AccessorIDs: []string{"user-acc-a"},
	})).NoError(t)

	f.queue.Clear()

	updated := gt.R1(f.uc.Support.UpdateSupport(ctx, f.actor, record.ID, testInnovationID, &model.SupportPayload{
		Status:      types.SupportStatusEngaging,
		AccessorIDs: []string{"user-acc-b"},
	})).NoError(t)

	gt.V(t, updated.Status).Equal(types.SupportStatusEngaging)
	gt.V(t, updated.Version).Equal(2)
	gt.A(t, updated.AccessorIDs).Length(1).Has("user-acc-b")

	// No status change, so neither the innovator nor the accessors hear
	// about it, but the support log still records the ENGAGING landing.
	gt.A(t, f.queue.Messages()).Length(0)
	gt.V(t, unreadCount(t, f, "user-acc-b")).Equal(0)

	entries := gt.R1(f.repo.SupportLog().ListByInnovation(ctx, testInnovationID)).NoError(t)
	gt.A(t, entries).Length(2)
	for _, e := range entries {
		gt.V(t, e.Type).Equal(types.SupportLogStatusUpdate)
		gt.V(t, e.SupportStatus).Equal(types.SupportStatusEngaging)
	}
}

func TestUpdateSupport_SameStatusWaitingKeepsAssessmentInformed(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	record := gt.R1(f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
		Status: types.SupportStatusWaiting,
	})).NoError(t)

	f.queue.Clear()

	gt.R1(f.uc.Support.UpdateSupport(ctx, f.actor, record.ID, testInnovationID, &model.SupportPayload{
		Status: types.SupportStatusWaiting,
	})).NoError(t)

	// The assessment side tracks every update landing on WAITING, changed
	// or not; the innovator only hears about actual changes.
	msgs := f.queue.Messages()
	gt.A(t, queueActions(msgs)).Length(1).
		Has(types.QueueActionSupportStatusAssessment)
	gt.V(t, msgs[0].Body.StatusChanged).Equal(false)
	gt.V(t, unreadCount(t, f, "user-na")).Equal(1)
	gt.V(t, unreadCount(t, f, testOwnerID)).Equal(1)
}

func TestUpdateSupport_ReengageNotifiesAccessors(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	record := gt.R1(f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
		Status: types.SupportStatusWaiting,
	})).NoError(t)

	f.queue.Clear()

	updated := gt.R1(f.uc.Support.UpdateSupport(ctx, f.actor, record.ID, testInnovationID, &model.SupportPayload{
		Status:      types.SupportStatusEngaging,
		AccessorIDs: []string{"user-acc-a"},
	})).NoError(t)

	gt.V(t, updated.Status).Equal(types.SupportStatusEngaging)
	gt.A(t, updated.AccessorIDs).Length(1).Has("user-acc-a")

	gt.A(t, queueActions(f.queue.Messages())).Length(2).
		Has(types.QueueActionSupportStatusInnovator).
		Has(types.QueueActionSupportStatusAccessors)
	gt.V(t, unreadCount(t, f, "user-acc-a")).Equal(1)

	entries := gt.R1(f.repo.SupportLog().ListByInnovation(ctx, testInnovationID)).NoError(t)
	gt.A(t, entries).Length(1)
	gt.V(t, entries[0].SupportStatus).Equal(types.SupportStatusEngaging)
}

func TestUpdateSupport_Rejections(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	record := gt.R1(f.uc.Support.CreateSupport(ctx, f.actor, testInnovationID, &model.SupportPayload{
		Status: types.SupportStatusWaiting,
	})).NoError(t)

	t.Run("transition not allowed", func(t *testing.T) {
		_, err := f.uc.Support.UpdateSupport(ctx, f.actor, record.ID, testInnovationID, &model.SupportPayload{
			Status: types.SupportStatusComplete,
		})
		gt.B(t, errors.Is(err, usecase.ErrInvalidStatusTransition)).True()

		current := gt.R1(f.repo.Support().Get(ctx, record.ID)).NoError(t)
		gt.V(t, current.Status).Equal(types.SupportStatusWaiting)
	})

	t.Run("unknown support record", func(t *testing.T) {
		_, err := f.uc.Support.UpdateSupport(ctx, f.actor, "sup-missing", testInnovationID, &model.SupportPayload{
			Status: types.SupportStatusEngaging,
		})
		gt.B(t, errors.Is(err, usecase.ErrNotFound)).True()
	})

	t.Run("record outside the actor's unit", func(t *testing.T) {
		actor := *f.actor
		actor.OrganisationUnitID = "unit-2"
		_, err := f.uc.Support.UpdateSupport(ctx, &actor, record.ID, testInnovationID, &model.SupportPayload{
			Status: types.SupportStatusEngaging,
		})
		gt.B(t, errors.Is(err, usecase.ErrNotFound)).True()
	})

	t.Run("innovation mismatch", func(t *testing.T) {
		_, err := f.uc.Support.UpdateSupport(ctx, f.actor, record.ID, "inv-other", &model.SupportPayload{
			Status: types.SupportStatusEngaging,
		})
		gt.B(t, errors.Is(err, usecase.ErrNotFound)).True()
	})
}
