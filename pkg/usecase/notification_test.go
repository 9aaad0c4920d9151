package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/usecase"
)

func notificationUserIDs(t *testing.T, f *workflowFixture, userIDs ...string) map[string]int {
	t.Helper()
	ctx := context.Background()
	counts := make(map[string]int, len(userIDs))
	for _, id := range userIDs {
		notifications := gt.R1(f.repo.Notification().ListUnreadByUser(ctx, id, model.NotificationFilter{})).NoError(t)
		counts[id] = len(notifications)
	}
	return counts
}

func TestNotificationCreate_Audiences(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	t.Run("innovator audience always includes the owner", func(t *testing.T) {
		gt.R1(f.uc.Notification.Create(ctx, f.actor, types.AudienceInnovators,
			testInnovationID, types.NotificationContextSupport, "sup-1", "hello",
			[]string{"user-acc-a"})).NoError(t)

		counts := notificationUserIDs(t, f, testOwnerID, "user-acc-a")
		gt.V(t, counts[testOwnerID]).Equal(1)
		gt.V(t, counts["user-acc-a"]).Equal(1)
	})

	t.Run("explicit targets replace the accessor query", func(t *testing.T) {
		// No ENGAGING support exists, yet the explicit list delivers
		gt.R1(f.uc.Notification.Create(ctx, f.actor, types.AudienceAccessors,
			testInnovationID, types.NotificationContextSupport, "sup-1", "hello",
			[]string{"user-acc-b"})).NoError(t)

		gt.V(t, notificationUserIDs(t, f, "user-acc-b")["user-acc-b"]).Equal(1)
	})

	t.Run("assessment audience resolves by user type", func(t *testing.T) {
		gt.R1(f.uc.Notification.Create(ctx, f.actor, types.AudienceAssessmentUsers,
			testInnovationID, types.NotificationContextInnovation, testInnovationID, "hello", nil)).NoError(t)

		gt.V(t, notificationUserIDs(t, f, "user-na")["user-na"]).Equal(1)
	})

	t.Run("acting user never receives their own notification", func(t *testing.T) {
		created := gt.R1(f.uc.Notification.Create(ctx, f.actor, types.AudienceAccessors,
			testInnovationID, types.NotificationContextSupport, "sup-1", "hello",
			[]string{"user-qa", "user-acc-a"})).NoError(t)
		gt.S(t, created.ID).NotEqual("")

		gt.V(t, notificationUserIDs(t, f, "user-qa")["user-qa"]).Equal(0)
	})

	t.Run("empty recipient set still persists the header", func(t *testing.T) {
		created := gt.R1(f.uc.Notification.Create(ctx, f.actor, types.AudienceAccessors,
			testInnovationID, types.NotificationContextSupport, "sup-2", "nobody listens",
			[]string{"user-qa"})).NoError(t)
		gt.S(t, created.ID).NotEqual("")
	})

	t.Run("invalid audience rejected", func(t *testing.T) {
		_, err := f.uc.Notification.Create(ctx, f.actor, types.Audience("EVERYONE"),
			testInnovationID, types.NotificationContextSupport, "sup-1", "hello", nil)
		gt.B(t, errors.Is(err, usecase.ErrInvalidParams)).True()
	})
}

func TestNotificationCreate_QualifyingAccessors(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	// A finished assessment suggesting org-1 reaches its qualifying
	// accessors. user-qa is the actor and drops out; add a second QA.
	gt.NoError(t, f.repo.User().Put(ctx, &model.User{
		ID: "user-qa2", Name: "Quinn Lead", Type: types.UserTypeAccessor,
		OrganisationID: "org-1", OrganisationUnitID: "unit-2",
		OrganisationRole: types.OrgRoleQualifyingAccessor,
	})).Required()
	gt.NoError(t, f.repo.Assessment().Put(ctx, &model.InnovationAssessment{
		ID:                       "asmt-1",
		InnovationID:             testInnovationID,
		SuggestedOrganisationIDs: []string{"org-1"},
	})).Required()

	gt.R1(f.uc.Notification.Create(ctx, f.actor, types.AudienceQualifyingAccessors,
		testInnovationID, types.NotificationContextAssessment, "asmt-1", "suggested", nil)).NoError(t)

	counts := notificationUserIDs(t, f, "user-qa2", "user-qa", "user-acc-a")
	gt.V(t, counts["user-qa2"]).Equal(1)
	gt.V(t, counts["user-qa"]).Equal(0)
	gt.V(t, counts["user-acc-a"]).Equal(0)
}

func TestNotificationGetUnread_Idempotent(t *testing.T) {
	ctx, f := newWorkflowFixture(t)

	gt.R1(f.uc.Notification.Create(ctx, f.actor, types.AudienceInnovators,
		testInnovationID, types.NotificationContextSupport, "sup-1", "first", nil)).NoError(t)
	gt.R1(f.uc.Notification.Create(ctx, f.actor, types.AudienceInnovators,
		testInnovationID, types.NotificationContextSupport, "sup-1", "second", nil)).NoError(t)

	owner := &model.Actor{ID: testOwnerID, Type: types.UserTypeInnovator}

	first := gt.R1(f.uc.Notification.GetUnread(ctx, owner, model.NotificationFilter{})).NoError(t)
	second := gt.R1(f.uc.Notification.GetUnread(ctx, owner, model.NotificationFilter{})).NoError(t)
	gt.A(t, first).Length(2)
	gt.A(t, second).Length(2)

	gt.NoError(t, f.uc.Notification.MarkRead(ctx, owner, first[0].ID))

	remaining := gt.R1(f.uc.Notification.GetUnread(ctx, owner, model.NotificationFilter{})).NoError(t)
	gt.A(t, remaining).Length(1)
	gt.V(t, remaining[0].ID).NotEqual(first[0].ID)
}
