package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/repository/firestore"
	"github.com/inno-lab/innovaid/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func createSupport(t *testing.T, repo interfaces.Repository, s *model.SupportRecord) *model.SupportRecord {
	t.Helper()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	err := repo.Transaction(context.Background(), func(ctx context.Context, tx interfaces.Tx) error {
		tx.PutSupport(s)
		return nil
	})
	gt.NoError(t, err).Required()

	stored, err := repo.Support().Get(context.Background(), s.ID)
	gt.NoError(t, err).Required()
	return stored
}

func runSupportRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("transaction persists staged support", func(t *testing.T) {
		repo := newRepo(t)

		created := createSupport(t, repo, &model.SupportRecord{
			InnovationID:       "inn-1",
			OrganisationID:     "org-1",
			OrganisationUnitID: "unit-1",
			Status:             types.SupportStatusEngaging,
			AccessorIDs:        []string{"user-b"},
			CreatedBy:          "user-a",
			UpdatedBy:          "user-a",
		})

		gt.Value(t, created.Status).Equal(types.SupportStatusEngaging)
		gt.Array(t, created.AccessorIDs).Equal([]string{"user-b"})
		gt.Number(t, created.Version).Equal(1)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("Get returns error for non-existent record", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Support().Get(context.Background(), "missing")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()
	})

	t.Run("GetByInnovationAndUnit returns nil when absent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		record, err := repo.Support().GetByInnovationAndUnit(ctx, "inn-1", "unit-1")
		gt.NoError(t, err).Required()
		gt.Value(t, record).Nil()
	})

	t.Run("GetByInnovationAndUnit finds the pair", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created := createSupport(t, repo, &model.SupportRecord{
			InnovationID:       "inn-1",
			OrganisationUnitID: "unit-1",
			Status:             types.SupportStatusWaiting,
		})
		createSupport(t, repo, &model.SupportRecord{
			InnovationID:       "inn-1",
			OrganisationUnitID: "unit-2",
			Status:             types.SupportStatusEngaging,
		})

		record, err := repo.Support().GetByInnovationAndUnit(ctx, "inn-1", "unit-1")
		gt.NoError(t, err).Required()
		gt.Value(t, record).NotNil()
		gt.Value(t, record.ID).Equal(created.ID)
	})

	t.Run("ListByInnovation filters by status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		createSupport(t, repo, &model.SupportRecord{
			InnovationID:       "inn-1",
			OrganisationUnitID: "unit-1",
			Status:             types.SupportStatusEngaging,
		})
		createSupport(t, repo, &model.SupportRecord{
			InnovationID:       "inn-1",
			OrganisationUnitID: "unit-2",
			Status:             types.SupportStatusComplete,
		})
		createSupport(t, repo, &model.SupportRecord{
			InnovationID:       "inn-1",
			OrganisationUnitID: "unit-3",
			Status:             types.SupportStatusWaiting,
		})

		records, err := repo.Support().ListByInnovation(ctx, "inn-1",
			types.SupportStatusEngaging, types.SupportStatusComplete)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(2)

		all, err := repo.Support().ListByInnovation(ctx, "inn-1")
		gt.NoError(t, err).Required()
		gt.Array(t, all).Length(3)
	})

	t.Run("soft-deleted records are invisible", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created := createSupport(t, repo, &model.SupportRecord{
			InnovationID:       "inn-1",
			OrganisationUnitID: "unit-1",
			Status:             types.SupportStatusWaiting,
		})

		deleted := *created
		now := created.UpdatedAt
		deleted.DeletedAt = &now
		err := repo.Transaction(ctx, func(ctx context.Context, tx interfaces.Tx) error {
			tx.PutSupport(&deleted)
			return nil
		})
		gt.NoError(t, err).Required()

		_, err = repo.Support().Get(ctx, created.ID)
		gt.Value(t, err).NotNil()

		record, err := repo.Support().GetByInnovationAndUnit(ctx, "inn-1", "unit-1")
		gt.NoError(t, err).Required()
		gt.Value(t, record).Nil()
	})

	t.Run("stale version aborts the transaction", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created := createSupport(t, repo, &model.SupportRecord{
			InnovationID:       "inn-1",
			OrganisationUnitID: "unit-1",
			Status:             types.SupportStatusEngaging,
		})

		// First writer wins
		first := *created
		first.Status = types.SupportStatusWaiting
		gt.NoError(t, repo.Transaction(ctx, func(ctx context.Context, tx interfaces.Tx) error {
			tx.PutSupport(&first)
			return nil
		})).Required()

		// Second writer still holds the old version
		second := *created
		second.Status = types.SupportStatusComplete
		err := repo.Transaction(ctx, func(ctx context.Context, tx interfaces.Tx) error {
			tx.PutSupport(&second)
			return nil
		})
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrConflict) || errors.Is(err, firestore.ErrConflict)).True()

		// The conflicting status never landed
		stored, err := repo.Support().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Status).Equal(types.SupportStatusWaiting)
	})

	t.Run("failed transaction applies nothing", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		boom := errors.New("boom")
		supportID := uuid.NewString()
		commentID := uuid.NewString()
		err := repo.Transaction(ctx, func(ctx context.Context, tx interfaces.Tx) error {
			tx.PutSupport(&model.SupportRecord{
				ID:                 supportID,
				InnovationID:       "inn-1",
				OrganisationUnitID: "unit-1",
				Status:             types.SupportStatusEngaging,
			})
			tx.PutComment(&model.Comment{
				ID:           commentID,
				InnovationID: "inn-1",
				Message:      "should not persist",
			})
			return boom
		})
		gt.Bool(t, errors.Is(err, boom)).True()

		_, err = repo.Support().Get(ctx, supportID)
		gt.Value(t, err).NotNil()

		comments, err := repo.Comment().ListByInnovation(ctx, "inn-1")
		gt.NoError(t, err).Required()
		gt.Array(t, comments).Length(0)
	})

	t.Run("transaction applies all staged writes together", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		action := &model.Action{
			ID:           uuid.NewString(),
			SupportID:    "sup-1",
			InnovationID: "inn-1",
			Status:       types.ActionStatusRequested,
		}
		gt.NoError(t, repo.Action().Put(ctx, action)).Required()

		params := gt.R1(model.EncodeActivityParams(model.ParamsSupportStatus{
			ActionUserID:  "user-a",
			SupportStatus: types.SupportStatusWithdrawn,
		})).NoError(t)

		cancelled := *action
		cancelled.Status = types.ActionStatusDeleted

		supportID := "sup-1"
		err := repo.Transaction(ctx, func(ctx context.Context, tx interfaces.Tx) error {
			tx.PutSupport(&model.SupportRecord{
				ID:                 supportID,
				InnovationID:       "inn-1",
				OrganisationUnitID: "unit-1",
				Status:             types.SupportStatusWithdrawn,
			})
			tx.PutComment(&model.Comment{
				ID:           uuid.NewString(),
				InnovationID: "inn-1",
				SupportID:    supportID,
				Message:      "withdrawing support",
				CreatedBy:    "user-a",
			})
			tx.PutActivityLog(&model.ActivityLog{
				ID:           uuid.NewString(),
				InnovationID: "inn-1",
				Type:         types.ActivitySupportStatusUpdate,
				Params:       params,
				CreatedBy:    "user-a",
			})
			tx.UpdateActions([]*model.Action{&cancelled})
			return nil
		})
		gt.NoError(t, err).Required()

		stored, err := repo.Support().Get(ctx, supportID)
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Status).Equal(types.SupportStatusWithdrawn)

		comments, err := repo.Comment().ListByInnovation(ctx, "inn-1")
		gt.NoError(t, err).Required()
		gt.Array(t, comments).Length(1)

		logs, err := repo.ActivityLog().ListByInnovation(ctx, "inn-1", "")
		gt.NoError(t, err).Required()
		gt.Array(t, logs).Length(1)
		gt.Value(t, logs[0].Type).Equal(types.ActivitySupportStatusUpdate)

		updated, err := repo.Action().Get(ctx, action.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.ActionStatusDeleted)
	})
}

func TestMemorySupportRepository(t *testing.T) {
	runSupportRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreSupportRepository(t *testing.T) {
	runSupportRepositoryTest(t, newFirestoreRepository)
}
