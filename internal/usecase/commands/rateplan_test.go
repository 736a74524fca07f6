//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/rateplan"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"
	queriesmock "hotelcore/tests/mock/queries"
	sharedmock "hotelcore/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ratePlanFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	ratePlans    *sharedmock.MockRatePlanRepository
	rooms        *sharedmock.MockRoomRepository
	reservations *sharedmock.MockReservationRepository
	views        *queriesmock.MockRatePlanQueries
	trail        *sharedmock.MockAuditTrail
	cmds         commands.RatePlanCommands
}

func newRatePlanFixture(t *testing.T) *ratePlanFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &ratePlanFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		ratePlans:    sharedmock.NewMockRatePlanRepository(ctrl),
		rooms:        sharedmock.NewMockRoomRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		views:        queriesmock.NewMockRatePlanQueries(ctrl),
		trail:        sharedmock.NewMockAuditTrail(ctrl),
	}
	f.tx.EXPECT().RatePlans().Return(f.ratePlans).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.trail.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	f.cmds = commands.NewRatePlanCommands(f.uow, f.views, f.trail, clock.NewMockClock(fixedNow))
	return f
}

func TestRatePlanCommands_Create(t *testing.T) {
	t.Run("creates a plan", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.views.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*queries.RatePlanView, error) {
				return &queries.RatePlanView{ID: id, Name: "Standard"}, nil
			})

		view, err := f.cmds.Create(context.Background(), "Standard", "", testActor)
		require.NoError(t, err)
		assert.Equal(t, "Standard", view.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr(infra.KindDuplicateKey, "unique violation", nil))

		_, err := f.cmds.Create(context.Background(), "Standard", "", testActor)
		assert.ErrorIs(t, err, errs.ErrDuplicateEntity)
	})

	t.Run("empty name", func(t *testing.T) {
		f := newRatePlanFixture(t)
		_, err := f.cmds.Create(context.Background(), "", "", testActor)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestRatePlanCommands_AddRate(t *testing.T) {
	planID := uuid.New()
	categoryID := uuid.New()

	t.Run("adds a rate for a plan and category", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().ByID(gomock.Any(), planID).Return(rateplan.Reconstruct(planID, "Standard", ""), nil)
		f.rooms.EXPECT().CategoryByID(gomock.Any(), categoryID).
			Return(room.ReconstructCategory(categoryID, "Deluxe", money.New(15000), 2), nil)
		f.ratePlans.EXPECT().AddRate(gomock.Any(), gomock.Any()).Return(nil)
		f.views.EXPECT().GetByID(gomock.Any(), planID).Return(&queries.RatePlanView{ID: planID}, nil)

		_, err := f.cmds.AddRate(context.Background(), planID, categoryID, 13000, testActor)
		assert.NoError(t, err)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().ByID(gomock.Any(), planID).Return(rateplan.Reconstruct(planID, "Standard", ""), nil)
		f.rooms.EXPECT().CategoryByID(gomock.Any(), categoryID).
			Return(room.ReconstructCategory(categoryID, "Deluxe", money.New(15000), 2), nil)
		f.ratePlans.EXPECT().AddRate(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr(infra.KindDuplicateKey, "unique violation", nil))

		_, err := f.cmds.AddRate(context.Background(), planID, categoryID, 13000, testActor)
		assert.ErrorIs(t, err, errs.ErrDuplicateEntity)
	})

	t.Run("negative price", func(t *testing.T) {
		f := newRatePlanFixture(t)
		_, err := f.cmds.AddRate(context.Background(), planID, categoryID, -1, testActor)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().ByID(gomock.Any(), planID).Return(rateplan.Reconstruct(planID, "Standard", ""), nil)
		f.rooms.EXPECT().CategoryByID(gomock.Any(), categoryID).Return(nil, notFoundErr())

		_, err := f.cmds.AddRate(context.Background(), planID, categoryID, 13000, testActor)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestRatePlanCommands_UpdateRate(t *testing.T) {
	planID := uuid.New()
	categoryID := uuid.New()

	t.Run("reprices an existing rate", func(t *testing.T) {
		f := newRatePlanFixture(t)
		rate := rateplan.ReconstructRate(planID, categoryID, money.New(13000))
		f.ratePlans.EXPECT().RateFor(gomock.Any(), planID, categoryID).Return(rate, nil)
		f.ratePlans.EXPECT().UpdateRate(gomock.Any(), rate).Return(nil)
		f.views.EXPECT().GetByID(gomock.Any(), planID).Return(&queries.RatePlanView{ID: planID}, nil)

		_, err := f.cmds.UpdateRate(context.Background(), planID, categoryID, 14500, testActor)
		require.NoError(t, err)
		assert.Equal(t, int64(14500), rate.Price().Cents())
	})

	t.Run("missing rate", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().RateFor(gomock.Any(), planID, categoryID).Return(nil, notFoundErr())

		_, err := f.cmds.UpdateRate(context.Background(), planID, categoryID, 14500, testActor)
		assert.ErrorIs(t, err, errs.ErrRateNotFound)
	})
}

func TestRatePlanCommands_Delete(t *testing.T) {
	planID := uuid.New()

	t.Run("deletes an unreferenced plan", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().ByID(gomock.Any(), planID).Return(rateplan.Reconstruct(planID, "Standard", ""), nil)
		f.reservations.EXPECT().CountByRatePlan(gomock.Any(), planID).Return(int64(0), nil)
		f.ratePlans.EXPECT().Delete(gomock.Any(), planID).Return(nil)

		assert.NoError(t, f.cmds.Delete(context.Background(), planID, testActor))
	})

	t.Run("refused while reservations reference it", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().ByID(gomock.Any(), planID).Return(rateplan.Reconstruct(planID, "Standard", ""), nil)
		f.reservations.EXPECT().CountByRatePlan(gomock.Any(), planID).Return(int64(3), nil)

		err := f.cmds.Delete(context.Background(), planID, testActor)
		assert.ErrorIs(t, err, errs.ErrInUse)
	})

	t.Run("unknown plan", func(t *testing.T) {
		f := newRatePlanFixture(t)
		f.ratePlans.EXPECT().ByID(gomock.Any(), planID).Return(nil, notFoundErr())

		assert.ErrorIs(t, f.cmds.Delete(context.Background(), planID, testActor), errs.ErrNotFound)
	})
}
