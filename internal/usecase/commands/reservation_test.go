//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotelcore/internal/domain/guest"
	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/rateplan"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/domain/staff"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"
	"hotelcore/tests/common/builder"
	queriesmock "hotelcore/tests/mock/queries"
	sharedmock "hotelcore/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow  = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	testActor = shared.Actor{ID: uuid.New(), Name: "alice", Role: staff.RoleReception}
)

type reservationFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	rooms        *sharedmock.MockRoomRepository
	guests       *sharedmock.MockGuestRepository
	ratePlans    *sharedmock.MockRatePlanRepository
	views        *queriesmock.MockReservationQueries
	trail        *sharedmock.MockAuditTrail
	cmds         commands.ReservationCommands
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &reservationFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		rooms:        sharedmock.NewMockRoomRepository(ctrl),
		guests:       sharedmock.NewMockGuestRepository(ctrl),
		ratePlans:    sharedmock.NewMockRatePlanRepository(ctrl),
		views:        queriesmock.NewMockReservationQueries(ctrl),
		trail:        sharedmock.NewMockAuditTrail(ctrl),
	}
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Guests().Return(f.guests).AnyTimes()
	f.tx.EXPECT().RatePlans().Return(f.ratePlans).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.trail.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	clk := clock.NewMockClock(fixedNow)
	f.cmds = commands.NewReservationCommands(f.uow, reservation.NewFactory(clk), f.views, f.trail, clk)
	return f
}

func notFoundErr() error {
	return infra.WrapRepoErr(infra.KindNotFound, "no rows", nil)
}

func stubReferences(f *reservationFixture, b *builder.ReservationBuilder) {
	f.guests.EXPECT().ByID(gomock.Any(), b.GuestID).
		Return(guest.Reconstruct(b.GuestID, "Taro", "Yamada", "taro@example.com", ""), nil)
	f.ratePlans.EXPECT().ByID(gomock.Any(), b.RatePlanID).
		Return(rateplan.Reconstruct(b.RatePlanID, "Standard", ""), nil)
}

func existingReservation(t *testing.T, roomID uuid.UUID, checkIn, checkOut string, status reservation.Status) *reservation.Reservation {
	t.Helper()
	stay, err := reservation.NewStayPeriod(date(checkIn), date(checkOut))
	require.NoError(t, err)
	return reservation.Reconstruct(
		uuid.New(), "RSV-20250210-AAAAAA",
		uuid.New(), roomID, uuid.New(),
		stay, 2, status, nil, nil,
		money.New(36000), reservation.PaymentUnpaid,
	)
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReservationCommands_Create(t *testing.T) {
	t.Run("books an available room", func(t *testing.T) {
		f := newReservationFixture(t)
		b := builder.NewReservationBuilder()
		rm := room.Reconstruct(b.Room.ID, "101", b.Room.CategoryID, room.StatusAvailable, b.Room.MaxOccupancy)

		f.rooms.EXPECT().LockByID(gomock.Any(), b.Room.ID).Return(rm, nil)
		stubReferences(f, b)
		f.ratePlans.EXPECT().RateFor(gomock.Any(), b.RatePlanID, b.Room.CategoryID).
			Return(rateplan.ReconstructRate(b.RatePlanID, b.Room.CategoryID, money.New(b.NightlyRateCents)), nil)
		f.reservations.EXPECT().FindActiveByRoom(gomock.Any(), b.Room.ID).Return(nil, nil)

		var created *reservation.Reservation
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res *reservation.Reservation) error {
				created = res
				return nil
			})
		f.rooms.EXPECT().UpdateStatus(gomock.Any(), rm).Return(nil)
		f.views.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
				return &queries.ReservationView{ID: id}, nil
			})

		view, err := f.cmds.Create(context.Background(), b.BuildParams(), testActor)
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, created.ID(), view.ID)
		assert.Equal(t, reservation.StatusConfirmed, created.Status())
		assert.Equal(t, int64(36000), created.Total().Cents())
		assert.Equal(t, room.StatusReserved, rm.Status())
	})

	t.Run("rejects an overlapping stay", func(t *testing.T) {
		f := newReservationFixture(t)
		b := builder.NewReservationBuilder()
		rm := room.Reconstruct(b.Room.ID, "101", b.Room.CategoryID, room.StatusAvailable, b.Room.MaxOccupancy)

		f.rooms.EXPECT().LockByID(gomock.Any(), b.Room.ID).Return(rm, nil)
		stubReferences(f, b)
		f.ratePlans.EXPECT().RateFor(gomock.Any(), b.RatePlanID, b.Room.CategoryID).
			Return(rateplan.ReconstructRate(b.RatePlanID, b.Room.CategoryID, money.New(b.NightlyRateCents)), nil)
		f.reservations.EXPECT().FindActiveByRoom(gomock.Any(), b.Room.ID).Return(
			[]*reservation.Reservation{
				existingReservation(t, b.Room.ID, "2025-03-12", "2025-03-15", reservation.StatusConfirmed),
			}, nil)

		_, err := f.cmds.Create(context.Background(), b.BuildParams(), testActor)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("allows a back-to-back stay", func(t *testing.T) {
		f := newReservationFixture(t)
		b := builder.NewReservationBuilder()
		rm := room.Reconstruct(b.Room.ID, "101", b.Room.CategoryID, room.StatusAvailable, b.Room.MaxOccupancy)

		f.rooms.EXPECT().LockByID(gomock.Any(), b.Room.ID).Return(rm, nil)
		stubReferences(f, b)
		f.ratePlans.EXPECT().RateFor(gomock.Any(), b.RatePlanID, b.Room.CategoryID).
			Return(rateplan.ReconstructRate(b.RatePlanID, b.Room.CategoryID, money.New(b.NightlyRateCents)), nil)
		f.reservations.EXPECT().FindActiveByRoom(gomock.Any(), b.Room.ID).Return(
			[]*reservation.Reservation{
				existingReservation(t, b.Room.ID, "2025-03-08", "2025-03-10", reservation.StatusConfirmed),
			}, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.rooms.EXPECT().UpdateStatus(gomock.Any(), rm).Return(nil)
		f.views.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&queries.ReservationView{}, nil)

		_, err := f.cmds.Create(context.Background(), b.BuildParams(), testActor)
		assert.NoError(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newReservationFixture(t)
		b := builder.NewReservationBuilder()

		f.rooms.EXPECT().LockByID(gomock.Any(), b.Room.ID).Return(nil, notFoundErr())

		_, err := f.cmds.Create(context.Background(), b.BuildParams(), testActor)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("no rate for plan and category", func(t *testing.T) {
		f := newReservationFixture(t)
		b := builder.NewReservationBuilder()
		rm := room.Reconstruct(b.Room.ID, "101", b.Room.CategoryID, room.StatusAvailable, b.Room.MaxOccupancy)

		f.rooms.EXPECT().LockByID(gomock.Any(), b.Room.ID).Return(rm, nil)
		stubReferences(f, b)
		f.ratePlans.EXPECT().RateFor(gomock.Any(), b.RatePlanID, b.Room.CategoryID).Return(nil, notFoundErr())

		_, err := f.cmds.Create(context.Background(), b.BuildParams(), testActor)
		assert.ErrorIs(t, err, errs.ErrRateNotFound)
	})

	t.Run("invalid stay period fails before the transaction", func(t *testing.T) {
		f := newReservationFixture(t)
		params := builder.NewReservationBuilder().BuildParams()
		params.CheckIn, params.CheckOut = params.CheckOut, params.CheckIn

		_, err := f.cmds.Create(context.Background(), params, testActor)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("guest count above capacity", func(t *testing.T) {
		f := newReservationFixture(t)
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.GuestCount = 5 })
		rm := room.Reconstruct(b.Room.ID, "101", b.Room.CategoryID, room.StatusAvailable, b.Room.MaxOccupancy)

		f.rooms.EXPECT().LockByID(gomock.Any(), b.Room.ID).Return(rm, nil)
		stubReferences(f, b)
		f.ratePlans.EXPECT().RateFor(gomock.Any(), b.RatePlanID, b.Room.CategoryID).
			Return(rateplan.ReconstructRate(b.RatePlanID, b.Room.CategoryID, money.New(b.NightlyRateCents)), nil)
		f.reservations.EXPECT().FindActiveByRoom(gomock.Any(), b.Room.ID).Return(nil, nil)

		_, err := f.cmds.Create(context.Background(), b.BuildParams(), testActor)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestReservationCommands_Transitions(t *testing.T) {
	setup := func(t *testing.T, f *reservationFixture, status reservation.Status, roomStatus room.Status) (*reservation.Reservation, *room.Room) {
		t.Helper()
		roomID := uuid.New()
		res := existingReservation(t, roomID, "2025-03-10", "2025-03-13", status)
		rm := room.Reconstruct(roomID, "101", uuid.New(), roomStatus, 2)
		f.reservations.EXPECT().LockByID(gomock.Any(), res.ID()).Return(res, nil)
		f.rooms.EXPECT().LockByID(gomock.Any(), roomID).Return(rm, nil)
		return res, rm
	}

	expectPersist := func(f *reservationFixture, res *reservation.Reservation, rm *room.Room) {
		f.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
		f.rooms.EXPECT().UpdateStatus(gomock.Any(), rm).Return(nil)
		f.views.EXPECT().GetByID(gomock.Any(), res.ID()).Return(&queries.ReservationView{ID: res.ID()}, nil)
	}

	t.Run("check-in occupies the room", func(t *testing.T) {
		f := newReservationFixture(t)
		res, rm := setup(t, f, reservation.StatusConfirmed, room.StatusReserved)
		expectPersist(f, res, rm)

		_, err := f.cmds.CheckIn(context.Background(), res.ID(), testActor)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
		assert.Equal(t, room.StatusOccupied, rm.Status())
		require.NotNil(t, res.ActualCheckIn())
		assert.Equal(t, fixedNow, *res.ActualCheckIn())
	})

	t.Run("check-in rejected from a terminal status", func(t *testing.T) {
		f := newReservationFixture(t)
		res, _ := setup(t, f, reservation.StatusCancelled, room.StatusAvailable)

		_, err := f.cmds.CheckIn(context.Background(), res.ID(), testActor)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("check-out sends the room to cleaning", func(t *testing.T) {
		f := newReservationFixture(t)
		res, rm := setup(t, f, reservation.StatusCheckedIn, room.StatusOccupied)
		expectPersist(f, res, rm)

		_, err := f.cmds.CheckOut(context.Background(), res.ID(), testActor)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
		assert.Equal(t, room.StatusCleaning, rm.Status())
	})

	t.Run("check-out rejected before check-in", func(t *testing.T) {
		f := newReservationFixture(t)
		res, _ := setup(t, f, reservation.StatusConfirmed, room.StatusReserved)

		_, err := f.cmds.CheckOut(context.Background(), res.ID(), testActor)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cancel frees a reserved room", func(t *testing.T) {
		f := newReservationFixture(t)
		res, rm := setup(t, f, reservation.StatusConfirmed, room.StatusReserved)
		expectPersist(f, res, rm)

		_, err := f.cmds.Cancel(context.Background(), res.ID(), testActor)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, room.StatusAvailable, rm.Status())
	})

	t.Run("cancel rejected after check-out", func(t *testing.T) {
		f := newReservationFixture(t)
		res, _ := setup(t, f, reservation.StatusCheckedOut, room.StatusCleaning)

		_, err := f.cmds.Cancel(context.Background(), res.ID(), testActor)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		id := uuid.New()
		f.reservations.EXPECT().LockByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := f.cmds.CheckIn(context.Background(), id, testActor)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
