package components

import (
	infraaudit "hotelcore/internal/infra/audit"
	"hotelcore/internal/infra/readstore"
	"hotelcore/internal/infra/uow"
	"hotelcore/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	// NewPostgresUoW and NewRecorder already return the shared port types.
	fx.Provide(
		uow.NewPostgresUoW,
		infraaudit.NewRecorder,
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationQueries)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceQueries)),
		),
		fx.Annotate(
			readstore.NewRatePlanReadStore,
			fx.As(new(queries.RatePlanQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomQueries)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffQueries)),
		),
		fx.Annotate(
			readstore.NewAuditReadStore,
			fx.As(new(queries.AuditQueries)),
		),
	),
)
