package components

import (
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/usecase"
	"hotelcore/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		reservation.NewFactory,
	),
	usecaseCommandsModule,
	usecaseAuthModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewInvoiceCommands,
		commands.NewRatePlanCommands,
		commands.NewRoomCommands,
		commands.NewGuestCommands,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
