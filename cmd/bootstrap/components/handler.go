package components

import (
	"hotelcore/internal/handler"
	"hotelcore/internal/handler/api"
	"hotelcore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewInvoiceHandler,
		api.NewRatePlanHandler,
		api.NewRoomHandler,
		api.NewGuestHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	invoice *api.InvoiceHandler,
	ratePlan *api.RatePlanHandler,
	room *api.RoomHandler,
	guest *api.GuestHandler,
	audit *api.AuditHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Invoice:     invoice,
		RatePlan:    ratePlan,
		Room:        room,
		Guest:       guest,
		Audit:       audit,
	}
}
