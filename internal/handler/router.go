package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelcore/internal/domain/staff"
	"hotelcore/internal/handler/api"
	"hotelcore/internal/handler/middleware"
	"hotelcore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Invoice     *api.InvoiceHandler
	RatePlan    *api.RatePlanHandler
	Room        *api.RoomHandler
	Guest       *api.GuestHandler
	Audit       *api.AuditHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodGet, Path: "/number/:number", Handler: h.Reservation.GetByNumber},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Reservation.CheckIn},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Reservation.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.Invoice.GetByReservation},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Invoice.Generate},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.Get},
				{Method: http.MethodPost, Path: "/:id/lines", Handler: h.Invoice.AddLine},
				{Method: http.MethodDelete, Path: "/:id/lines/:lineId", Handler: h.Invoice.RemoveLine},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Invoice.MarkPaid},
			})
		}

		ratePlans := apiGroup.Group("/rate-plans")
		ratePlans.Use(authMiddleware.RequireAuth())
		{
			manager := authMiddleware.RequireRoleAtLeast(staff.RoleManager)
			addRoutes(ratePlans, []route{
				{Method: http.MethodGet, Path: "", Handler: h.RatePlan.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.RatePlan.Get},
				{Method: http.MethodPost, Path: "", Handler: h.RatePlan.Create, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.RatePlan.Delete, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPost, Path: "/:id/rates", Handler: h.RatePlan.AddRate, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPut, Path: "/:id/rates", Handler: h.RatePlan.UpdateRate, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodDelete, Path: "/:id/rates/:categoryId", Handler: h.RatePlan.RemoveRate, Mw: []gin.HandlerFunc{manager}},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			manager := authMiddleware.RequireRoleAtLeast(staff.RoleManager)
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPost, Path: "/:id/finish-cleaning", Handler: h.Room.FinishCleaning},
				{Method: http.MethodPost, Path: "/:id/start-maintenance", Handler: h.Room.StartMaintenance, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPost, Path: "/:id/finish-maintenance", Handler: h.Room.FinishMaintenance, Mw: []gin.HandlerFunc{manager}},
			})
		}

		categories := apiGroup.Group("/room-categories")
		categories.Use(authMiddleware.RequireAuth())
		{
			manager := authMiddleware.RequireRoleAtLeast(staff.RoleManager)
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListCategories},
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateCategory, Mw: []gin.HandlerFunc{manager}},
			})
		}

		guests := apiGroup.Group("/guests")
		guests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(guests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Guest.Create},
			})
		}

		auditLogs := apiGroup.Group("/audit-logs")
		auditLogs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(auditLogs, []route{
				{Method: http.MethodGet, Path: "/:entityType/:entityId", Handler: h.Audit.ListByEntity},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
