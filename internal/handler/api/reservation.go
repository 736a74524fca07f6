package api

import (
	"context"
	"net/http"
	"time"

	reqdto "hotelcore/internal/handler/dto/request"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/usecase"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a room for a guest over a half-open stay window
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), params, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid reservation ID format")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Get reservation by number
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param number path string true "Reservation number"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/number/{number} [get]
func (h *ReservationHandler) GetByNumber(c *gin.Context) {
	view, err := h.q.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// List filters by reservation status, or by room occupancy over a
// half-open [from, to) date range when room_id is present.
//
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Reservation status filter"
// @Param room_id query string false "Room ID for occupancy lookup"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end, exclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	if roomIDStr := c.Query("room_id"); roomIDStr != "" {
		h.listByRoomAndRange(c, roomIDStr)
		return
	}

	status := c.Query("status")
	if status == "" {
		httperr.BadRequest(c, usecase.ErrMissingFilter, "Either status or room_id filter is required")
		return
	}

	views, err := h.q.ListByStatus(c.Request.Context(), status)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) listByRoomAndRange(c *gin.Context, roomIDStr string) {
	roomID, err := uuid.Parse(roomIDStr)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid room ID format")
		return
	}

	from, err := time.ParseInLocation(time.DateOnly, c.Query("from"), time.UTC)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.ParseInLocation(time.DateOnly, c.Query("to"), time.UTC)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	views, err := h.q.ListByRoomAndRange(c.Request.Context(), roomID, from, to)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Check in reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.cmds.CheckIn)
}

// @Summary Check out reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.cmds.CheckOut)
}

// @Summary Cancel reservation
// @Description Cancel a reservation and release its room
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

func (h *ReservationHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id uuid.UUID, actor shared.Actor) (*queries.ReservationView, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid reservation ID format")
		return
	}

	view, err := apply(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
