package api

import (
	"net/http"

	reqdto "hotelcore/internal/handler/dto/request"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/handler/middleware"
	"hotelcore/internal/usecase"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	cmds commands.InvoiceCommands
	q    queries.InvoiceQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q}
}

// @Summary Generate invoice
// @Description Generate the room charge invoice for a checked-out reservation
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateInvoiceRequest true "Invoice request"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /invoices [post]
func (h *InvoiceHandler) Generate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid reservation ID format")
		return
	}

	view, err := h.cmds.Generate(c.Request.Context(), reservationID, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoiceView(view))
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid invoice ID format")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Get invoice for reservation
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/invoice [get]
func (h *InvoiceHandler) GetByReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid reservation ID format")
		return
	}

	view, err := h.q.GetByReservation(c.Request.Context(), reservationID)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Add invoice line
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.AddInvoiceLineRequest true "Line to add"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /invoices/{id}/lines [post]
func (h *InvoiceHandler) AddLine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid invoice ID format")
		return
	}

	var req reqdto.AddInvoiceLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.AddLine(c.Request.Context(), id, req.ToParams(), actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Remove invoice line
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param lineId path string true "Line ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /invoices/{id}/lines/{lineId} [delete]
func (h *InvoiceHandler) RemoveLine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid invoice ID format")
		return
	}
	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid line ID format")
		return
	}

	view, err := h.cmds.RemoveLine(c.Request.Context(), id, lineID, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Mark invoice paid
// @Description Settle an invoice and record the payment on its reservation
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.MarkInvoicePaidRequest true "Payment method"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /invoices/{id}/payment [post]
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid invoice ID format")
		return
	}

	var req reqdto.MarkInvoicePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.MarkPaid(c.Request.Context(), id, req.PaymentMethod, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// requireActor aborts with 401 when no authenticated staff member is on the
// context; handlers behind RequireAuth should never hit that path.
func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrStaffNotFound, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}
