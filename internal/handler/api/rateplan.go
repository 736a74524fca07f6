package api

import (
	"context"
	"net/http"

	reqdto "hotelcore/internal/handler/dto/request"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RatePlanHandler struct {
	cmds commands.RatePlanCommands
	q    queries.RatePlanQueries
}

func NewRatePlanHandler(cmds commands.RatePlanCommands, q queries.RatePlanQueries) *RatePlanHandler {
	return &RatePlanHandler{cmds: cmds, q: q}
}

// @Summary Create rate plan
// @Tags rate-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRatePlanRequest true "Rate plan request"
// @Success 201 {object} resdto.RatePlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rate-plans [post]
func (h *RatePlanHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.Name, req.Description, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRatePlanView(view))
}

// @Summary Get rate plan
// @Tags rate-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rate plan ID"
// @Success 200 {object} resdto.RatePlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rate-plans/{id} [get]
func (h *RatePlanHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid rate plan ID format")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatePlanView(view))
}

// @Summary List rate plans
// @Tags rate-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RatePlanResponse
// @Router /rate-plans [get]
func (h *RatePlanHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatePlanViews(views))
}

// @Summary Add rate
// @Description Price a room category under this plan
// @Tags rate-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rate plan ID"
// @Param request body reqdto.UpsertRateRequest true "Category and price"
// @Success 200 {object} resdto.RatePlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rate-plans/{id}/rates [post]
func (h *RatePlanHandler) AddRate(c *gin.Context) {
	h.upsertRate(c, h.cmds.AddRate)
}

// @Summary Update rate
// @Tags rate-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rate plan ID"
// @Param request body reqdto.UpsertRateRequest true "Category and new price"
// @Success 200 {object} resdto.RatePlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rate-plans/{id}/rates [put]
func (h *RatePlanHandler) UpdateRate(c *gin.Context) {
	h.upsertRate(c, h.cmds.UpdateRate)
}

func (h *RatePlanHandler) upsertRate(
	c *gin.Context,
	apply func(ctx context.Context, ratePlanID, categoryID uuid.UUID, priceCents int64, actor shared.Actor) (*queries.RatePlanView, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid rate plan ID format")
		return
	}

	var req reqdto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := apply(c.Request.Context(), planID, req.CategoryID, req.PriceCents, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatePlanView(view))
}

// @Summary Remove rate
// @Tags rate-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rate plan ID"
// @Param categoryId path string true "Room category ID"
// @Success 200 {object} resdto.RatePlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rate-plans/{id}/rates/{categoryId} [delete]
func (h *RatePlanHandler) RemoveRate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid rate plan ID format")
		return
	}
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid category ID format")
		return
	}

	view, err := h.cmds.RemoveRate(c.Request.Context(), planID, categoryID, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatePlanView(view))
}

// @Summary Delete rate plan
// @Description Delete a plan no reservation references
// @Tags rate-plans
// @Security BearerAuth
// @Param id path string true "Rate plan ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rate-plans/{id} [delete]
func (h *RatePlanHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid rate plan ID format")
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), planID, actor); err != nil {
		httperr.Domain(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
