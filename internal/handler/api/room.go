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

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Create room category
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomCategoryRequest true "Category request"
// @Success 201 {object} resdto.RoomCategoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /room-categories [post]
func (h *RoomHandler) CreateCategory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateRoomCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.CreateCategory(c.Request.Context(), req.ToParams(), actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomCategoryView(view))
}

// @Summary List room categories
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomCategoryResponse
// @Router /room-categories [get]
func (h *RoomHandler) ListCategories(c *gin.Context) {
	views, err := h.q.ListCategories(c.Request.Context())
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomCategoryViews(views))
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.CreateRoom(c.Request.Context(), req.ToParams(), actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid room ID format")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param status query string false "Room status filter"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		views, err := h.q.ListByStatus(c.Request.Context(), status)
		if err != nil {
			httperr.Domain(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromRoomViews(views))
		return
	}

	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Finish cleaning
// @Description Return a cleaning room to available
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id}/finish-cleaning [post]
func (h *RoomHandler) FinishCleaning(c *gin.Context) {
	h.setStatus(c, h.cmds.FinishCleaning)
}

// @Summary Start maintenance
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id}/start-maintenance [post]
func (h *RoomHandler) StartMaintenance(c *gin.Context) {
	h.setStatus(c, h.cmds.StartMaintenance)
}

// @Summary Finish maintenance
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id}/finish-maintenance [post]
func (h *RoomHandler) FinishMaintenance(c *gin.Context) {
	h.setStatus(c, h.cmds.FinishMaintenance)
}

func (h *RoomHandler) setStatus(
	c *gin.Context,
	apply func(ctx context.Context, roomID uuid.UUID, actor shared.Actor) (*queries.RoomView, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid room ID format")
		return
	}

	view, err := apply(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
