package api

import (
	"net/http"

	reqdto "hotelcore/internal/handler/dto/request"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	cmds commands.GuestCommands
}

func NewGuestHandler(cmds commands.GuestCommands) *GuestHandler {
	return &GuestHandler{cmds: cmds}
}

// @Summary Create guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGuestRequest true "Guest request"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToParams(), actor)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}
