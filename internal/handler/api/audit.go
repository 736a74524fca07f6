package api

import (
	"net/http"

	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuditHandler struct {
	q queries.AuditQueries
}

func NewAuditHandler(q queries.AuditQueries) *AuditHandler {
	return &AuditHandler{q: q}
}

// @Summary List audit trail for entity
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param entityType path string true "Entity type"
// @Param entityId path string true "Entity ID"
// @Success 200 {array} resdto.AuditLogResponse
// @Failure 400 {object} httperr.Response
// @Router /audit-logs/{entityType}/{entityId} [get]
func (h *AuditHandler) ListByEntity(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("entityId"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid entity ID format")
		return
	}

	views, err := h.q.ListByEntity(c.Request.Context(), c.Param("entityType"), entityID)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuditLogViews(views))
}
