package api

import (
	"errors"
	"net/http"

	reqdto "hotelcore/internal/handler/dto/request"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/handler/middleware"
	"hotelcore/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// @Summary Staff login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Current staff member
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StaffResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrStaffNotFound, "Unauthorized", nil)
		return
	}

	view, err := h.authUseCase.Me(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStaffView(view))
}
