package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotelcore/internal/domain/staff"
	"hotelcore/internal/usecase"
	"hotelcore/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const ctxActorKey = "actor"

var roleHierarchy = map[staff.Role]int{
	staff.RoleReception: 1,
	staff.RoleManager:   2,
	staff.RoleAdmin:     3,
}

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			// Unexpected: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}

		if !hasMinimumRole(actor.Role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func hasMinimumRole(actorRole, minRole staff.Role) bool {
	actorLevel, actorExists := roleHierarchy[actorRole]
	minLevel, minExists := roleHierarchy[minRole]
	return actorExists && minExists && actorLevel >= minLevel
}
