package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"hotelcore/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy for the booking API. Every route
// under /api carries a bearer token, so Authorization stays allowed no
// matter what the environment configures.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.ContainsFunc(allowHeaders, func(h string) bool {
		return strings.EqualFold(h, "Authorization")
	}) {
		allowHeaders = append(allowHeaders, "Authorization")
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS policy initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
