package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/auth"
	"github.com/amirasheikh-dev/storefront-api/config"
)

// SetupAuthRoutes registers the public session-issuing endpoint.
func SetupAuthRoutes(r *gin.Engine, sessions auth.SessionStore, cfg *config.Config) {
	r.POST("/auth/session", auth.CreateSession(sessions, cfg.JWTSecret, cfg.SessionTTL))
}
