package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/auth"
	"github.com/amirasheikh-dev/storefront-api/models"
)

// SessionKey is the gin context key carrying the validated session ID.
const SessionKey = "session_id"

// SessionGetter checks that a session still exists and has not expired.
type SessionGetter interface {
	Get(id string) (*models.Session, error)
}

// RequireSession validates the X-Session-Token header against both the token
// signature and the persisted session row, then stores the session ID on the
// context for the cart handlers.
func RequireSession(sessions SessionGetter, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("X-Session-Token")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Session-Token header is missing"})
			c.Abort()
			return
		}

		sessionID, err := auth.ParseSessionToken(jwtSecret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}

		if _, err := sessions.Get(sessionID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or unknown"})
			c.Abort()
			return
		}

		c.Set(SessionKey, sessionID)
		c.Next()
	}
}
