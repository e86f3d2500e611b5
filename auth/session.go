package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/amirasheikh-dev/storefront-api/models"
)

// SessionStore is the persistence the session endpoint needs.
type SessionStore interface {
	Create(ttl time.Duration) (*models.Session, error)
}

// POST /auth/session
// Issues a durable shopping session and a signed token the client holds on to.
// The same token keeps working across page loads, so the cart survives
// navigation.
func CreateSession(sessions SessionStore, jwtSecret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessions.Create(ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		token, err := SignSessionToken(jwtSecret, session.ID, session.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": session.ID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

// SignSessionToken wraps a session ID in an HS256 JWT expiring with the
// session itself.
func SignSessionToken(secret, sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates the token signature and expiry and returns the
// embedded session ID.
func ParseSessionToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return "", errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", errors.New("token carries no session")
	}
	return sessionID, nil
}
