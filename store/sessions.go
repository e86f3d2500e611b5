package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirasheikh-dev/storefront-api/models"
)

// Sessions persists the opaque tokens that scope carts to shoppers.
type Sessions struct {
	db *gorm.DB
}

func NewSessions(db *gorm.DB) *Sessions {
	return &Sessions{db: db}
}

// Create issues a new durable session valid for ttl.
func (s *Sessions) Create(ttl time.Duration) (*models.Session, error) {
	session := models.Session{
		ID:        "sess_" + uuid.NewString(),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, translate("sessions.create", err)
	}
	return &session, nil
}

// Get returns the session, or ErrNotFound when it is unknown or expired.
func (s *Sessions) Get(id string) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, translate("sessions.get", err)
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrNotFound
	}
	return &session, nil
}
