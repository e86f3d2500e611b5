package models

import "time"

// Session scopes a cart to one shopper. Issued once and held by the client as
// a signed token, so the cart survives navigation and reloads.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
