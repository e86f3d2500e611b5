package models

import "time"

// CartItem is one line of a session's cart. The composite unique index on
// (session_id, product_id) backs the atomic insert-or-increment in the store
// layer: at most one row may ever exist per pair.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"uniqueIndex:idx_cart_session_product;not null" json:"session_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_session_product;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
