package models

import "time"

type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"not null" json:"price"` // Required
	DiscountPrice *float64  `json:"discount_price"`        // nil when not on sale
	ImageURL      string    `json:"image_url"`
	Category      string    `gorm:"index" json:"category"`
	Stock         int       `json:"stock"`
	Rating        float64   `json:"rating"`       // derived: mean of review ratings
	ReviewCount   int       `json:"review_count"` // derived: number of reviews
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
