package store

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirasheikh-dev/storefront-api/models"
)

// Cart performs all cart_items access. Every mutation is scoped to a session
// so one shopper cannot touch another's rows.
type Cart struct {
	db *gorm.DB
}

func NewCart(db *gorm.DB) *Cart {
	return &Cart{db: db}
}

// Items returns the session's cart lines with their products joined, oldest
// line first.
func (s *Cart) Items(sessionID string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := s.db.
		Preload("Product").
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, translate("cart.items", err)
	}
	return items, nil
}

// AddItem adds quantity of a product to the session's cart. The write is a
// single INSERT ... ON CONFLICT (session_id, product_id) DO UPDATE with an
// in-database increment, so two concurrent calls for the same pair can never
// produce two rows or lose an increment.
func (s *Cart) AddItem(sessionID string, productID uint, quantity int) (*models.CartItem, error) {
	// Reject unknown products up front; the row would otherwise dangle.
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		return nil, translate("cart.add_item", err)
	}

	item := models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, translate("cart.add_item", err)
	}

	// Re-read: on the conflict path the struct above does not carry the
	// incremented quantity.
	var saved models.CartItem
	err = s.db.
		Preload("Product").
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&saved).Error
	if err != nil {
		return nil, translate("cart.add_item", err)
	}
	return &saved, nil
}

// SetQuantity sets an absolute quantity on a cart line. A quantity of zero or
// less removes the line; removed reports that outcome distinctly from any
// failure.
func (s *Cart) SetQuantity(sessionID string, itemID uint, quantity int) (item *models.CartItem, removed bool, err error) {
	if quantity <= 0 {
		result := s.db.
			Where("id = ? AND session_id = ?", itemID, sessionID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			return nil, false, translate("cart.set_quantity", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, false, ErrNotFound
		}
		return nil, true, nil
	}

	var existing models.CartItem
	err = s.db.
		Where("id = ? AND session_id = ?", itemID, sessionID).
		First(&existing).Error
	if err != nil {
		return nil, false, translate("cart.set_quantity", err)
	}

	if err := s.db.Model(&existing).Update("quantity", quantity).Error; err != nil {
		return nil, false, translate("cart.set_quantity", err)
	}

	var saved models.CartItem
	if err := s.db.Preload("Product").First(&saved, existing.ID).Error; err != nil {
		return nil, false, translate("cart.set_quantity", err)
	}
	return &saved, false, nil
}

// RemoveItem deletes one cart line, reporting ErrNotFound when the line does
// not belong to the session.
func (s *Cart) RemoveItem(sessionID string, itemID uint) error {
	result := s.db.
		Where("id = ? AND session_id = ?", itemID, sessionID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return translate("cart.remove_item", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear deletes every cart line belonging to the session.
func (s *Cart) Clear(sessionID string) error {
	err := s.db.
		Where("session_id = ?", sessionID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return translate("cart.clear", err)
	}
	return nil
}
