package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirasheikh-dev/storefront-api/models"
)

// Reviews returns a product's reviews, newest first.
func (c *Catalog) Reviews(productID uint) ([]models.Review, error) {
	reviews := []models.Review{}
	err := c.db.
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, translate("catalog.reviews", err)
	}
	return reviews, nil
}

// AddReview inserts a review and folds it into the product's rating and
// review_count in the same transaction. The product row is locked FOR UPDATE
// so concurrent reviews cannot lose an aggregate update.
func (c *Catalog) AddReview(productID uint, rating int, comment, author string) (*models.Review, error) {
	if author == "" {
		author = models.AnonymousAuthor
	}

	review := models.Review{
		ProductID: productID,
		Author:    author,
		Rating:    rating,
		Comment:   comment,
	}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, productID).Error; err != nil {
			return err
		}

		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		newCount := product.ReviewCount + 1
		newRating := (product.Rating*float64(product.ReviewCount) + float64(rating)) / float64(newCount)

		return tx.Model(&product).Updates(map[string]interface{}{
			"review_count": newCount,
			"rating":       newRating,
		}).Error
	})
	if err != nil {
		return nil, translate("catalog.add_review", err)
	}
	return &review, nil
}
