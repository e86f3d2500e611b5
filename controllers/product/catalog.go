package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/models"
	"github.com/amirasheikh-dev/storefront-api/store"
)

// Store is the catalog access the product endpoints are built on.
type Store interface {
	Products(filter store.ProductFilter) ([]models.Product, error)
	Product(id uint) (*models.Product, error)
	Categories() ([]string, error)
	Reviews(productID uint) ([]models.Review, error)
	AddReview(productID uint, rating int, comment, author string) (*models.Review, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error)
	DeleteProduct(id uint) error
}

// respondStoreError maps the store taxonomy onto HTTP statuses. Not-found,
// conflict, and outage stay distinguishable for the client.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicting record already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store temporarily unavailable"})
	}
}
