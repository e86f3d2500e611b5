package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/models"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DiscountPrice *float64 `json:"discount_price"`
	ImageURL      string   `json:"image_url"`
	Category      string   `json:"category"`
	Stock         int      `json:"stock" binding:"min=0"`
}

// POST /admin/products
func CreateProduct(catalog Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.DiscountPrice != nil && *input.DiscountPrice >= input.Price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount_price must be lower than price"})
			return
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			DiscountPrice: input.DiscountPrice,
			ImageURL:      input.ImageURL,
			Category:      input.Category,
			Stock:         input.Stock,
		}
		if err := catalog.CreateProduct(&product); err != nil {
			respondStoreError(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
