package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductUpdateInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	ImageURL      *string  `json:"image_url"`
	Category      *string  `json:"category"`
	Stock         *int     `json:"stock"`
}

// PUT /admin/products/:id
// Partial update: only the fields present in the body are touched.
func UpdateProduct(catalog Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		current, err := catalog.Product(id)
		if err != nil {
			respondStoreError(c, err, "Product not found")
			return
		}

		// The discount must stay below the price once both updates are
		// merged with the existing row.
		price := current.Price
		if input.Price != nil {
			price = *input.Price
		}
		discount := current.DiscountPrice
		if input.DiscountPrice != nil {
			discount = input.DiscountPrice
		}
		if discount != nil && *discount >= price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount_price must be lower than price"})
			return
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.DiscountPrice != nil {
			updates["discount_price"] = *input.DiscountPrice
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
				return
			}
			updates["stock"] = *input.Stock
		}

		product, err := catalog.UpdateProduct(id, updates)
		if err != nil {
			respondStoreError(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
