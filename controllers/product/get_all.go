package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/store"
)

// GET /products
// Lists the catalog, most recently created first. Supports exact category
// match, free-text search, a price range, and sort overrides.
func GetProducts(catalog Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.ProductFilter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
			SortBy:   c.DefaultQuery("sort_by", "created_at"),
			Order:    c.DefaultQuery("order", "desc"),
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = &mp
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = &mp
		}

		products, err := catalog.Products(filter)
		if err != nil {
			respondStoreError(c, err, "Products not found")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
