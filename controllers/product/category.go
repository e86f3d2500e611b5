package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /categories
// Returns the distinct category labels present in the catalog.
func GetCategories(catalog Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.Categories()
		if err != nil {
			respondStoreError(c, err, "Categories not found")
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
