package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DELETE /admin/products/:id
func DeleteProduct(catalog Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := catalog.DeleteProduct(id); err != nil {
			respondStoreError(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
