package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /products/:id
func GetProductByID(catalog Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := catalog.Product(id)
		if err != nil {
			respondStoreError(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func parseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
