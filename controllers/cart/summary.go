package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/checkout"
)

// GET /cart/summary
// Returns the cart lines together with subtotal, tax, and total. Totals are
// derived from the current rows on every call, never stored.
func GetCartSummary(cart Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cart.Items(sessionID(c))
		if err != nil {
			respondStoreError(c, err, "Cart not found")
			return
		}

		summary := checkout.Summarize(items)
		c.JSON(http.StatusOK, gin.H{
			"items":    items,
			"subtotal": summary.Subtotal,
			"tax":      summary.Tax,
			"total":    summary.Total,
		})
	}
}
