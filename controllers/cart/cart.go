package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/middleware"
	"github.com/amirasheikh-dev/storefront-api/models"
	"github.com/amirasheikh-dev/storefront-api/store"
)

// Store is the cart access the handlers are built on. AddItem must be atomic:
// concurrent adds for the same (session, product) pair merge into one line.
type Store interface {
	Items(sessionID string) ([]models.CartItem, error)
	AddItem(sessionID string, productID uint, quantity int) (*models.CartItem, error)
	SetQuantity(sessionID string, itemID uint, quantity int) (item *models.CartItem, removed bool, err error)
	RemoveItem(sessionID string, itemID uint) error
	Clear(sessionID string) error
}

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionKey)
}

func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Store temporarily unavailable"})
}

// GET /cart
func GetCart(cart Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cart.Items(sessionID(c))
		if err != nil {
			respondStoreError(c, err, "Cart not found")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /cart/items
// Adds to any existing line for the same product instead of creating a second
// one. Quantity defaults to 1.
func AddCartItem(cart Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		item, err := cart.AddItem(sessionID(c), input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /cart/items/:id
// Sets an absolute quantity. Zero or less removes the line, reported as
// {"removed": true} rather than an error.
func UpdateCartItem(cart Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, removed, err := cart.SetQuantity(sessionID(c), uint(itemID), input.Quantity)
		if err != nil {
			respondStoreError(c, err, "Cart item not found")
			return
		}
		if removed {
			c.JSON(http.StatusOK, gin.H{"removed": true})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/items/:id
func RemoveCartItem(cart Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		if err := cart.RemoveItem(sessionID(c), uint(itemID)); err != nil {
			respondStoreError(c, err, "Cart item not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(cart Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cart.Clear(sessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
