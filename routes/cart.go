package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/config"
	cartControllers "github.com/amirasheikh-dev/storefront-api/controllers/cart"
	"github.com/amirasheikh-dev/storefront-api/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires a valid session
// token.
func SetupCartRoutes(r *gin.Engine, cart cartControllers.Store, sessions middleware.SessionGetter, cfg *config.Config) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireSession(sessions, cfg.JWTSecret))
	{
		cartGroup.GET("", cartControllers.GetCart(cart))
		cartGroup.GET("/summary", cartControllers.GetCartSummary(cart))
		cartGroup.POST("/items", cartControllers.AddCartItem(cart))
		cartGroup.PUT("/items/:id", cartControllers.UpdateCartItem(cart))
		cartGroup.DELETE("/items/:id", cartControllers.RemoveCartItem(cart))
		cartGroup.DELETE("", cartControllers.ClearCart(cart))
	}
}
