package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/amirasheikh-dev/storefront-api/controllers/product"
)

// SetupCatalogRoutes registers the public, read-mostly storefront endpoints.
func SetupCatalogRoutes(r *gin.Engine, catalog productcontroller.Store) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(catalog))
		products.GET("/:id", productcontroller.GetProductByID(catalog))
		products.GET("/:id/reviews", productcontroller.GetProductReviews(catalog))
		products.POST("/:id/reviews", productcontroller.AddProductReview(catalog))
	}

	r.GET("/categories", productcontroller.GetCategories(catalog))
}
