package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amirasheikh-dev/storefront-api/config"
	productcontroller "github.com/amirasheikh-dev/storefront-api/controllers/product"
	"github.com/amirasheikh-dev/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, catalog productcontroller.Store, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAPIKey(cfg.AdminAPIKey))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(catalog))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(catalog))
			productAdmin.GET("", productcontroller.GetProducts(catalog))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(catalog))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(catalog))
		}
	}
}
