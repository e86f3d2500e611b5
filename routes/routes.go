package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirasheikh-dev/storefront-api/config"
	"github.com/amirasheikh-dev/storefront-api/store"
)

// SetupRoutes is the single entry-point that wires up the catalog, session,
// cart, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	catalog := store.NewCatalog(db)
	cart := store.NewCart(db)
	sessions := store.NewSessions(db)

	// Public catalog routes (no middleware)
	SetupCatalogRoutes(r, catalog)

	// Session issuing (public)
	SetupAuthRoutes(r, sessions, cfg)

	// Cart routes (session-token-protected)
	SetupCartRoutes(r, cart, sessions, cfg)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, catalog, cfg)
}
