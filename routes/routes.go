package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (register/login) plus token-protected refresh/me
	SetupAuthRoutes(r, db)

	// Catalog: products, categories, reviews, images
	SetupCatalogRoutes(r, db)

	// Carts (JWT-protected)
	SetupCartRoutes(r, db)

	// Orders (JWT-protected, admin-only mutations)
	SetupOrderRoutes(r, db)

	// Admin extras
	SetupAdminRoutes(r, db)
}
