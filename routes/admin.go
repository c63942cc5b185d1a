package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/arifhossain-dev/storefront-api/controllers/product"
	"github.com/arifhossain-dev/storefront-api/middleware"
)

// SetupAdminRoutes registers the "/admin/*" extras.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminGroup.GET("/products/export-excel", productcontroller.ExportProductsToExcel(db))
	}
}
