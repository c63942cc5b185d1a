package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/auth"
	"github.com/arifhossain-dev/storefront-api/middleware"
)

// SetupAuthRoutes registers credential issuance endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
	}

	protected := r.Group("/auth")
	protected.Use(middleware.ValidateToken)
	{
		protected.POST("/refresh", auth.Refresh(db))
		protected.GET("/me", auth.Me(db))
	}
}
