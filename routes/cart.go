package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/arifhossain-dev/storefront-api/controllers/cart"
	"github.com/arifhossain-dev/storefront-api/middleware"
)

// SetupCartRoutes registers cart and cart-item endpoints. Every route
// requires authentication; ownership is enforced in the handlers.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	carts := r.Group("/carts")
	carts.Use(middleware.ValidateToken)
	{
		carts.POST("", cartControllers.CreateCart(db))
		carts.GET("/mine", cartControllers.GetMyCart(db))
		carts.DELETE("/:id", cartControllers.DeleteCart(db))

		carts.POST("/:id/items", cartControllers.AddCartItem(db))
		carts.PATCH("/:id/items/:itemId", cartControllers.UpdateCartItem(db))
		carts.DELETE("/:id/items/:itemId", cartControllers.DeleteCartItem(db))
	}
}
