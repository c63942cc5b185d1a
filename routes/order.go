package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/arifhossain-dev/storefront-api/controllers/order"
	"github.com/arifhossain-dev/storefront-api/middleware"
)

// SetupOrderRoutes registers order endpoints. DELETE and PATCH are
// admin-only regardless of ownership; everything else requires
// authentication.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db))
		orders.GET("", orderControllers.GetOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderHandler(db))
	}

	adminOrders := r.Group("/orders")
	adminOrders.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminOrders.PATCH("/:id", orderControllers.UpdateOrderHandler(db))
		adminOrders.DELETE("/:id", orderControllers.DeleteOrderHandler(db))

		// websocket endpoint for real-time order updates
		adminOrders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
