package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

type UpdateOrderInput struct {
	Status string `json:"status" binding:"required,oneof=pending complete failed"`
}

var errEmptyCart = errors.New("cart is empty")

// generateOrderRef builds a unique, human-sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder copies the user's cart into a new order. Each order item
// snapshots the product's name and current price, then the snapshotted cart
// rows are removed. The read, the order write, and the cart cleanup all run
// in one transaction: a partial failure leaves both the cart and the order
// untouched, and a cart item added mid-checkout stays in the cart instead of
// being dropped.
func PlaceOrder(db *gorm.DB, userID string) (*models.Order, error) {
	order := models.Order{
		Reference: generateOrderRef(),
		UserID:    userID,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return errEmptyCart
		}

		itemIDs := make([]uint, 0, len(cart.Items))
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    item.Quantity,
			})
			itemIDs = append(itemIDs, item.ID)
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Only the rows that went into the order leave the cart.
		return tx.Where("id IN ?", itemIDs).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := PlaceOrder(db, c.GetString("user_id"))
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				httputil.Error(c, http.StatusBadRequest, "No cart exists for this user")
			case errors.Is(err, errEmptyCart):
				httputil.Error(c, http.StatusBadRequest, "Cart is empty")
			default:
				httputil.Error(c, http.StatusInternalServerError, "Failed to place order")
			}
			return
		}

		broadcastOrderUpdate(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders — staff see every order, others only their own.
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Preload("Items.Product").Order("created_at DESC")
		if !c.GetBool("is_staff") {
			query = query.Where("user_id = ?", c.GetString("user_id"))
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id — staff or owner.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Preload("Items.Product").Where("id = ?", c.Param("id"))
		if !c.GetBool("is_staff") {
			query = query.Where("user_id = ?", c.GetString("user_id"))
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			httputil.NotFound(c, "Order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /orders/:id (admin) — status is the only mutable field.
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
			httputil.NotFound(c, "Order")
			return
		}

		var input UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		order.Status = models.OrderStatus(input.Status)
		if err := db.Save(&order).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to update order")
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:id (admin) — ownership grants no delete rights; the
// route-level admin gate rejects everyone else before reaching here.
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			httputil.NotFound(c, "Order")
			return
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		}); err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to delete order")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
