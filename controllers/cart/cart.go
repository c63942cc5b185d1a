package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

// cartFromPath resolves the :id path param to a cart owned by the caller.
// Carts belonging to other users are reported as not found, so their
// existence leaks nothing.
func cartFromPath(c *gin.Context, db *gorm.DB) (*models.Cart, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid cart ID")
		return nil, false
	}

	var cart models.Cart
	if err := db.Where("id = ? AND user_id = ?", id, c.GetString("user_id")).First(&cart).Error; err != nil {
		httputil.NotFound(c, "Cart")
		return nil, false
	}
	return &cart, true
}

// POST /carts
//
// The user_id unique index is the real guard against concurrent duplicate
// creation; the upfront lookup only gives a cleaner error message.
func CreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var existing models.Cart
		if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
			httputil.Conflict(c, "A cart already exists for this user")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			httputil.Error(c, http.StatusInternalServerError, "Failed to check existing cart")
			return
		}

		cart := models.Cart{UserID: userID, CreatedAt: time.Now()}
		if err := db.Create(&cart).Error; err != nil {
			if httputil.IsUniqueViolation(err) {
				httputil.Conflict(c, "A cart already exists for this user")
				return
			}
			httputil.Error(c, http.StatusInternalServerError, "Failed to create cart")
			return
		}

		c.JSON(http.StatusCreated, cart)
	}
}

// GET /carts/mine — the caller's cart with items and nested product data.
func GetMyCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cart models.Cart
		err := db.Preload("Items").Preload("Items.Product").
			Where("user_id = ?", c.GetString("user_id")).First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httputil.NotFound(c, "Cart")
			} else {
				httputil.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			}
			return
		}

		for i := range cart.Items {
			if cart.Items[i].Product != nil {
				cart.Items[i].Product.ApplyDerived()
			}
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /carts/:id (owner only)
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := cartFromPath(c, db)
		if !ok {
			return
		}

		// Items go with the cart.
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(cart).Error
		}); err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to delete cart")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
