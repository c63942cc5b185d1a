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

type AddCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// itemFromPath resolves :itemId scoped to the given cart, so an item id
// belonging to another cart is simply not found.
func itemFromPath(c *gin.Context, db *gorm.DB, cartID uint) (*models.CartItem, bool) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid item ID")
		return nil, false
	}

	var item models.CartItem
	if err := db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
		httputil.NotFound(c, "Cart item")
		return nil, false
	}
	return &item, true
}

// POST /carts/:id/items (owner only)
//
// Adding a product that is already in the cart increments its quantity
// instead of creating a duplicate row.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := cartFromPath(c, db)
		if !ok {
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"product_id": "product does not exist"}})
			} else {
				httputil.Error(c, http.StatusInternalServerError, "Failed to validate product")
			}
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				httputil.Error(c, http.StatusInternalServerError, "Failed to add item to cart")
				return
			}
			c.JSON(http.StatusCreated, item)
		case err == nil:
			item.Quantity += input.Quantity
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				httputil.Error(c, http.StatusInternalServerError, "Failed to update cart item")
				return
			}
			c.JSON(http.StatusOK, item)
		default:
			httputil.Error(c, http.StatusInternalServerError, "Failed to fetch cart item")
		}
	}
}

// PATCH /carts/:id/items/:itemId (owner only) — quantity is the only
// mutable field.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := cartFromPath(c, db)
		if !ok {
			return
		}
		item, ok := itemFromPath(c, db, cart.ID)
		if !ok {
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(item).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to update cart item")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /carts/:id/items/:itemId (owner only)
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := cartFromPath(c, db)
		if !ok {
			return
		}
		item, ok := itemFromPath(c, db, cart.ID)
		if !ok {
			return
		}

		if err := db.Delete(item).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to delete cart item")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
