package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

// PUT /products/:id (admin) — full update with the same schema as create.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			httputil.NotFound(c, "Product")
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		if input.CategoryID != product.CategoryID {
			var category models.Category
			if err := db.First(&category, input.CategoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"category_id": "category does not exist"}})
				} else {
					httputil.Error(c, http.StatusInternalServerError, "Failed to validate category")
				}
				return
			}
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = *input.Price
		product.CategoryID = input.CategoryID
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		if err := db.Save(&product).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to update product")
			return
		}

		product.ApplyDerived()
		c.JSON(http.StatusOK, product)
	}
}
