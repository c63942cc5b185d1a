package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

// ProductInput is the write schema shared by create and full update.
// Price is a pointer so a literal 0 still satisfies "required".
type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	CategoryID  uint     `json:"category_id" binding:"required"`
}

// POST /products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"category_id": "category does not exist"}})
			} else {
				httputil.Error(c, http.StatusInternalServerError, "Failed to validate category")
			}
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			CategoryID:  input.CategoryID,
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		if err := db.Create(&product).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to create product")
			return
		}

		product.Category = &category
		product.ApplyDerived()
		c.JSON(http.StatusCreated, product)
	}
}
