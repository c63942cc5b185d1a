package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

// DELETE /products/:id (admin)
//
// A product holding more than 10 units of stock is still sellable and must
// not disappear from the catalog; the delete is rejected with 409.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			httputil.NotFound(c, "Product")
			return
		}

		if product.Stock > 10 {
			httputil.Conflict(c, "Product with stock greater than 10 cannot be deleted")
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
