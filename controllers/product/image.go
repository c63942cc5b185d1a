package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

type ProductImageInput struct {
	Image string `json:"image" binding:"required"`
}

// GET /products/:id/images
func GetProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := productFromPath(c, db)
		if !ok {
			return
		}

		var images []models.ProductImage
		if err := db.Where("product_id = ?", product.ID).Find(&images).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to fetch images")
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

// POST /products/:id/images (admin)
func CreateProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := productFromPath(c, db)
		if !ok {
			return
		}

		var input ProductImageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		image := models.ProductImage{ProductID: product.ID, Image: input.Image}
		if err := db.Create(&image).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to add image")
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

// DELETE /products/:id/images/:imageId (admin)
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := productFromPath(c, db)
		if !ok {
			return
		}

		imageID, err := strconv.ParseUint(c.Param("imageId"), 10, 64)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, "Invalid image ID")
			return
		}

		result := db.Where("id = ? AND product_id = ?", imageID, product.ID).Delete(&models.ProductImage{})
		if result.Error != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to delete image")
			return
		}
		if result.RowsAffected == 0 {
			httputil.NotFound(c, "Image")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
