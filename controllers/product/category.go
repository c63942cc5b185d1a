package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// attachProductCounts fills the derived ProductCount on each category with a
// single grouped query. Soft-deleted products are excluded.
func attachProductCounts(db *gorm.DB, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	type row struct {
		CategoryID uint
		N          int64
	}
	var rows []row
	if err := db.Model(&models.Product{}).
		Select("category_id, COUNT(*) AS n").
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.N
	}
	for i := range categories {
		categories[i].ProductCount = counts[categories[i].ID]
	}
	return nil
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}
		if err := attachProductCounts(db, categories); err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to count products")
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /categories/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			httputil.NotFound(c, "Category")
			return
		}
		var n int64
		if err := db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&n).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to count products")
			return
		}
		category.ProductCount = n
		c.JSON(http.StatusOK, category)
	}
}

// POST /categories (admin)
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		category := models.Category{Name: input.Name, Description: input.Description}
		if err := db.Create(&category).Error; err != nil {
			if httputil.IsUniqueViolation(err) {
				httputil.Conflict(c, "A category with this name already exists")
				return
			}
			httputil.Error(c, http.StatusInternalServerError, "Failed to create category")
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// PUT /categories/:id (admin)
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			httputil.NotFound(c, "Category")
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		category.Name = input.Name
		category.Description = input.Description
		if err := db.Save(&category).Error; err != nil {
			if httputil.IsUniqueViolation(err) {
				httputil.Conflict(c, "A category with this name already exists")
				return
			}
			httputil.Error(c, http.StatusInternalServerError, "Failed to update category")
			return
		}

		var n int64
		if err := db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&n).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to count products")
			return
		}
		category.ProductCount = n
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /categories/:id (admin)
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httputil.NotFound(c, "Category")
			} else {
				httputil.Error(c, http.StatusInternalServerError, "Failed to fetch category")
			}
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to delete category")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
