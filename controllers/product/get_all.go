package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

// GET /products
// Query params: search, category_id, min_price, max_price, sort_by
// (price|updated_at), order (asc|desc), page, page_size.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "updated_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))

		if sortBy != "price" && sortBy != "updated_at" {
			httputil.Error(c, http.StatusBadRequest, "sort_by must be price or updated_at")
			return
		}
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Product{}).Preload("Category").Preload("Images")

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.
				Joins("LEFT JOIN categories ON categories.id = products.category_id").
				Where(`lower(products.name) LIKE ? OR lower(products.description) LIKE ? OR lower(categories.name) LIKE ?`,
					likePattern, likePattern, likePattern)
		}

		if categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				httputil.Error(c, http.StatusBadRequest, "Invalid category_id")
				return
			}
			query = query.Where("products.category_id = ?", uint(cid))
		}

		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				httputil.Error(c, http.StatusBadRequest, "Invalid min_price")
				return
			}
			query = query.Where("products.price >= ?", mp)
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				httputil.Error(c, http.StatusBadRequest, "Invalid max_price")
				return
			}
			query = query.Where("products.price <= ?", mp)
		}

		var count int64
		if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to count products")
			return
		}

		var products []models.Product
		if err := query.
			Order("products." + sortBy + " " + sortOrder).
			Scopes(httputil.Paginate(c)).
			Find(&products).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		for i := range products {
			products[i].ApplyDerived()
		}
		c.JSON(http.StatusOK, httputil.Page{Count: count, Results: products})
	}
}
