package productcontroller

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

type ReviewInput struct {
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

type ReviewUpdateInput struct {
	Comment *string `json:"comment"`
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// productFromPath resolves the :id path param to a product, writing the
// error response itself on failure.
func productFromPath(c *gin.Context, db *gorm.DB) (*models.Product, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid product ID")
		return nil, false
	}
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httputil.NotFound(c, "Product")
		} else {
			httputil.Error(c, http.StatusInternalServerError, "Failed to fetch product")
		}
		return nil, false
	}
	return &product, true
}

// reviewFromPath resolves :reviewId scoped to the given product.
func reviewFromPath(c *gin.Context, db *gorm.DB, productID uint) (*models.Review, bool) {
	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid review ID")
		return nil, false
	}
	var review models.Review
	if err := db.Where("id = ? AND product_id = ?", reviewID, productID).First(&review).Error; err != nil {
		httputil.NotFound(c, "Review")
		return nil, false
	}
	return &review, true
}

// GET /products/:id/reviews
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := productFromPath(c, db)
		if !ok {
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").Where("product_id = ?", product.ID).
			Order("created_at DESC").Find(&reviews).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to fetch reviews")
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// GET /products/:id/reviews/:reviewId
func GetReviewByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := productFromPath(c, db)
		if !ok {
			return
		}
		review, ok := reviewFromPath(c, db, product.ID)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// POST /products/:id/reviews (authenticated; author is the caller)
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := productFromPath(c, db)
		if !ok {
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		review := models.Review{
			ProductID: product.ID,
			UserID:    c.GetString("user_id"),
			Comment:   input.Comment,
			Rating:    input.Rating,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&review).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to create review")
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// PATCH /products/:id/reviews/:reviewId (author only)
// Only comment and rating are mutable; user and product are fixed at
// creation.
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := productFromPath(c, db)
		if !ok {
			return
		}
		review, ok := reviewFromPath(c, db, product.ID)
		if !ok {
			return
		}
		if review.UserID != c.GetString("user_id") {
			httputil.Forbidden(c, "Only the review author can modify it")
			return
		}

		var input ReviewUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		if input.Comment != nil {
			review.Comment = *input.Comment
		}
		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if err := db.Save(review).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to update review")
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /products/:id/reviews/:reviewId (author only)
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := productFromPath(c, db)
		if !ok {
			return
		}
		review, ok := reviewFromPath(c, db, product.ID)
		if !ok {
			return
		}
		if review.UserID != c.GetString("user_id") {
			httputil.Forbidden(c, "Only the review author can delete it")
			return
		}

		if err := db.Delete(review).Error; err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to delete review")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
