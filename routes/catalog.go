package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/arifhossain-dev/storefront-api/controllers/product"
	"github.com/arifhossain-dev/storefront-api/middleware"
)

// SetupCatalogRoutes registers product, category, review, and image
// endpoints. Reads are public; catalog writes are admin-only; review writes
// require authentication (ownership enforced in the handlers).
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Public reads ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/products/:id/reviews", productcontroller.GetReviews(db))
	r.GET("/products/:id/reviews/:reviewId", productcontroller.GetReviewByID(db))
	r.GET("/products/:id/images", productcontroller.GetProductImages(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:id", productcontroller.GetCategoryByID(db))

	// ──────────────── Review writes (authenticated) ────────────────
	reviews := r.Group("/products/:id/reviews")
	reviews.Use(middleware.ValidateToken)
	{
		reviews.POST("", productcontroller.CreateReview(db))
		reviews.PATCH("/:reviewId", productcontroller.UpdateReview(db))
		reviews.DELETE("/:reviewId", productcontroller.DeleteReview(db))
	}

	// ──────────────── Catalog writes (admin) ────────────────
	adminCatalog := r.Group("/")
	adminCatalog.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminCatalog.POST("/products", productcontroller.CreateProduct(db))
		adminCatalog.PUT("/products/:id", productcontroller.UpdateProduct(db))
		adminCatalog.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		adminCatalog.POST("/products/:id/images", productcontroller.CreateProductImage(db))
		adminCatalog.DELETE("/products/:id/images/:imageId", productcontroller.DeleteProductImage(db))
		adminCatalog.POST("/categories", productcontroller.CreateCategory(db))
		adminCatalog.PUT("/categories/:id", productcontroller.UpdateCategory(db))
		adminCatalog.DELETE("/categories/:id", productcontroller.DeleteCategory(db))
	}
}
