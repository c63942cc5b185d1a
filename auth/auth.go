package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/httputil"
	"github.com/arifhossain-dev/storefront-api/models"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        input.Email,
			PasswordHash: string(hash),
			Name:         input.Name,
			CreatedAt:    time.Now(),
		}
		if err := db.Create(&user).Error; err != nil {
			if httputil.IsUniqueViolation(err) {
				httputil.Conflict(c, "A user with this email already exists")
				return
			}
			httputil.Error(c, http.StatusInternalServerError, "Failed to create user")
			return
		}

		token, err := IssueToken(user.ID, user.IsStaff)
		if err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Token generation failed")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httputil.ValidationError(c, err)
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			httputil.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			httputil.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := IssueToken(user.ID, user.IsStaff)
		if err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// POST /auth/refresh — exchanges a still-valid token for a fresh one.
func Refresh(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			httputil.Error(c, http.StatusUnauthorized, "Unknown user")
			return
		}

		token, err := IssueToken(user.ID, user.IsStaff)
		if err != nil {
			httputil.Error(c, http.StatusInternalServerError, "Token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// GET /auth/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.GetString("user_id")).Error; err != nil {
			httputil.NotFound(c, "User")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
