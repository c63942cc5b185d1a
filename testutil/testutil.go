// Package testutil provides an in-memory database and router harness for
// handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arifhossain-dev/storefront-api/auth"
	"github.com/arifhossain-dev/storefront-api/models"
	"github.com/arifhossain-dev/storefront-api/routes"
)

// OpenDB returns an isolated in-memory SQLite database with the full schema
// migrated.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Review{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Router builds a gin engine with the full route table over db.
func Router(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db)
	return r
}

// SeedUser inserts a user and returns it.
func SeedUser(t *testing.T, db *gorm.DB, email string, staff bool) models.User {
	t.Helper()

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		IsStaff:      staff,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// AuthHeader issues a bearer token for the given user.
func AuthHeader(t *testing.T, user models.User) string {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	token, err := auth.IssueToken(user.ID, user.IsStaff)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

// Do performs a JSON request against the router and returns the recorder.
// body may be nil; header is the Authorization header value ("" for
// anonymous).
func Do(t *testing.T, r *gin.Engine, method, path string, body interface{}, header string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals the recorder body into out.
func Decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
