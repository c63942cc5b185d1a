package productcontroller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifhossain-dev/storefront-api/models"
	"github.com/arifhossain-dev/storefront-api/testutil"
)

func TestCategories_ProductCount(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)

	books := seedCategory(t, db, "Books")
	empty := seedCategory(t, db, "Empty")
	seedProduct(t, db, books.ID, "A", 10, 1)
	seedProduct(t, db, books.ID, "B", 12, 1)

	rec := testutil.Do(t, r, http.MethodGet, "/categories", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []models.Category
	testutil.Decode(t, rec, &categories)
	require.Len(t, categories, 2)

	counts := map[string]int64{}
	for _, cat := range categories {
		counts[cat.Name] = cat.ProductCount
	}
	assert.EqualValues(t, 2, counts["Books"])
	assert.EqualValues(t, 0, counts["Empty"])

	rec = testutil.Do(t, r, http.MethodGet, "/categories/"+itoa(empty.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var single models.Category
	testutil.Decode(t, rec, &single)
	assert.EqualValues(t, 0, single.ProductCount)
}

func TestCategoryWrites_AdminOnly(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	user := testutil.SeedUser(t, db, "user@example.com", false)
	admin := testutil.SeedUser(t, db, "admin@example.com", true)

	rec := testutil.Do(t, r, http.MethodPost, "/categories", map[string]interface{}{"name": "Books"}, testutil.AuthHeader(t, user))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = testutil.Do(t, r, http.MethodPost, "/categories", map[string]interface{}{"name": "Books"}, testutil.AuthHeader(t, admin))
	require.Equal(t, http.StatusCreated, rec.Code)

	// duplicate name hits the unique constraint
	rec = testutil.Do(t, r, http.MethodPost, "/categories", map[string]interface{}{"name": "Books"}, testutil.AuthHeader(t, admin))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateCategory_ReturnsProductCount(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	admin := testutil.SeedUser(t, db, "admin@example.com", true)

	books := seedCategory(t, db, "Books")
	seedProduct(t, db, books.ID, "A", 10, 1)
	seedProduct(t, db, books.ID, "B", 12, 1)

	rec := testutil.Do(t, r, http.MethodPut, "/categories/"+itoa(books.ID),
		map[string]interface{}{"name": "Literature"}, testutil.AuthHeader(t, admin))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Category
	testutil.Decode(t, rec, &updated)
	assert.Equal(t, "Literature", updated.Name)
	assert.EqualValues(t, 2, updated.ProductCount)
}

func TestDeleteCategory(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	admin := testutil.SeedUser(t, db, "admin@example.com", true)
	category := seedCategory(t, db, "Soon gone")

	rec := testutil.Do(t, r, http.MethodDelete, "/categories/"+itoa(category.ID), nil, testutil.AuthHeader(t, admin))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = testutil.Do(t, r, http.MethodGet, "/categories/"+itoa(category.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
