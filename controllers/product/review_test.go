package productcontroller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifhossain-dev/storefront-api/models"
	"github.com/arifhossain-dev/storefront-api/testutil"
)

func TestReviews_OwnershipRules(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)

	author := testutil.SeedUser(t, db, "author@example.com", false)
	other := testutil.SeedUser(t, db, "other@example.com", false)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, category.ID, "Novel", 10, 1)

	base := "/products/" + itoa(product.ID) + "/reviews"

	// anonymous create is rejected
	rec := testutil.Do(t, r, http.MethodPost, base, map[string]interface{}{"comment": "nice", "rating": 5}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// author creates
	rec = testutil.Do(t, r, http.MethodPost, base, map[string]interface{}{"comment": "nice", "rating": 5}, testutil.AuthHeader(t, author))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var review models.Review
	testutil.Decode(t, rec, &review)
	assert.Equal(t, author.ID, review.UserID)

	reviewPath := base + "/" + itoa(review.ID)

	// anyone can read
	rec = testutil.Do(t, r, http.MethodGet, reviewPath, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// non-owner cannot modify or delete
	rec = testutil.Do(t, r, http.MethodPatch, reviewPath, map[string]interface{}{"rating": 1}, testutil.AuthHeader(t, other))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = testutil.Do(t, r, http.MethodDelete, reviewPath, nil, testutil.AuthHeader(t, other))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// the author can
	rec = testutil.Do(t, r, http.MethodPatch, reviewPath, map[string]interface{}{"rating": 4}, testutil.AuthHeader(t, author))
	require.Equal(t, http.StatusOK, rec.Code)
	testutil.Decode(t, rec, &review)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, author.ID, review.UserID) // author never changes

	rec = testutil.Do(t, r, http.MethodDelete, reviewPath, nil, testutil.AuthHeader(t, author))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateReview_RatingRange(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)

	author := testutil.SeedUser(t, db, "author@example.com", false)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, category.ID, "Novel", 10, 1)

	rec := testutil.Do(t, r, http.MethodPost, "/products/"+itoa(product.ID)+"/reviews",
		map[string]interface{}{"comment": "meh", "rating": 6}, testutil.AuthHeader(t, author))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	testutil.Decode(t, rec, &resp)
	assert.Contains(t, resp.Errors, "rating")
}

func TestReviews_UnknownProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)

	rec := testutil.Do(t, r, http.MethodGet, "/products/999/reviews", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
