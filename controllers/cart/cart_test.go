package cartControllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arifhossain-dev/storefront-api/models"
	"github.com/arifhossain-dev/storefront-api/testutil"
)

func seedCatalog(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	category := models.Category{Name: "Books"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{Name: "Novel", Price: 12.50, Stock: 20, CategoryID: category.ID}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}

func TestCreateCart_OnePerUser(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	user := testutil.SeedUser(t, db, "user@example.com", false)
	header := testutil.AuthHeader(t, user)

	rec := testutil.Do(t, r, http.MethodPost, "/carts", nil, header)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = testutil.Do(t, r, http.MethodPost, "/carts", nil, header)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddCartItem_IncrementsExisting(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	user := testutil.SeedUser(t, db, "user@example.com", false)
	header := testutil.AuthHeader(t, user)
	product := seedCatalog(t, db)

	rec := testutil.Do(t, r, http.MethodPost, "/carts", nil, header)
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart models.Cart
	testutil.Decode(t, rec, &cart)

	itemsPath := "/carts/" + itoa(cart.ID) + "/items"

	rec = testutil.Do(t, r, http.MethodPost, itemsPath, map[string]interface{}{"product_id": product.ID, "quantity": 2}, header)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = testutil.Do(t, r, http.MethodPost, itemsPath, map[string]interface{}{"product_id": product.ID, "quantity": 3}, header)
	require.Equal(t, http.StatusOK, rec.Code)

	var item models.CartItem
	testutil.Decode(t, rec, &item)
	assert.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddCartItem_Validation(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	user := testutil.SeedUser(t, db, "user@example.com", false)
	header := testutil.AuthHeader(t, user)
	product := seedCatalog(t, db)

	rec := testutil.Do(t, r, http.MethodPost, "/carts", nil, header)
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart models.Cart
	testutil.Decode(t, rec, &cart)

	itemsPath := "/carts/" + itoa(cart.ID) + "/items"

	// quantity below 1
	rec = testutil.Do(t, r, http.MethodPost, itemsPath, map[string]interface{}{"product_id": product.ID, "quantity": 0}, header)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown product
	rec = testutil.Do(t, r, http.MethodPost, itemsPath, map[string]interface{}{"product_id": 9999, "quantity": 1}, header)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartItems_ScopedToOwnCart(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	owner := testutil.SeedUser(t, db, "owner@example.com", false)
	intruder := testutil.SeedUser(t, db, "intruder@example.com", false)
	product := seedCatalog(t, db)

	rec := testutil.Do(t, r, http.MethodPost, "/carts", nil, testutil.AuthHeader(t, owner))
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart models.Cart
	testutil.Decode(t, rec, &cart)

	// a different user cannot write into this cart
	rec = testutil.Do(t, r, http.MethodPost, "/carts/"+itoa(cart.ID)+"/items",
		map[string]interface{}{"product_id": product.ID, "quantity": 1}, testutil.AuthHeader(t, intruder))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// nor delete it
	rec = testutil.Do(t, r, http.MethodDelete, "/carts/"+itoa(cart.ID), nil, testutil.AuthHeader(t, intruder))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMyCart_IncludesProducts(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	user := testutil.SeedUser(t, db, "user@example.com", false)
	header := testutil.AuthHeader(t, user)
	product := seedCatalog(t, db)

	rec := testutil.Do(t, r, http.MethodPost, "/carts", nil, header)
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart models.Cart
	testutil.Decode(t, rec, &cart)

	rec = testutil.Do(t, r, http.MethodPost, "/carts/"+itoa(cart.ID)+"/items",
		map[string]interface{}{"product_id": product.ID, "quantity": 2}, header)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = testutil.Do(t, r, http.MethodGet, "/carts/mine", nil, header)
	require.Equal(t, http.StatusOK, rec.Code)

	testutil.Decode(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	require.NotNil(t, cart.Items[0].Product)
	assert.Equal(t, "Novel", cart.Items[0].Product.Name)
}

func TestUpdateAndDeleteCartItem(t *testing.T) {
	db := testutil.OpenDB(t)
	r := testutil.Router(db)
	user := testutil.SeedUser(t, db, "user@example.com", false)
	header := testutil.AuthHeader(t, user)
	product := seedCatalog(t, db)

	rec := testutil.Do(t, r, http.MethodPost, "/carts", nil, header)
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart models.Cart
	testutil.Decode(t, rec, &cart)

	rec = testutil.Do(t, r, http.MethodPost, "/carts/"+itoa(cart.ID)+"/items",
		map[string]interface{}{"product_id": product.ID, "quantity": 1}, header)
	require.Equal(t, http.StatusCreated, rec.Code)
	var item models.CartItem
	testutil.Decode(t, rec, &item)

	itemPath := "/carts/" + itoa(cart.ID) + "/items/" + itoa(item.ID)

	rec = testutil.Do(t, r, http.MethodPatch, itemPath, map[string]interface{}{"quantity": 7}, header)
	require.Equal(t, http.StatusOK, rec.Code)
	testutil.Decode(t, rec, &item)
	assert.Equal(t, 7, item.Quantity)

	rec = testutil.Do(t, r, http.MethodDelete, itemPath, nil, header)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
