package api_test

import (
	"net/http"
	"testing"

	"store_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeFeaturedLimit(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))

	// Six flower products, only four should be featured.
	for _, name := range []string{"Rose", "Tulip", "Lily", "Orchid", "Daisy", "Jasmine"} {
		createProduct(t, db, name, domain.CategoryFlowers, 5.0)
	}
	createProduct(t, db, "Honey", domain.CategoryFood, 8.0)

	w := doRequest(r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	featured, ok := body["featured"].(map[string]any)
	require.True(t, ok)

	flowers, ok := featured[domain.CategoryFlowers].([]any)
	require.True(t, ok)
	assert.Len(t, flowers, 4)

	food, ok := featured[domain.CategoryFood].([]any)
	require.True(t, ok)
	assert.Len(t, food, 1)
}

func TestListProductsCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))
	createProduct(t, db, "Honey", domain.CategoryFood, 8.0)
	createProduct(t, db, "Rose Bouquet", domain.CategoryFlowers, 25.0)

	w := doRequest(r, http.MethodGet, "/products?category=food", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeBody(t, w)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Honey", products[0].(map[string]any)["Name"])
}

func TestProductSearchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))
	createProduct(t, db, "Red ROSE Bouquet", domain.CategoryFlowers, 25.0)
	createProduct(t, db, "Rosewater Syrup", domain.CategoryFood, 6.0)
	createProduct(t, db, "Tulip Bunch", domain.CategoryFlowers, 18.0)

	w := doRequest(r, http.MethodGet, "/products?search=rose", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeBody(t, w)["products"].([]any)
	// Exactly the products whose name contains "rose", any casing, any category.
	require.Len(t, products, 2)
	names := []string{
		products[0].(map[string]any)["Name"].(string),
		products[1].(map[string]any)["Name"].(string),
	}
	assert.ElementsMatch(t, []string{"Red ROSE Bouquet", "Rosewater Syrup"}, names)
}

func TestGetProductNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))

	w := doRequest(r, http.MethodGet, "/product/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	product := createProduct(t, db, "Honey", domain.CategoryFood, 8.0)
	w = doRequest(r, http.MethodGet, "/product/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, product.ID, 1)
}
