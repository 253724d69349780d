package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopeasy_back_end/internal/catalog"
	"shopeasy_back_end/internal/models"
)

func testRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", h.GetProducts)
	r.GET("/api/products/:id", h.GetProduct)
	r.GET("/api/categories", h.GetCategories)
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/strength", h.PasswordStrength)
	return r
}

func loadedHandler() *Handler {
	store := catalog.NewStoreFromProducts([]models.Product{
		{ID: 1, Title: "Fjallraven Backpack", Category: "men's clothing", Price: 109.95},
		{ID: 2, Title: "Mens Casual T-Shirt", Category: "men's clothing", Price: 22.30},
		{ID: 3, Title: "Gold Ring", Category: "jewelery", Price: 168.00},
	})
	return New(store, nil, nil)
}

func TestGetProducts(t *testing.T) {
	r := testRouter(loadedHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 3)
}

func TestGetProductsSearchAndCategory(t *testing.T) {
	r := testRouter(loadedHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products?search=shirt&category=men%27s+clothing", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].ID)
}

func TestGetProductNotFound(t *testing.T) {
	r := testRouter(loadedHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogDegradedMode(t *testing.T) {
	// catalogue jamais chargé : les endpoints répondent 503, pas de crash
	r := testRouter(New(catalog.NewStore(), nil, nil))

	for _, path := range []string{"/api/products", "/api/products/1", "/api/categories"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}
}

func TestGetCategories(t *testing.T) {
	r := testRouter(loadedHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"all", "men's clothing", "jewelery"}, resp.Categories)
}

func TestSignupPasswordMismatchRejectedBeforeStore(t *testing.T) {
	// Accounts est nil : si le handler touchait le store, le test paniquerait
	r := testRouter(loadedHandler())

	body := `{"name":"Alice","email":"a@b.c","phone":"0470000001","password":"Abc123$5","confirmPassword":"autre"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ne correspondent pas")
}

func TestPasswordStrengthEndpoint(t *testing.T) {
	r := testRouter(loadedHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/strength", strings.NewReader(`{"password":"Abc123$5"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"strength":"Strong"}`, w.Body.String())
}
