package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"store_system/internal/api"
	"store_system/internal/config"
	"store_system/internal/domain"
	"store_system/internal/middleware"
	"store_system/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.CartItem{}, &domain.Order{}, &domain.OrderItem{})
	require.NoError(t, err)
	return db
}

// newTestRouter wires the full route surface against the given database.
// Redis is nil in tests: caching degrades to a no-op.
func newTestRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/signup", api.SignupHandler(db))
	r.POST("/login", api.LoginHandler(db, testJWTSecret))

	r.GET("/", api.HomeHandler(db, nil, cfg.FeaturedLimit))
	r.GET("/products", api.ListProductsHandler(db))
	r.GET("/product/:id", api.GetProductHandler(db))

	userGroup := r.Group("")
	userGroup.Use(middleware.JWTAuthMiddleware(testJWTSecret, nil))
	userGroup.GET("/logout", api.LogoutHandler(nil))
	userGroup.POST("/add-to-cart", api.AddToCartHandler(db))
	userGroup.GET("/cart", api.ViewCartHandler(db))
	userGroup.POST("/update-cart", api.UpdateCartHandler(db))
	userGroup.GET("/remove-from-cart/:id", api.RemoveFromCartHandler(db))
	userGroup.GET("/checkout", api.CheckoutPreviewHandler(db))
	userGroup.POST("/checkout", api.CheckoutHandler(db, nil))
	userGroup.GET("/order-confirmation/:id", api.OrderConfirmationHandler(db))
	userGroup.GET("/my-orders", api.MyOrdersHandler(db))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(testJWTSecret, nil), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/dashboard", api.DashboardHandler(db, nil))
	adminGroup.GET("/products", api.AdminListProductsHandler(db))
	adminGroup.POST("/product/add", api.AddProductHandler(db, nil))
	adminGroup.GET("/product/edit/:id", api.GetProductForEditHandler(db))
	adminGroup.POST("/product/edit/:id", api.EditProductHandler(db, nil))
	adminGroup.GET("/product/delete/:id", api.DeleteProductHandler(db, nil))
	adminGroup.POST("/product/upload-image", api.UploadProductImageHandler(cfg))
	adminGroup.GET("/orders", api.AdminListOrdersHandler(db))
	adminGroup.GET("/order/:id", api.AdminGetOrderHandler(db))
	adminGroup.POST("/order/update-status", api.UpdateOrderStatusHandler(db, nil))

	return r
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecret:       testJWTSecret,
		UploadDir:       t.TempDir(),
		MaxUploadMB:     16,
		AllowedImageExt: []string{"png", "jpg", "jpeg", "gif"},
		FeaturedLimit:   4,
	}
}

// createUser inserts a user with a bcrypt-hashed password and returns it.
func createUser(t *testing.T, db *gorm.DB, name, email, password, role string) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := domain.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// tokenFor issues a JWT for the given user.
func tokenFor(t *testing.T, user domain.User) string {
	t.Helper()
	token, err := utils.GenerateJWT(user.ID, testJWTSecret)
	require.NoError(t, err)
	return token
}

// createProduct inserts a product and returns it.
func createProduct(t *testing.T, db *gorm.DB, name, category string, price float64) domain.Product {
	t.Helper()
	product := domain.Product{Name: name, Category: category, Price: price, Stock: 100}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// doRequest performs an HTTP request against the router with an optional
// JSON body and bearer token, returning the recorder.
func doRequest(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
