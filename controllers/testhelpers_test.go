package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/config"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/middleware"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/services"
)

// setupTestDB opens an in-memory database with the POS schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.MenuItem{},
		&models.Ingredient{},
		&models.Employee{},
		&models.Manager{},
		&models.Order{},
		&models.OrderLine{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// testConfig returns a configuration suitable for handler tests.
func testConfig() *config.Config {
	return &config.Config{
		GoEnv:         "test",
		FrontendURL:   "http://localhost:5173",
		SessionSecret: "test-session-secret",
		ManagerEmails: []string{"manager@restaurant.com"},
		TaxRate:       0.0825,
	}
}

// newTestRouter wires the POS routes against the given database, the
// same way the production router does, minus CORS.
func newTestRouter(t *testing.T, db *gorm.DB, cfg *config.Config, google *services.GoogleService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	router.Use(sessions.Sessions("pos_session", store))

	menu := NewMenuController(db)
	inventory := NewInventoryController(db)
	employees := NewEmployeeController(db)
	orders := NewOrderController(db, cfg)
	reports := NewReportController(db)
	weather := NewWeatherController(services.NewWeatherService(cfg))
	if google == nil {
		google = services.NewGoogleService(cfg)
	}
	auth := NewAuthController(cfg, google)

	api := router.Group("/api")
	api.GET("/menu", menu.ListMenu)
	api.POST("/menu", menu.CreateMenuItem)
	api.PUT("/menu/:id", menu.UpdateMenuItem)
	api.DELETE("/menu/:id", menu.DeleteMenuItem)

	api.GET("/inventory", inventory.ListInventory)
	api.GET("/inventory/low-stock", inventory.ListLowStock)
	api.POST("/inventory", inventory.CreateIngredient)
	api.POST("/inventory/restock", inventory.Restock)
	api.PUT("/inventory/:id", inventory.UpdateIngredient)
	api.DELETE("/inventory/:id", inventory.DeleteIngredient)

	api.GET("/orders", orders.ListOrders)
	api.GET("/orders/trends", orders.GetOrderTrends)
	api.GET("/orders/:id/items", orders.GetOrderItems)
	api.POST("/check-stock", orders.CheckStock)
	api.POST("/order", orders.SubmitOrder)

	api.GET("/user", auth.Me)
	api.GET("/logout", auth.Logout)
	api.GET("/weather", weather.GetWeather)

	staff := router.Group("/api/employees")
	if cfg.ManagerRoutesProtected {
		staff.Use(middleware.RequireManager())
	}
	staff.GET("", employees.ListEmployees)
	staff.GET("/:id", employees.GetEmployee)
	staff.POST("", employees.CreateEmployee)
	staff.PUT("/:id", employees.UpdateEmployee)
	staff.DELETE("/:id", employees.DeleteEmployee)
	staff.GET("/:id/performance", employees.GetEmployeePerformance)

	reporting := router.Group("/api/reports")
	if cfg.ManagerRoutesProtected {
		reporting.Use(middleware.RequireManager())
	}
	reporting.GET("/x-report", reports.GetXReport)
	reporting.GET("/z-report", reports.GetZReport)
	reporting.GET("/weekly-sales", reports.GetWeeklySales)
	reporting.GET("/hourly-sales", reports.GetHourlySales)
	reporting.GET("/peak-sales", reports.GetPeakSales)
	reporting.GET("/product-usage", reports.GetProductUsage)
	reporting.POST("/custom", reports.RunCustomReport)

	authRoutes := router.Group("/auth")
	authRoutes.GET("/google", auth.Login)
	authRoutes.GET("/google/callback", auth.Callback)

	return router
}

// performRequest runs one request through the router, JSON-encoding the
// body when present and attaching any session cookies.
func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeJSON unmarshals a recorded response body.
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Response should be valid JSON: %v (body: %s)", err, w.Body.String())
	}
}
