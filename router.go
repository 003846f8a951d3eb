package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/config"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/controllers"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/middleware"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/services"
)

// setupRouter wires every route. The config and database handle are
// built once in main and passed by reference; nothing here touches
// package globals.
func setupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 86400 * 7})
	router.Use(sessions.Sessions("pos_session", store))

	menu := controllers.NewMenuController(db)
	inventory := controllers.NewInventoryController(db)
	employees := controllers.NewEmployeeController(db)
	orders := controllers.NewOrderController(db, cfg)
	reports := controllers.NewReportController(db)
	auth := controllers.NewAuthController(cfg, services.NewGoogleService(cfg))
	weather := controllers.NewWeatherController(services.NewWeatherService(cfg))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

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
	}

	staff := router.Group("/api/employees")
	if cfg.ManagerRoutesProtected {
		staff.Use(middleware.RequireManager())
	}
	{
		staff.GET("", employees.ListEmployees)
		staff.GET("/:id", employees.GetEmployee)
		staff.POST("", employees.CreateEmployee)
		staff.PUT("/:id", employees.UpdateEmployee)
		staff.DELETE("/:id", employees.DeleteEmployee)
		staff.GET("/:id/performance", employees.GetEmployeePerformance)
	}

	reporting := router.Group("/api/reports")
	if cfg.ManagerRoutesProtected {
		reporting.Use(middleware.RequireManager())
	}
	{
		reporting.GET("/x-report", reports.GetXReport)
		reporting.GET("/z-report", reports.GetZReport)
		reporting.GET("/weekly-sales", reports.GetWeeklySales)
		reporting.GET("/hourly-sales", reports.GetHourlySales)
		reporting.GET("/peak-sales", reports.GetPeakSales)
		reporting.GET("/product-usage", reports.GetProductUsage)
		reporting.POST("/custom", reports.RunCustomReport)
	}

	authRoutes := router.Group("/auth")
	{
		authRoutes.GET("/google", auth.Login)
		authRoutes.GET("/google/callback", auth.Callback)
	}

	return router
}
