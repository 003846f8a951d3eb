package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/config"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/repositories"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/utils"
)

// OrderController serves order history, trends, the kiosk stock check
// and order submission.
type OrderController struct {
	db  *gorm.DB
	cfg *config.Config

	// now is swappable so tests can pin the order timestamp.
	now func() time.Time
}

// NewOrderController creates an order controller bound to a database
// handle and the application configuration.
func NewOrderController(db *gorm.DB, cfg *config.Config) *OrderController {
	return &OrderController{db: db, cfg: cfg, now: time.Now}
}

// CheckStockRequest represents the request body for a kiosk stock check
type CheckStockRequest struct {
	ItemID uint `json:"itemId" binding:"required"`
	Qty    int  `json:"qty" binding:"required,gt=0"`
}

// SubmitOrderRequest represents the request body for a kiosk order
type SubmitOrderRequest struct {
	Items      []models.CartItem `json:"items" binding:"required,min=1,dive"`
	EmployeeID int               `json:"employee_id"`
}

// ListOrders handles GET /api/orders?start_date=&end_date= - range
// filtered, otherwise the 100 most recent orders newest first
func (oc *OrderController) ListOrders(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" || endDate != "" {
		var err error
		startDate, endDate, err = utils.ParseDateRange(startDate, endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	orders, err := repositories.ListOrders(oc.db, startDate, endDate)
	if err != nil {
		log.Printf("Unable to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderItems handles GET /api/orders/:id/items
func (oc *OrderController) GetOrderItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	items, err := repositories.OrderItems(oc.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Unable to fetch items for order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load order items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetOrderTrends handles GET /api/orders/trends - the date range is
// mandatory here
func (oc *OrderController) GetOrderTrends(c *gin.Context) {
	startDate, endDate, err := utils.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trends, err := repositories.OrderTrends(oc.db, startDate, endDate)
	if err != nil {
		log.Printf("Unable to compute order trends: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load order trends"})
		return
	}
	c.JSON(http.StatusOK, trends)
}

// CheckStock handles POST /api/check-stock
func (oc *OrderController) CheckStock(c *gin.Context) {
	var req CheckStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId and a positive qty are required"})
		return
	}

	check, err := repositories.CheckStock(oc.db, req.ItemID, req.Qty)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		log.Printf("Stock check failed for item %d: %v", req.ItemID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stock check failed"})
		return
	}
	c.JSON(http.StatusOK, check)
}

// SubmitOrder handles POST /api/order - records the sale and returns the
// receipt totals
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items with positive quantities are required"})
		return
	}

	receipt, err := repositories.SubmitOrder(oc.db, req.Items, req.EmployeeID, oc.cfg.TaxRate, oc.now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		log.Printf("Failed to submit order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit order"})
		return
	}
	c.JSON(http.StatusCreated, receipt)
}
