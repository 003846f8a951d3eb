package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/repositories"
)

// MenuController serves the menu endpoints.
type MenuController struct {
	db *gorm.DB
}

// NewMenuController creates a menu controller bound to a database handle.
func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{db: db}
}

// CreateMenuItemRequest represents the request body for creating a menu item
type CreateMenuItemRequest struct {
	Name      string   `json:"name" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	IsTopping bool     `json:"is_topping"`
	Category  *string  `json:"category"`
}

// ListMenu handles GET /api/menu - returns the menu ordered by name
func (mc *MenuController) ListMenu(c *gin.Context) {
	items, err := repositories.ListMenuItems(mc.db)
	if err != nil {
		log.Printf("Unable to fetch menu: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem handles POST /api/menu - adds a menu item
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
		return
	}

	item := models.MenuItem{
		Name:      req.Name,
		Price:     *req.Price,
		IsTopping: req.IsTopping,
		Category:  req.Category,
	}
	if err := repositories.CreateMenuItem(mc.db, &item); err != nil {
		log.Printf("Failed to create menu item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem handles PUT /api/menu/:id - partial update, only the
// supplied fields are written
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	item, err := repositories.UpdateMenuItem(mc.db, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		log.Printf("Failed to update menu item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem handles DELETE /api/menu/:id
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := repositories.DeleteMenuItem(mc.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		log.Printf("Failed to delete menu item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// parseIDParam parses the :id path segment, answering 400 itself when the
// value is not a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
