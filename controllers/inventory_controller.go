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

// defaultLowStockThreshold applies when ?threshold= is absent.
const defaultLowStockThreshold = 10

// InventoryController serves the ingredient inventory endpoints.
type InventoryController struct {
	db *gorm.DB
}

// NewInventoryController creates an inventory controller bound to a
// database handle.
func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{db: db}
}

// CreateIngredientRequest represents the request body for adding an ingredient
type CreateIngredientRequest struct {
	Name  string `json:"name" binding:"required"`
	Stock int    `json:"stock"`
}

// RestockRequest represents the request body for a batched restock
type RestockRequest struct {
	Items []models.RestockEntry `json:"items" binding:"required"`
}

// ListInventory handles GET /api/inventory
func (ic *InventoryController) ListInventory(c *gin.Context) {
	ingredients, err := repositories.ListIngredients(ic.db)
	if err != nil {
		log.Printf("Unable to fetch inventory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load inventory"})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// ListLowStock handles GET /api/inventory/low-stock?threshold=
func (ic *InventoryController) ListLowStock(c *gin.Context) {
	threshold := defaultLowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be an integer"})
			return
		}
		threshold = parsed
	}

	ingredients, err := repositories.ListLowStock(ic.db, threshold)
	if err != nil {
		log.Printf("Unable to fetch low stock items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load low stock items"})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// CreateIngredient handles POST /api/inventory
func (ic *InventoryController) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	ingredient := models.Ingredient{Name: req.Name, Stock: req.Stock}
	if err := repositories.CreateIngredient(ic.db, &ingredient); err != nil {
		log.Printf("Failed to create ingredient: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add inventory item"})
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient handles PUT /api/inventory/:id - absolute update of
// the supplied fields
func (ic *InventoryController) UpdateIngredient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch models.IngredientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	ingredient, err := repositories.UpdateIngredient(ic.db, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		log.Printf("Failed to update ingredient %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// Restock handles POST /api/inventory/restock - batched increments;
// non-positive quantities are skipped silently
func (ic *InventoryController) Restock(c *gin.Context) {
	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items is required"})
		return
	}

	restocked, err := repositories.Restock(ic.db, req.Items)
	if err != nil {
		log.Printf("Failed to restock inventory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restock inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restocked": restocked})
}

// DeleteIngredient handles DELETE /api/inventory/:id
func (ic *InventoryController) DeleteIngredient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := repositories.DeleteIngredient(ic.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		log.Printf("Failed to delete ingredient %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted"})
}
