package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
)

func seedIngredient(t *testing.T, db *gorm.DB, name string, stock int) models.Ingredient {
	t.Helper()
	ingredient := models.Ingredient{Name: name, Stock: stock}
	require.NoError(t, db.Create(&ingredient).Error)
	return ingredient
}

func TestListInventoryOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	seedIngredient(t, db, "tomato sauce", 40)
	seedIngredient(t, db, "cheese", 25)

	w := performRequest(t, router, "GET", "/api/inventory", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var ingredients []models.Ingredient
	decodeJSON(t, w, &ingredients)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "cheese", ingredients[0].Name)
	assert.Equal(t, "tomato sauce", ingredients[1].Name)
}

func TestListLowStock(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	seedIngredient(t, db, "cheese", 3)
	seedIngredient(t, db, "pepperoni", 9)
	seedIngredient(t, db, "flour", 25)

	// Default threshold is 10, exclusive; ordered lowest stock first.
	w := performRequest(t, router, "GET", "/api/inventory/low-stock", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var low []models.Ingredient
	decodeJSON(t, w, &low)
	require.Len(t, low, 2)
	assert.Equal(t, "cheese", low[0].Name)
	assert.Equal(t, "pepperoni", low[1].Name)

	w = performRequest(t, router, "GET", "/api/inventory/low-stock?threshold=5", nil)
	decodeJSON(t, w, &low)
	require.Len(t, low, 1)
	assert.Equal(t, "cheese", low[0].Name)

	w = performRequest(t, router, "GET", "/api/inventory/low-stock?threshold=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIngredient(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	w := performRequest(t, router, "POST", "/api/inventory", map[string]interface{}{"name": "basil", "stock": 12})
	assert.Equal(t, http.StatusCreated, w.Code)

	var ingredient models.Ingredient
	decodeJSON(t, w, &ingredient)
	assert.NotZero(t, ingredient.IngredientID)
	assert.Equal(t, "basil", ingredient.Name)
	assert.Equal(t, 12, ingredient.Stock)

	w = performRequest(t, router, "POST", "/api/inventory", map[string]interface{}{"stock": 12})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateIngredientIsAbsolute(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	seedIngredient(t, db, "cheese", 25)

	// Stock in the update body replaces the counter outright.
	w := performRequest(t, router, "PUT", "/api/inventory/1", map[string]interface{}{"stock": 7})
	assert.Equal(t, http.StatusOK, w.Code)

	var ingredient models.Ingredient
	decodeJSON(t, w, &ingredient)
	assert.Equal(t, "cheese", ingredient.Name)
	assert.Equal(t, 7, ingredient.Stock)

	w = performRequest(t, router, "PUT", "/api/inventory/999", map[string]interface{}{"stock": 7})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestockBatch(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	cheese := seedIngredient(t, db, "cheese", 5)
	flour := seedIngredient(t, db, "flour", 10)
	sauce := seedIngredient(t, db, "tomato sauce", 20)

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"ingredient_id": cheese.IngredientID, "quantity": 15},
			{"ingredient_id": flour.IngredientID, "quantity": 0},
			{"ingredient_id": sauce.IngredientID, "quantity": -3},
			{"ingredient_id": 999, "quantity": 10},
		},
	}
	w := performRequest(t, router, "POST", "/api/inventory/restock", body)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Restocked []uint `json:"restocked"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, []uint{cheese.IngredientID}, resp.Restocked)

	var stocks []models.Ingredient
	require.NoError(t, db.Raw(`SELECT ingredient_id, name, stock FROM ingredients ORDER BY ingredient_id`).Scan(&stocks).Error)
	require.Len(t, stocks, 3)
	assert.Equal(t, 20, stocks[0].Stock, "positive quantity is added")
	assert.Equal(t, 10, stocks[1].Stock, "zero quantity is skipped")
	assert.Equal(t, 20, stocks[2].Stock, "negative quantity is skipped")
}

func TestRestockRequiresItems(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	w := performRequest(t, router, "POST", "/api/inventory/restock", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteIngredient(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	seedIngredient(t, db, "cheese", 5)

	w := performRequest(t, router, "DELETE", "/api/inventory/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, "DELETE", "/api/inventory/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
