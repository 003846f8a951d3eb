package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
)

func TestListMenuOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	for _, name := range []string{"Soda", "Breadsticks", "Pepperoni Pizza"} {
		require.NoError(t, db.Create(&models.MenuItem{Name: name, Price: 4.99}).Error)
	}

	w := performRequest(t, router, "GET", "/api/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	decodeJSON(t, w, &items)
	require.Len(t, items, 3)
	assert.Equal(t, "Breadsticks", items[0].Name)
	assert.Equal(t, "Pepperoni Pizza", items[1].Name)
	assert.Equal(t, "Soda", items[2].Name)
}

func TestCreateMenuItem(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "valid item",
			body:           map[string]interface{}{"name": "Cheese Pizza", "price": 9.99},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "topping with category",
			body:           map[string]interface{}{"name": "Mushrooms", "price": 0.75, "is_topping": true, "category": "vegetable"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "zero price is allowed",
			body:           map[string]interface{}{"name": "Water Cup", "price": 0.01},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing price",
			body:           map[string]interface{}{"name": "Cheese Pizza"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           map[string]interface{}{"price": 9.99},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			router := newTestRouter(t, db, testConfig(), nil)

			w := performRequest(t, router, "POST", "/api/menu", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var item models.MenuItem
				decodeJSON(t, w, &item)
				assert.NotZero(t, item.ID)
				assert.Equal(t, tt.body["name"], item.Name)
			}
		})
	}
}

func TestUpdateMenuItemPartial(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	item := models.MenuItem{Name: "Cheese Pizza", Price: 9.99}
	require.NoError(t, db.Create(&item).Error)

	w := performRequest(t, router, "PUT", "/api/menu/1", map[string]interface{}{"price": 10.49})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.MenuItem
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Cheese Pizza", updated.Name, "fields absent from the patch stay untouched")
	assert.Equal(t, 10.49, updated.Price)
}

func TestUpdateMenuItemErrors(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	require.NoError(t, db.Create(&models.MenuItem{Name: "Cheese Pizza", Price: 9.99}).Error)

	tests := []struct {
		name           string
		path           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{"empty patch", "/api/menu/1", map[string]interface{}{}, http.StatusBadRequest},
		{"non-numeric id", "/api/menu/abc", map[string]interface{}{"price": 1.0}, http.StatusBadRequest},
		{"missing item", "/api/menu/999", map[string]interface{}{"price": 1.0}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(t, router, "PUT", tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDeleteMenuItem(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db, testConfig(), nil)

	require.NoError(t, db.Create(&models.MenuItem{Name: "Cheese Pizza", Price: 9.99}).Error)

	w := performRequest(t, router, "DELETE", "/api/menu/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting the same id again is a not-found outcome.
	w = performRequest(t, router, "DELETE", "/api/menu/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, router, "GET", "/api/menu", nil)
	var items []models.MenuItem
	decodeJSON(t, w, &items)
	assert.Empty(t, items)
}
