package repositories

import (
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"gorm.io/gorm"
)

// ListIngredients returns all ingredients ordered by name.
func ListIngredients(db *gorm.DB) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	err := db.Raw(`
		SELECT ingredient_id, name, stock
		FROM ingredients
		ORDER BY name
	`).Scan(&ingredients).Error
	return ingredients, err
}

// ListLowStock returns ingredients below the threshold, lowest stock
// first.
func ListLowStock(db *gorm.DB, threshold int) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	err := db.Raw(`
		SELECT ingredient_id, name, stock
		FROM ingredients
		WHERE stock < ?
		ORDER BY stock ASC
	`, threshold).Scan(&ingredients).Error
	return ingredients, err
}

// GetIngredient fetches one ingredient by id.
func GetIngredient(db *gorm.DB, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	tx := db.Raw(`
		SELECT ingredient_id, name, stock
		FROM ingredients
		WHERE ingredient_id = ?
	`, id).Scan(&ingredient)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &ingredient, nil
}

// CreateIngredient inserts a new ingredient and backfills its id.
func CreateIngredient(db *gorm.DB, ingredient *models.Ingredient) error {
	return db.Create(ingredient).Error
}

// UpdateIngredient applies a partial update; the stock field is an
// absolute replacement, not an increment.
func UpdateIngredient(db *gorm.DB, id uint, patch models.IngredientPatch) (*models.Ingredient, error) {
	assignments := map[string]interface{}{}
	if patch.Name != nil {
		assignments["name"] = *patch.Name
	}
	if patch.Stock != nil {
		assignments["stock"] = *patch.Stock
	}

	tx := db.Model(&models.Ingredient{}).Where("ingredient_id = ?", id).Updates(assignments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetIngredient(db, id)
}

// Restock applies a batch of stock increments in one transaction.
// Entries with a non-positive quantity or an unknown ingredient id are
// skipped silently; the returned slice holds the ids actually updated.
func Restock(db *gorm.DB, entries []models.RestockEntry) ([]uint, error) {
	restocked := []uint{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			if entry.Quantity <= 0 {
				continue
			}
			res := tx.Exec(`
				UPDATE ingredients
				SET stock = stock + ?
				WHERE ingredient_id = ?
			`, entry.Quantity, entry.IngredientID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				restocked = append(restocked, entry.IngredientID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restocked, nil
}

// DeleteIngredient removes an ingredient; a missing id is a not-found
// outcome, not an error.
func DeleteIngredient(db *gorm.DB, id uint) error {
	tx := db.Exec(`DELETE FROM ingredients WHERE ingredient_id = ?`, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
