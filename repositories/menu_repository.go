package repositories

import (
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"gorm.io/gorm"
)

// ListMenuItems returns the whole menu ordered by name.
func ListMenuItems(db *gorm.DB) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := db.Raw(`
		SELECT item_id, name, price, is_topping, category
		FROM item
		ORDER BY name
	`).Scan(&items).Error
	return items, err
}

// GetMenuItem fetches one menu item by id.
func GetMenuItem(db *gorm.DB, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	tx := db.Raw(`
		SELECT item_id, name, price, is_topping, category
		FROM item
		WHERE item_id = ?
	`, id).Scan(&item)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &item, nil
}

// CreateMenuItem inserts a new menu item and backfills its id.
func CreateMenuItem(db *gorm.DB, item *models.MenuItem) error {
	return db.Create(item).Error
}

// UpdateMenuItem applies a partial update. The patch's non-nil fields map
// to a fixed set of columns; values are always bound parameters.
func UpdateMenuItem(db *gorm.DB, id uint, patch models.MenuItemPatch) (*models.MenuItem, error) {
	assignments := map[string]interface{}{}
	if patch.Name != nil {
		assignments["name"] = *patch.Name
	}
	if patch.Price != nil {
		assignments["price"] = *patch.Price
	}
	if patch.IsTopping != nil {
		assignments["is_topping"] = *patch.IsTopping
	}
	if patch.Category != nil {
		assignments["category"] = *patch.Category
	}

	tx := db.Model(&models.MenuItem{}).Where("item_id = ?", id).Updates(assignments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetMenuItem(db, id)
}

// DeleteMenuItem removes a menu item; a missing id is a not-found
// outcome, not an error.
func DeleteMenuItem(db *gorm.DB, id uint) error {
	tx := db.Exec(`DELETE FROM item WHERE item_id = ?`, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
