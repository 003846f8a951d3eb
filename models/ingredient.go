package models

// Ingredient is a stocked ingredient. Stock is a plain counter, not a
// ledger: restock adds to it, the absolute update replaces it.
type Ingredient struct {
	IngredientID uint   `gorm:"column:ingredient_id;primaryKey" json:"ingredient_id"`
	Name         string `gorm:"column:name;not null" json:"name"`
	Stock        int    `gorm:"column:stock;not null;default:0" json:"stock"`
}

// TableName specifies the table name for the Ingredient model
func (Ingredient) TableName() string {
	return "ingredients"
}

// IngredientPatch is a typed partial update for an ingredient.
type IngredientPatch struct {
	Name  *string `json:"name"`
	Stock *int    `json:"stock"`
}

// Empty reports whether the patch carries no fields at all.
func (p IngredientPatch) Empty() bool {
	return p.Name == nil && p.Stock == nil
}

// RestockEntry is one line of a batched restock request. Entries with a
// non-positive quantity are skipped silently.
type RestockEntry struct {
	IngredientID uint `json:"ingredient_id"`
	Quantity     int  `json:"quantity"`
}
