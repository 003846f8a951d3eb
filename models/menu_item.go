package models

// MenuItem represents one sellable item on the menu. Toppings are add-ons
// distinguished from entrees by the is_topping flag.
type MenuItem struct {
	ID        uint    `gorm:"column:item_id;primaryKey" json:"id"`
	Name      string  `gorm:"column:name;not null" json:"name"`
	Price     float64 `gorm:"column:price;not null" json:"price"`
	IsTopping bool    `gorm:"column:is_topping;not null;default:false" json:"is_topping"`
	Category  *string `gorm:"column:category" json:"category"`
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "item"
}

// MenuItemPatch is a typed partial update: only non-nil fields are written.
// Each field maps to exactly one column, so no SQL is ever assembled from
// request keys.
type MenuItemPatch struct {
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	IsTopping *bool    `json:"is_topping"`
	Category  *string  `json:"category"`
}

// Empty reports whether the patch carries no fields at all.
func (p MenuItemPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.IsTopping == nil && p.Category == nil
}
