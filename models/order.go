package models

// Order is one completed sale from the order history. Date and Time are
// carried as their SQL text forms ("2006-01-02", "15:04:05") so row
// mapping stays order-independent and dialect-portable.
type Order struct {
	OrderID    uint    `gorm:"column:order_id;primaryKey" json:"order_id"`
	EmployeeID int     `gorm:"column:employee_id;not null;default:0" json:"employee_id"`
	Price      float64 `gorm:"column:price;not null" json:"price"`
	Date       string  `gorm:"column:date;type:date;not null" json:"date"`
	Time       string  `gorm:"column:time;type:time;not null" json:"time"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "order_history"
}

// OrderLine joins an order to a menu item with a quantity.
type OrderLine struct {
	OrderID  uint `gorm:"column:order_id;primaryKey" json:"order_id"`
	ItemID   uint `gorm:"column:item_id;primaryKey" json:"item_id"`
	Quantity int  `gorm:"column:quantity;not null;default:1" json:"quantity"`
}

// TableName specifies the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_junction"
}

// OrderItemRow is one line of an order's contents joined to the menu.
type OrderItemRow struct {
	ItemID   uint    `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartItem is one line of a submitted kiosk order.
type CartItem struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"qty" binding:"required,gt=0"`
}

// OrderReceipt is returned after a successful order submission. Key names
// follow the kiosk client contract.
type OrderReceipt struct {
	OrderID  uint    `json:"orderId"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// StockCheck is the result of a pre-order stock check. Ingredient, Needed
// and Available are only present when OK is false.
type StockCheck struct {
	OK         bool   `json:"ok"`
	Ingredient string `json:"ingredient,omitempty"`
	Needed     int    `json:"needed,omitempty"`
	Available  int    `json:"available,omitempty"`
}
