package repositories

import (
	"math"
	"time"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"gorm.io/gorm"
)

// recentOrderLimit caps the unfiltered order-history listing.
const recentOrderLimit = 100

// hourExpr extracts the hour from the time column in the SQL subset
// shared by postgres and sqlite.
const hourExpr = "CAST(substr(CAST(time AS TEXT), 1, 2) AS INTEGER)"

// ListOrders returns order history. With both bounds set the range is
// inclusive; otherwise the listing is capped at the most recent orders,
// newest first.
func ListOrders(db *gorm.DB, startDate, endDate string) ([]models.Order, error) {
	orders := []models.Order{}
	var err error
	if startDate != "" && endDate != "" {
		err = db.Raw(`
			SELECT order_id, employee_id, price, CAST(date AS TEXT) AS date, CAST(time AS TEXT) AS time
			FROM order_history
			WHERE date BETWEEN ? AND ?
			ORDER BY date DESC, time DESC
		`, startDate, endDate).Scan(&orders).Error
	} else {
		err = db.Raw(`
			SELECT order_id, employee_id, price, CAST(date AS TEXT) AS date, CAST(time AS TEXT) AS time
			FROM order_history
			ORDER BY date DESC, time DESC
			LIMIT ?
		`, recentOrderLimit).Scan(&orders).Error
	}
	return orders, err
}

// OrderItems joins an order's lines to the menu. A missing order id is a
// not-found outcome.
func OrderItems(db *gorm.DB, orderID uint) ([]models.OrderItemRow, error) {
	var exists int64
	if err := db.Raw(`SELECT COUNT(*) FROM order_history WHERE order_id = ?`, orderID).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	items := []models.OrderItemRow{}
	err := db.Raw(`
		SELECT i.item_id, i.name, i.price, oj.quantity
		FROM order_junction oj
		JOIN item i ON i.item_id = oj.item_id
		WHERE oj.order_id = ?
		ORDER BY i.name
	`, orderID).Scan(&items).Error
	return items, err
}

// OrderTrends computes the five trend aggregates over an inclusive date
// range: overall totals, per-day sales, top-10 items by quantity,
// per-employee totals ranked descending, and per-hour order counts.
func OrderTrends(db *gorm.DB, startDate, endDate string) (*models.OrderTrends, error) {
	trends := models.OrderTrends{
		DailySales:          []models.DailySales{},
		TopItems:            []models.ItemQuantity{},
		EmployeePerformance: []models.EmployeeSales{},
		HourlyOrders:        []models.HourlyOrders{},
	}

	if err := db.Raw(`
		SELECT COUNT(*) AS total_orders, COALESCE(SUM(price), 0) AS total_sales
		FROM order_history
		WHERE date BETWEEN ? AND ?
	`, startDate, endDate).Scan(&trends.Summary).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`
		SELECT CAST(date AS TEXT) AS date, COALESCE(SUM(price), 0) AS total_sales
		FROM order_history
		WHERE date BETWEEN ? AND ?
		GROUP BY date
		ORDER BY date
	`, startDate, endDate).Scan(&trends.DailySales).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`
		SELECT i.item_id, i.name, SUM(oj.quantity) AS total_quantity
		FROM order_junction oj
		JOIN order_history o ON o.order_id = oj.order_id
		JOIN item i ON i.item_id = oj.item_id
		WHERE o.date BETWEEN ? AND ?
		GROUP BY i.item_id, i.name
		ORDER BY total_quantity DESC
		LIMIT 10
	`, startDate, endDate).Scan(&trends.TopItems).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`
		SELECT o.employee_id, COALESCE(e.name, 'Unknown') AS name,
		       COUNT(*) AS order_count, COALESCE(SUM(o.price), 0) AS total_sales
		FROM order_history o
		LEFT JOIN employee e ON e.employee_id = o.employee_id
		WHERE o.date BETWEEN ? AND ?
		GROUP BY o.employee_id, e.name
		ORDER BY total_sales DESC
	`, startDate, endDate).Scan(&trends.EmployeePerformance).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`
		SELECT `+hourExpr+` AS hour, COUNT(*) AS order_count
		FROM order_history
		WHERE date BETWEEN ? AND ?
		GROUP BY hour
		ORDER BY hour
	`, startDate, endDate).Scan(&trends.HourlyOrders).Error; err != nil {
		return nil, err
	}

	return &trends, nil
}

// CheckStock verifies that the ingredient backing a menu item can cover
// the requested quantity. Ingredients link to items by case-insensitive
// name; items without a matching ingredient always pass.
func CheckStock(db *gorm.DB, itemID uint, qty int) (*models.StockCheck, error) {
	item, err := GetMenuItem(db, itemID)
	if err != nil {
		return nil, err
	}

	var ingredient models.Ingredient
	tx := db.Raw(`
		SELECT ingredient_id, name, stock
		FROM ingredients
		WHERE LOWER(name) = LOWER(?)
	`, item.Name).Scan(&ingredient)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 || ingredient.Stock >= qty {
		return &models.StockCheck{OK: true}, nil
	}
	return &models.StockCheck{
		OK:         false,
		Ingredient: ingredient.Name,
		Needed:     qty,
		Available:  ingredient.Stock,
	}, nil
}

// SubmitOrder records a sale: the order row, its junction lines, and the
// stock decrement for every name-matched ingredient, all in one
// transaction. Totals come from current menu prices.
func SubmitOrder(db *gorm.DB, cart []models.CartItem, employeeID int, taxRate float64, now time.Time) (*models.OrderReceipt, error) {
	var receipt models.OrderReceipt
	err := db.Transaction(func(tx *gorm.DB) error {
		subtotal := 0.0
		names := make(map[uint]string, len(cart))
		for _, line := range cart {
			item, err := GetMenuItem(tx, line.ID)
			if err != nil {
				return err
			}
			subtotal += item.Price * float64(line.Quantity)
			names[line.ID] = item.Name
		}

		order := models.Order{
			EmployeeID: employeeID,
			Date:       now.Format("2006-01-02"),
			Time:       now.Format("15:04:05"),
		}
		subtotal = round2(subtotal)
		tax := round2(subtotal * taxRate)
		order.Price = round2(subtotal + tax)
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range cart {
			if err := tx.Create(&models.OrderLine{
				OrderID:  order.OrderID,
				ItemID:   line.ID,
				Quantity: line.Quantity,
			}).Error; err != nil {
				return err
			}
			// Ingredients never go negative; an unmatched or short
			// ingredient leaves stock untouched.
			if err := tx.Exec(`
				UPDATE ingredients
				SET stock = stock - ?
				WHERE LOWER(name) = LOWER(?) AND stock >= ?
			`, line.Quantity, names[line.ID], line.Quantity).Error; err != nil {
				return err
			}
		}

		receipt = models.OrderReceipt{
			OrderID:  order.OrderID,
			Subtotal: subtotal,
			Tax:      tax,
			Total:    order.Price,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
