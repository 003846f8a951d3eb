package repositories

import (
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"gorm.io/gorm"
)

// XReportFor builds the running end-of-day report: per-hour order counts
// and sales for one date.
func XReportFor(db *gorm.DB, date string) (*models.XReport, error) {
	report := models.XReport{Date: date, Hours: []models.XReportRow{}}
	err := db.Raw(`
		SELECT `+hourExpr+` AS hour, COUNT(*) AS order_count, COALESCE(SUM(price), 0) AS total_sales
		FROM order_history
		WHERE date = ?
		GROUP BY hour
		ORDER BY hour
	`, date).Scan(&report.Hours).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ZReportFor builds the end-of-day summary for one date: order count,
// total/average/min/max order value and the five best-selling items.
func ZReportFor(db *gorm.DB, date string) (*models.ZReport, error) {
	report := models.ZReport{Date: date, TopItems: []models.ItemQuantity{}}
	if err := db.Raw(`
		SELECT COUNT(*) AS total_orders,
		       COALESCE(SUM(price), 0) AS total_sales,
		       COALESCE(AVG(price), 0) AS avg_order_value,
		       COALESCE(MIN(price), 0) AS min_order,
		       COALESCE(MAX(price), 0) AS max_order
		FROM order_history
		WHERE date = ?
	`, date).Scan(&report).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`
		SELECT i.item_id, i.name, SUM(oj.quantity) AS total_quantity
		FROM order_junction oj
		JOIN order_history o ON o.order_id = oj.order_id
		JOIN item i ON i.item_id = oj.item_id
		WHERE o.date = ?
		GROUP BY i.item_id, i.name
		ORDER BY total_quantity DESC
		LIMIT 5
	`, date).Scan(&report.TopItems).Error; err != nil {
		return nil, err
	}

	report.Date = date
	return &report, nil
}

// DailyTotalsSince returns per-day sales totals from startDate onward,
// oldest first. The weekly-sales report rolls these up into ISO weeks in
// Go so the SQL stays dialect-portable.
func DailyTotalsSince(db *gorm.DB, startDate string) ([]models.DailySales, error) {
	days := []models.DailySales{}
	err := db.Raw(`
		SELECT CAST(date AS TEXT) AS date, COALESCE(SUM(price), 0) AS total_sales
		FROM order_history
		WHERE date >= ?
		GROUP BY date
		ORDER BY date
	`, startDate).Scan(&days).Error
	return days, err
}

// HourlySalesFor returns per-hour order count, sales and average order
// value for one date.
func HourlySalesFor(db *gorm.DB, date string) ([]models.HourlySales, error) {
	hours := []models.HourlySales{}
	err := db.Raw(`
		SELECT `+hourExpr+` AS hour,
		       COUNT(*) AS order_count,
		       COALESCE(SUM(price), 0) AS total_sales,
		       COALESCE(AVG(price), 0) AS avg_order_value
		FROM order_history
		WHERE date = ?
		GROUP BY hour
		ORDER BY hour
	`, date).Scan(&hours).Error
	return hours, err
}

// PeakDays ranks the top days by total sales.
func PeakDays(db *gorm.DB, limit int) ([]models.PeakDay, error) {
	days := []models.PeakDay{}
	err := db.Raw(`
		SELECT CAST(date AS TEXT) AS date,
		       COALESCE(SUM(price), 0) AS total_sales,
		       COUNT(*) AS order_count
		FROM order_history
		GROUP BY date
		ORDER BY total_sales DESC
		LIMIT ?
	`, limit).Scan(&days).Error
	return days, err
}

// ProductUsageBetween aggregates, per menu item over an inclusive date
// range, the total quantity ordered, the number of distinct orders it
// appeared in, and the revenue at current menu prices.
func ProductUsageBetween(db *gorm.DB, startDate, endDate string) ([]models.ProductUsage, error) {
	usage := []models.ProductUsage{}
	err := db.Raw(`
		SELECT i.item_id, i.name,
		       SUM(oj.quantity) AS times_ordered,
		       COUNT(DISTINCT oj.order_id) AS order_count,
		       COALESCE(SUM(oj.quantity * i.price), 0) AS revenue
		FROM order_junction oj
		JOIN order_history o ON o.order_id = oj.order_id
		JOIN item i ON i.item_id = oj.item_id
		WHERE o.date BETWEEN ? AND ?
		GROUP BY i.item_id, i.name
		ORDER BY times_ordered DESC
	`, startDate, endDate).Scan(&usage).Error
	return usage, err
}
