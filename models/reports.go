package models

// TrendSummary is the headline pair of the order-trends report.
type TrendSummary struct {
	TotalOrders int64   `json:"total_orders"`
	TotalSales  float64 `json:"total_sales"`
}

// DailySales is one day's sales total.
type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

// ItemQuantity ranks a menu item by total quantity sold.
type ItemQuantity struct {
	ItemID        uint   `json:"item_id"`
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// EmployeeSales is one employee's order count and sales total within a
// trends range, ranked descending by sales.
type EmployeeSales struct {
	EmployeeID int     `json:"employee_id"`
	Name       string  `json:"name"`
	OrderCount int64   `json:"order_count"`
	TotalSales float64 `json:"total_sales"`
}

// HourlyOrders is the order count for one hour of the day.
type HourlyOrders struct {
	Hour       int   `json:"hour"`
	OrderCount int64 `json:"order_count"`
}

// OrderTrends bundles the five aggregates computed over a date range.
type OrderTrends struct {
	Summary             TrendSummary    `json:"summary"`
	DailySales          []DailySales    `json:"daily_sales"`
	TopItems            []ItemQuantity  `json:"top_items"`
	EmployeePerformance []EmployeeSales `json:"employee_performance"`
	HourlyOrders        []HourlyOrders  `json:"hourly_orders"`
}

// XReportRow is one hour of the X report.
type XReportRow struct {
	Hour       int     `json:"hour"`
	OrderCount int64   `json:"order_count"`
	TotalSales float64 `json:"total_sales"`
}

// XReport is the running end-of-day report for the current date.
type XReport struct {
	Date  string       `json:"date"`
	Hours []XReportRow `json:"hours"`
}

// ZReport is the end-of-day summary for one date.
type ZReport struct {
	Date          string         `json:"date"`
	TotalOrders   int64          `json:"total_orders"`
	TotalSales    float64        `json:"total_sales"`
	AvgOrderValue float64        `json:"avg_order_value"`
	MinOrder      float64        `json:"min_order"`
	MaxOrder      float64        `json:"max_order"`
	TopItems      []ItemQuantity `json:"top_items"`
}

// WeeklySales is one ISO week's sales total, labelled "2006-W01".
type WeeklySales struct {
	Week       string  `json:"week"`
	TotalSales float64 `json:"total_sales"`
}

// HourlySales is one hour's count, sales and average for a given date.
type HourlySales struct {
	Hour          int     `json:"hour"`
	OrderCount    int64   `json:"order_count"`
	TotalSales    float64 `json:"total_sales"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// PeakDay is one of the top-N days ranked by total sales.
type PeakDay struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int64   `json:"order_count"`
}

// ProductUsage aggregates how often an item was ordered over a date range.
type ProductUsage struct {
	ItemID       uint    `json:"item_id"`
	Name         string  `json:"name"`
	TimesOrdered int64   `json:"times_ordered"`
	OrderCount   int64   `json:"order_count"`
	Revenue      float64 `json:"revenue"`
}
