package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/repositories"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/utils"
)

const (
	// defaultPeakDays applies when ?limit= is absent.
	defaultPeakDays = 10
	// weeklySalesWeeks is the trailing window of the weekly report.
	weeklySalesWeeks = 8
)

// ReportController serves the manager reporting endpoints.
type ReportController struct {
	db *gorm.DB

	// now is swappable so tests can pin "today".
	now func() time.Time
}

// NewReportController creates a report controller bound to a database
// handle.
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{db: db, now: time.Now}
}

// CustomReportRequest represents the request body for a free-form report
type CustomReportRequest struct {
	Query string `json:"query" binding:"required"`
}

// GetXReport handles GET /api/reports/x-report - today's per-hour counts
// and sales
func (rc *ReportController) GetXReport(c *gin.Context) {
	date := rc.now().Format(utils.DateLayout)
	report, err := repositories.XReportFor(rc.db, date)
	if err != nil {
		log.Printf("Unable to build X report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load X report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetZReport handles GET /api/reports/z-report?date= (default today)
func (rc *ReportController) GetZReport(c *gin.Context) {
	date := rc.now().Format(utils.DateLayout)
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date = parsed
	}

	report, err := repositories.ZReportFor(rc.db, date)
	if err != nil {
		log.Printf("Unable to build Z report for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load Z report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetWeeklySales handles GET /api/reports/weekly-sales - per-ISO-week
// totals for the trailing eight weeks. The window start is pulled back to
// the Monday of its week so the oldest bucket is never a partial week.
func (rc *ReportController) GetWeeklySales(c *gin.Context) {
	start := rc.now().AddDate(0, 0, -7*weeklySalesWeeks)
	start = start.AddDate(0, 0, -((int(start.Weekday()) + 6) % 7))
	days, err := repositories.DailyTotalsSince(rc.db, start.Format(utils.DateLayout))
	if err != nil {
		log.Printf("Unable to build weekly sales report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load weekly sales"})
		return
	}
	c.JSON(http.StatusOK, utils.RollupISOWeeks(days))
}

// GetHourlySales handles GET /api/reports/hourly-sales?date=
func (rc *ReportController) GetHourlySales(c *gin.Context) {
	date := rc.now().Format(utils.DateLayout)
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date = parsed
	}

	hours, err := repositories.HourlySalesFor(rc.db, date)
	if err != nil {
		log.Printf("Unable to build hourly sales for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load hourly sales"})
		return
	}
	c.JSON(http.StatusOK, hours)
}

// GetPeakSales handles GET /api/reports/peak-sales?limit= - top days by
// total sales
func (rc *ReportController) GetPeakSales(c *gin.Context) {
	limit := defaultPeakDays
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	days, err := repositories.PeakDays(rc.db, limit)
	if err != nil {
		log.Printf("Unable to build peak sales report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load peak sales"})
		return
	}
	c.JSON(http.StatusOK, days)
}

// GetProductUsage handles GET /api/reports/product-usage - the date
// range is mandatory
func (rc *ReportController) GetProductUsage(c *gin.Context) {
	startDate, endDate, err := utils.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usage, err := repositories.ProductUsageBetween(rc.db, startDate, endDate)
	if err != nil {
		log.Printf("Unable to build product usage report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load product usage"})
		return
	}
	c.JSON(http.StatusOK, usage)
}

// RunCustomReport handles POST /api/reports/custom. The query must pass
// the SELECT-only denylist gate; see repositories.ValidateCustomQuery for
// why that gate is a known-weak boundary.
func (rc *ReportController) RunCustomReport(c *gin.Context) {
	var req CustomReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	if err := repositories.ValidateCustomQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := repositories.RunCustomReport(rc.db, req.Query)
	if err != nil {
		log.Printf("Custom report failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Custom report failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
