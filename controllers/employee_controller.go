package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/repositories"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/utils"
)

// EmployeeController serves the staff endpoints. Listings merge the
// employee table with the legacy manager table; every write targets the
// employee table only.
type EmployeeController struct {
	db *gorm.DB
}

// NewEmployeeController creates an employee controller bound to a
// database handle.
func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{db: db}
}

// CreateEmployeeRequest represents the request body for adding an employee
type CreateEmployeeRequest struct {
	Name      string   `json:"name" binding:"required"`
	Salary    *float64 `json:"salary"`
	ManagerID int      `json:"manager_id"`
}

// ListEmployees handles GET /api/employees - the merged staff list
func (ec *EmployeeController) ListEmployees(c *gin.Context) {
	staff, err := repositories.ListStaff(ec.db)
	if err != nil {
		log.Printf("Unable to fetch employees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load employees"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetEmployee handles GET /api/employees/:id
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	member, err := repositories.GetStaffMember(ec.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		log.Printf("Unable to fetch employee %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load employee"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateEmployee handles POST /api/employees
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	employee := models.Employee{
		Name:      req.Name,
		Salary:    req.Salary,
		ManagerID: req.ManagerID,
	}
	if err := repositories.CreateEmployee(ec.db, &employee); err != nil {
		log.Printf("Failed to create employee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add employee"})
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /api/employees/:id - partial update
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch models.EmployeePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	member, err := repositories.UpdateEmployee(ec.db, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		log.Printf("Failed to update employee %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteEmployee handles DELETE /api/employees/:id
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := repositories.DeleteEmployee(ec.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		log.Printf("Failed to delete employee %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// GetEmployeePerformance handles GET /api/employees/:id/performance with
// an optional start_date/end_date range
func (ec *EmployeeController) GetEmployeePerformance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" || endDate != "" {
		var err error
		startDate, endDate, err = utils.ParseDateRange(startDate, endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	perf, err := repositories.EmployeePerformance(ec.db, id, startDate, endDate)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		log.Printf("Unable to fetch performance for employee %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load employee performance"})
		return
	}
	c.JSON(http.StatusOK, perf)
}
