package repositories

import (
	"sort"
	"strings"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"gorm.io/gorm"
)

// ListStaff merges the employee table with the legacy manager table,
// de-duplicated by id and sorted by name. The two sets stay separate in
// storage; the union happens here at read time, and an id present in the
// manager table is displayed with role "Manager".
func ListStaff(db *gorm.DB) ([]models.StaffMember, error) {
	employees := []models.Employee{}
	if err := db.Raw(`
		SELECT employee_id, name, salary, manager_id
		FROM employee
	`).Scan(&employees).Error; err != nil {
		return nil, err
	}

	managers := []models.Manager{}
	if err := db.Raw(`
		SELECT manager_id, name, salary
		FROM manager
	`).Scan(&managers).Error; err != nil {
		return nil, err
	}

	managerIDs := make(map[uint]bool, len(managers))
	for _, m := range managers {
		managerIDs[m.ManagerID] = true
	}

	merged := make(map[uint]models.StaffMember, len(employees)+len(managers))
	for _, e := range employees {
		merged[e.EmployeeID] = models.StaffMember{
			ID:        e.EmployeeID,
			Name:      e.Name,
			Salary:    e.Salary,
			ManagerID: e.ManagerID,
			Role:      roleFor(e.EmployeeID, managerIDs),
		}
	}
	// Legacy manager rows without a matching employee record still show
	// up in the list; employee rows win on conflicting ids.
	for _, m := range managers {
		if _, exists := merged[m.ManagerID]; exists {
			continue
		}
		merged[m.ManagerID] = models.StaffMember{
			ID:     m.ManagerID,
			Name:   m.Name,
			Salary: m.Salary,
			Role:   "Manager",
		}
	}

	staff := make([]models.StaffMember, 0, len(merged))
	for _, member := range merged {
		staff = append(staff, member)
	}
	sort.Slice(staff, func(i, j int) bool {
		if staff[i].Name != staff[j].Name {
			return strings.ToLower(staff[i].Name) < strings.ToLower(staff[j].Name)
		}
		return staff[i].ID < staff[j].ID
	})
	return staff, nil
}

func roleFor(id uint, managerIDs map[uint]bool) string {
	if managerIDs[id] {
		return "Manager"
	}
	return "Employee"
}

// GetStaffMember fetches one employee by id with its derived role.
func GetStaffMember(db *gorm.DB, id uint) (*models.StaffMember, error) {
	var employee models.Employee
	tx := db.Raw(`
		SELECT employee_id, name, salary, manager_id
		FROM employee
		WHERE employee_id = ?
	`, id).Scan(&employee)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var managerCount int64
	if err := db.Raw(`SELECT COUNT(*) FROM manager WHERE manager_id = ?`, id).Scan(&managerCount).Error; err != nil {
		return nil, err
	}

	member := models.StaffMember{
		ID:        employee.EmployeeID,
		Name:      employee.Name,
		Salary:    employee.Salary,
		ManagerID: employee.ManagerID,
		Role:      "Employee",
	}
	if managerCount > 0 {
		member.Role = "Manager"
	}
	return &member, nil
}

// CreateEmployee inserts a new employee record and backfills its id.
func CreateEmployee(db *gorm.DB, employee *models.Employee) error {
	return db.Create(employee).Error
}

// UpdateEmployee applies a partial update to an employee record. Writes
// always target the employee table, never the legacy manager table.
func UpdateEmployee(db *gorm.DB, id uint, patch models.EmployeePatch) (*models.StaffMember, error) {
	assignments := map[string]interface{}{}
	if patch.Name != nil {
		assignments["name"] = *patch.Name
	}
	if patch.Salary != nil {
		assignments["salary"] = *patch.Salary
	}
	if patch.ManagerID != nil {
		assignments["manager_id"] = *patch.ManagerID
	}

	tx := db.Model(&models.Employee{}).Where("employee_id = ?", id).Updates(assignments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetStaffMember(db, id)
}

// DeleteEmployee removes an employee record; a missing id is a not-found
// outcome, not an error.
func DeleteEmployee(db *gorm.DB, id uint) error {
	tx := db.Exec(`DELETE FROM employee WHERE employee_id = ?`, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// EmployeePerformance counts orders and sums sales for one employee,
// optionally bounded by an inclusive date range.
func EmployeePerformance(db *gorm.DB, id uint, startDate, endDate string) (*models.EmployeePerformance, error) {
	var exists int64
	if err := db.Raw(`SELECT COUNT(*) FROM employee WHERE employee_id = ?`, id).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	perf := models.EmployeePerformance{EmployeeID: id}
	var err error
	if startDate != "" && endDate != "" {
		err = db.Raw(`
			SELECT COUNT(*) AS order_count, COALESCE(SUM(price), 0) AS total_sales
			FROM order_history
			WHERE employee_id = ? AND date BETWEEN ? AND ?
		`, id, startDate, endDate).Scan(&perf).Error
	} else {
		err = db.Raw(`
			SELECT COUNT(*) AS order_count, COALESCE(SUM(price), 0) AS total_sales
			FROM order_history
			WHERE employee_id = ?
		`, id).Scan(&perf).Error
	}
	if err != nil {
		return nil, err
	}
	perf.EmployeeID = id
	return &perf, nil
}
