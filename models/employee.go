package models

// Employee is a staff record. ManagerID is a weak self-referential link to
// another employee; 0 means none.
type Employee struct {
	EmployeeID uint     `gorm:"column:employee_id;primaryKey" json:"id"`
	Name       string   `gorm:"column:name;not null" json:"name"`
	Salary     *float64 `gorm:"column:salary" json:"salary"`
	ManagerID  int      `gorm:"column:manager_id;not null;default:0" json:"manager_id"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employee"
}

// Manager is the legacy manager record set. It is read-only from the
// application's point of view: all write paths target the employee table.
type Manager struct {
	ManagerID uint     `gorm:"column:manager_id;primaryKey" json:"id"`
	Name      string   `gorm:"column:name;not null" json:"name"`
	Salary    *float64 `gorm:"column:salary" json:"salary"`
}

// TableName specifies the table name for the Manager model
func (Manager) TableName() string {
	return "manager"
}

// StaffMember is the merged list view over employee and manager records.
// Role is derived at read time ("Manager" iff the id appears in the
// manager table), never stored.
type StaffMember struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Salary    *float64 `json:"salary"`
	ManagerID int      `json:"manager_id"`
	Role      string   `json:"role"`
}

// EmployeePatch is a typed partial update for an employee.
type EmployeePatch struct {
	Name      *string  `json:"name"`
	Salary    *float64 `json:"salary"`
	ManagerID *int     `json:"manager_id"`
}

// Empty reports whether the patch carries no fields at all.
func (p EmployeePatch) Empty() bool {
	return p.Name == nil && p.Salary == nil && p.ManagerID == nil
}

// EmployeePerformance is the order count and sales total for one employee,
// optionally bounded by a date range.
type EmployeePerformance struct {
	EmployeeID uint    `json:"employee_id"`
	OrderCount int64   `json:"order_count"`
	TotalSales float64 `json:"total_sales"`
}
