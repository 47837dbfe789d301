package employee

import (
	"time"

	"go-ems/internal/department"
)

// Employee is persisted to employees.json; json tags match the on-disk
// document layout.
type Employee struct {
	ID           int       `json:"Id"`
	FirstName    string    `json:"FirstName"`
	LastName     string    `json:"LastName"`
	Email        string    `json:"Email"`
	HireDate     time.Time `json:"HireDate"`
	Salary       float64   `json:"Salary"`
	DepartmentID int       `json:"DepartmentId"`

	// Attached for display only, never persisted. The employee record is
	// the source of truth for the reference; the department collection is
	// the source of truth for the department itself.
	Department *department.Department `json:"-"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
