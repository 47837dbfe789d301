package dashboard

import "go-ems/internal/employee"

type DepartmentHeadcount struct {
	DepartmentName string `json:"department_name"`
	EmployeeCount  int    `json:"employee_count"`
}

// DashboardResponse is recomputed from the repositories on every request;
// nothing here is cached.
type DashboardResponse struct {
	TotalEmployees        int                         `json:"total_employees"`
	EmployeesByDepartment []DepartmentHeadcount       `json:"employees_by_department"`
	RecentHires           []employee.EmployeeResponse `json:"recent_hires"`
	SearchTerm            string                      `json:"search_term"`
}

type SearchResult struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
}
