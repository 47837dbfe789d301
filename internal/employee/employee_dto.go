package employee

const hireDateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	HireDate     string  `json:"hire_date" binding:"required"`
	Salary       float64 `json:"salary" binding:"required,gt=0"`
	DepartmentID int     `json:"department_id" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	HireDate     string  `json:"hire_date" binding:"required"`
	Salary       float64 `json:"salary" binding:"required,gt=0"`
	DepartmentID int     `json:"department_id" binding:"required"`
}

type EmployeeDepartmentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID           int                         `json:"id"`
	FirstName    string                      `json:"first_name"`
	LastName     string                      `json:"last_name"`
	FullName     string                      `json:"full_name"`
	Email        string                      `json:"email"`
	HireDate     string                      `json:"hire_date"`
	Salary       float64                     `json:"salary"`
	DepartmentID int                         `json:"department_id"`
	Department   *EmployeeDepartmentResponse `json:"department,omitempty"`
}

// EmployeeListResult is one page of the filtered, sorted collection. The
// total count is taken after filtering and before paging so pagination UI
// can compute page totals.
type EmployeeListResult struct {
	Items      []EmployeeResponse
	TotalCount int
	Page       int
	PageSize   int
}

// ToResponse is exported because the dashboard renders employees too.
func ToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID,
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		FullName:     empl.FullName(),
		Email:        empl.Email,
		HireDate:     empl.HireDate.Format(hireDateLayout),
		Salary:       empl.Salary,
		DepartmentID: empl.DepartmentID,
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID,
			Name: empl.Department.Name,
		}
	}
	return resp
}

func ToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = ToResponse(e)
	}
	return res
}
