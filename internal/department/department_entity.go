package department

// Department is persisted to departments.json; json tags match the on-disk
// document layout, which is fixed and shared with nothing else.
type Department struct {
	ID          int    `json:"Id"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// DefaultDepartments returns the collection seeded on first run when no
// departments.json exists yet.
func DefaultDepartments() []Department {
	return []Department{
		{ID: 1, Name: "Human Resources", Description: "Manages employee relations and policies"},
		{ID: 2, Name: "Information Technology", Description: "Handles technology infrastructure and development"},
		{ID: 3, Name: "Finance", Description: "Manages financial operations and accounting"},
		{ID: 4, Name: "Marketing", Description: "Handles marketing and promotional activities"},
		{ID: 5, Name: "Operations", Description: "Manages day-to-day business operations"},
	}
}
