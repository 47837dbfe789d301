package employee

import "strings"

// SortField is the closed set of sortable employee columns. The free-text
// sort key from the query string is resolved into this tag once at the
// boundary; the query pipeline only ever sees a typed comparator.
type SortField int

const (
	SortByID SortField = iota
	SortByFirstName
	SortByLastName
	SortByEmail
	SortByHireDate
	SortBySalary
)

// ParseSortField maps a case-insensitive field name to its tag. Unknown
// names fall back to identity order, matching the lenient behavior callers
// with bookmarked sort URLs rely on.
func ParseSortField(s string) SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "firstname", "first_name":
		return SortByFirstName
	case "lastname", "last_name":
		return SortByLastName
	case "email":
		return SortByEmail
	case "hiredate", "hire_date":
		return SortByHireDate
	case "salary":
		return SortBySalary
	default:
		return SortByID
	}
}

// Less is the strict ascending comparator for the field. Equal values
// report false both ways, which is what keeps stable sorts stable.
func (f SortField) Less(a, b Employee) bool {
	switch f {
	case SortByFirstName:
		return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
	case SortByLastName:
		return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
	case SortByEmail:
		return strings.ToLower(a.Email) < strings.ToLower(b.Email)
	case SortByHireDate:
		return a.HireDate.Before(b.HireDate)
	case SortBySalary:
		return a.Salary < b.Salary
	default:
		return a.ID < b.ID
	}
}
