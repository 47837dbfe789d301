package dashboard_test

import (
	"context"
	"testing"

	"go-ems/internal/dashboard"
	"go-ems/internal/department"
	"go-ems/internal/employee"

	"github.com/stretchr/testify/assert"
)

type fakeDirectory struct {
	ListFn        func(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error)
	RecentHiresFn func(ctx context.Context, windowDays int) ([]employee.EmployeeResponse, error)
}

func (f *fakeDirectory) List(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error) {
	return f.ListFn(ctx, params)
}
func (f *fakeDirectory) RecentHires(ctx context.Context, windowDays int) ([]employee.EmployeeResponse, error) {
	return f.RecentHiresFn(ctx, windowDays)
}

type fakeCounts struct {
	total   int
	perDept map[int]int
}

func (f *fakeCounts) CountAll(ctx context.Context) (int, error) { return f.total, nil }
func (f *fakeCounts) CountByDepartment(ctx context.Context, departmentID int) (int, error) {
	return f.perDept[departmentID], nil
}

type fakeLister struct {
	departments []department.DepartmentResponse
}

func (f *fakeLister) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.departments, nil
}

func TestDashboardService_Snapshot(t *testing.T) {
	directory := &fakeDirectory{
		RecentHiresFn: func(ctx context.Context, windowDays int) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, dashboard.RecentHireWindowDays, windowDays)
			return []employee.EmployeeResponse{{ID: 3, FullName: "New Hire"}}, nil
		},
	}
	counts := &fakeCounts{total: 7, perDept: map[int]int{1: 4, 2: 3}}
	lister := &fakeLister{departments: []department.DepartmentResponse{
		{ID: 1, Name: "Human Resources"},
		{ID: 2, Name: "Information Technology"},
	}}

	svc := dashboard.NewService(directory, counts, lister)

	snap, err := svc.Snapshot(context.Background(), "ada")

	assert.NoError(t, err)
	assert.Equal(t, 7, snap.TotalEmployees)
	assert.Equal(t, "ada", snap.SearchTerm)
	assert.Len(t, snap.RecentHires, 1)
	assert.Equal(t, []dashboard.DepartmentHeadcount{
		{DepartmentName: "Human Resources", EmployeeCount: 4},
		{DepartmentName: "Information Technology", EmployeeCount: 3},
	}, snap.EmployeesByDepartment)
}

func TestDashboardService_QuickSearch(t *testing.T) {
	t.Run("empty term short-circuits", func(t *testing.T) {
		listCalls := 0
		directory := &fakeDirectory{
			ListFn: func(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error) {
				listCalls++
				return employee.EmployeeListResult{}, nil
			},
		}
		svc := dashboard.NewService(directory, &fakeCounts{}, &fakeLister{})

		matches, err := svc.QuickSearch(context.Background(), "")

		assert.NoError(t, err)
		assert.Empty(t, matches)
		assert.Zero(t, listCalls)
	})

	t.Run("maps matches and caps the page size", func(t *testing.T) {
		directory := &fakeDirectory{
			ListFn: func(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error) {
				assert.Equal(t, 1, params.Page)
				assert.Equal(t, 10, params.PageSize)
				assert.Equal(t, "ada", params.Search)
				return employee.EmployeeListResult{
					Items: []employee.EmployeeResponse{
						{
							ID:       1,
							FullName: "Ada Lovelace",
							Email:    "ada@x.com",
							Department: &employee.EmployeeDepartmentResponse{
								ID: 2, Name: "Information Technology",
							},
						},
						{ID: 2, FullName: "Adam Smith", Email: "adam@x.com"},
					},
					TotalCount: 2,
				}, nil
			},
		}
		svc := dashboard.NewService(directory, &fakeCounts{}, &fakeLister{})

		matches, err := svc.QuickSearch(context.Background(), "ada")

		assert.NoError(t, err)
		if assert.Len(t, matches, 2) {
			assert.Equal(t, "Ada Lovelace", matches[0].Name)
			assert.Equal(t, "Information Technology", matches[0].Department)
			assert.Empty(t, matches[1].Department)
		}
	})
}
