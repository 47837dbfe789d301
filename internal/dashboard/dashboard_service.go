package dashboard

import (
	"context"

	"go-ems/internal/department"
	"go-ems/internal/employee"

	"go.uber.org/zap"
)

// RecentHireWindowDays is the dashboard's definition of a recent hire.
const RecentHireWindowDays = 30

const quickSearchLimit = 10

// EmployeeDirectory is the slice of the employee service the dashboard
// reads from.
type EmployeeDirectory interface {
	List(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error)
	RecentHires(ctx context.Context, windowDays int) ([]employee.EmployeeResponse, error)
}

// EmployeeCounts is the counting slice of the employee repository.
type EmployeeCounts interface {
	CountAll(ctx context.Context) (int, error)
	CountByDepartment(ctx context.Context, departmentID int) (int, error)
}

type DepartmentLister interface {
	GetAll(ctx context.Context) ([]department.DepartmentResponse, error)
}

type Service interface {
	Snapshot(ctx context.Context, searchTerm string) (DashboardResponse, error)
	QuickSearch(ctx context.Context, term string) ([]SearchResult, error)
}

type service struct {
	employees   EmployeeDirectory
	counts      EmployeeCounts
	departments DepartmentLister
	logger      *zap.Logger
}

func NewService(employees EmployeeDirectory, counts EmployeeCounts, departments DepartmentLister, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{employees: employees, counts: counts, departments: departments, logger: l}
}

// Snapshot composes total headcount, per-department counts in department
// order, and the recent-hire list with departments attached.
func (s *service) Snapshot(ctx context.Context, searchTerm string) (DashboardResponse, error) {
	total, err := s.counts.CountAll(ctx)
	if err != nil {
		s.logger.Error("dashboard total count failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	depts, err := s.departments.GetAll(ctx)
	if err != nil {
		s.logger.Error("dashboard department list failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	byDepartment := make([]DepartmentHeadcount, 0, len(depts))
	for _, dept := range depts {
		count, err := s.counts.CountByDepartment(ctx, dept.ID)
		if err != nil {
			s.logger.Error("dashboard department count failed",
				zap.Int("department_id", dept.ID),
				zap.Error(err),
			)
			return DashboardResponse{}, err
		}
		byDepartment = append(byDepartment, DepartmentHeadcount{
			DepartmentName: dept.Name,
			EmployeeCount:  count,
		})
	}

	recentHires, err := s.employees.RecentHires(ctx, RecentHireWindowDays)
	if err != nil {
		s.logger.Error("dashboard recent hires failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		TotalEmployees:        total,
		EmployeesByDepartment: byDepartment,
		RecentHires:           recentHires,
		SearchTerm:            searchTerm,
	}, nil
}

// QuickSearch returns the top matches for the dashboard search box.
func (s *service) QuickSearch(ctx context.Context, term string) ([]SearchResult, error) {
	if term == "" {
		return []SearchResult{}, nil
	}

	result, err := s.employees.List(ctx, employee.QueryParams{
		Page:     1,
		PageSize: quickSearchLimit,
		SortBy:   employee.SortByID,
		Search:   term,
	})
	if err != nil {
		s.logger.Error("quick search failed", zap.String("term", term), zap.Error(err))
		return nil, err
	}

	matches := make([]SearchResult, 0, len(result.Items))
	for _, e := range result.Items {
		match := SearchResult{
			ID:    e.ID,
			Name:  e.FullName,
			Email: e.Email,
		}
		if e.Department != nil {
			match.Department = e.Department.Name
		}
		matches = append(matches, match)
	}
	return matches, nil
}
