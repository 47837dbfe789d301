package employee

import (
	"context"
	"errors"
	"time"

	"go-ems/internal/department"
	departmenterrors "go-ems/internal/department/errors"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
)

// DepartmentReader is the slice of the department repository this service
// needs for reference validation and display joins.
type DepartmentReader interface {
	FindAll(ctx context.Context) ([]department.Department, error)
	FindByID(ctx context.Context, id int) (*department.Department, error)
}

type Service interface {
	List(ctx context.Context, params QueryParams) (EmployeeListResult, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
	RecentHires(ctx context.Context, windowDays int) ([]EmployeeResponse, error)
}

type service struct {
	repo        Repository
	departments DepartmentReader
	logger      *zap.Logger
}

func NewService(repo Repository, departments DepartmentReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, departments: departments, logger: l}
}

func (s *service) List(ctx context.Context, params QueryParams) (EmployeeListResult, error) {
	result, err := s.repo.Query(ctx, params)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return EmployeeListResult{}, mapRepositoryError(err)
	}

	if err := s.attachDepartments(ctx, result.Items); err != nil {
		return EmployeeListResult{}, mapRepositoryError(err)
	}

	return EmployeeListResult{
		Items:      ToListResponse(result.Items),
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Display join only: a dangling reference leaves the department unset
	// instead of failing the lookup.
	if dept, err := s.departments.FindByID(ctx, empl.DepartmentID); err == nil {
		empl.Department = dept
	}

	return ToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.Int("department_id", req.DepartmentID),
	)

	hireDate, dept, err := s.validate(ctx, req.HireDate, req.Salary, req.DepartmentID)
	if err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		HireDate:     hireDate,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", empl.ID),
	)

	empl.Department = dept
	return ToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.Int("employee_id", id))

	hireDate, dept, err := s.validate(ctx, req.HireDate, req.Salary, req.DepartmentID)
	if err != nil {
		s.logger.Warn("update employee validation failed", zap.Int("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		HireDate:     hireDate,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Int("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.Int("employee_id", id))

	empl.Department = dept
	return ToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Int("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.Int("employee_id", id))
	return nil
}

func (s *service) RecentHires(ctx context.Context, windowDays int) ([]EmployeeResponse, error) {
	empls, err := s.repo.RecentHires(ctx, windowDays)
	if err != nil {
		s.logger.Error("recent hires failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if err := s.attachDepartments(ctx, empls); err != nil {
		return nil, mapRepositoryError(err)
	}

	return ToListResponse(empls), nil
}

// validate enforces the business rules shared by create and update: the
// hire date parses and is not in the future, the salary is positive, and
// the department reference resolves. Returns the parsed date and the
// resolved department for the display join.
func (s *service) validate(ctx context.Context, hireDate string, salary float64, departmentID int) (time.Time, *department.Department, error) {
	parsed, err := time.Parse(hireDateLayout, hireDate)
	if err != nil {
		return time.Time{}, nil, employeeerrors.ErrInvalidHireDate
	}
	// The parsed date is UTC midnight; compare against the end of the
	// server-local day so "today" is never rejected in any timezone.
	now := time.Now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	if parsed.After(endOfToday) {
		return time.Time{}, nil, employeeerrors.ErrHireDateInFuture
	}

	if salary <= 0 {
		return time.Time{}, nil, employeeerrors.ErrNonPositiveSalary
	}

	dept, err := s.departments.FindByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, departmenterrors.ErrDepartmentNotFound) {
			return time.Time{}, nil, employeeerrors.ErrUnknownDepartment
		}
		return time.Time{}, nil, mapRepositoryError(err)
	}

	return parsed, dept, nil
}

// attachDepartments joins departments onto the given employees with one
// collection load. Unresolvable references stay nil.
func (s *service) attachDepartments(ctx context.Context, empls []Employee) error {
	if len(empls) == 0 {
		return nil
	}

	depts, err := s.departments.FindAll(ctx)
	if err != nil {
		s.logger.Error("attach departments failed", zap.Error(err))
		return err
	}

	byID := make(map[int]*department.Department, len(depts))
	for i := range depts {
		byID[depts[i].ID] = &depts[i]
	}
	for i := range empls {
		empls[i].Department = byID[empls[i].DepartmentID]
	}
	return nil
}
