package department

import (
	"context"

	departmenterrors "go-ems/internal/department/errors"
	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
)

// EmployeeCounter reports how many employees reference a department.
// Implemented by the employee repository; declared here so this package
// never has to import it.
type EmployeeCounter interface {
	CountByDepartment(ctx context.Context, departmentID int) (int, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id int) (DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id int, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo      Repository
	employees EmployeeCounter
	logger    *zap.Logger
}

func NewService(repo Repository, employees EmployeeCounter, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, employees: employees, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id int) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	dept := &Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.Int("department_id", dept.ID),
	)
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	dept := &Department{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed",
			zap.Int("department_id", id),
			zap.Error(err),
		)
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update department success", zap.Int("department_id", id))
	return mapToResponse(*dept), nil
}

// Delete refuses while any employee still references the department. The
// count and the removal are two independently locked store operations; an
// employee created into the department between them can slip through,
// which is acceptable for a single-process admin tool.
func (s *service) Delete(ctx context.Context, id int) error {
	count, err := s.employees.CountByDepartment(ctx, id)
	if err != nil {
		s.logger.Error("delete department guard check failed",
			zap.Int("department_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	if count > 0 {
		s.logger.Warn("delete department blocked, still referenced",
			zap.Int("department_id", id),
			zap.Int("employee_count", count),
		)
		return departmenterrors.ErrDepartmentInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.Int("department_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete department success", zap.Int("department_id", id))
	return nil
}
