package employee

import (
	"context"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/query"
	"go-ems/internal/shared/jsonstore"
)

// QueryParams describes one list request after the boundary has parsed it:
// the sort key is already a typed tag, never a raw string.
type QueryParams struct {
	Page       int
	PageSize   int
	SortBy     SortField
	Descending bool
	Search     string
}

const defaultPageSize = 10

type Repository interface {
	Query(ctx context.Context, p QueryParams) (query.PagedResult[Employee], error)
	FindByID(ctx context.Context, id int) (*Employee, error)
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id int) error
	RecentHires(ctx context.Context, windowDays int) ([]Employee, error)
	CountAll(ctx context.Context) (int, error)
	CountByDepartment(ctx context.Context, departmentID int) (int, error)
}

type repository struct {
	store *jsonstore.Store[Employee]
}

func NewRepository(store *jsonstore.Store[Employee]) Repository {
	return &repository{store: store}
}

// Query applies the filter -> sort -> page pipeline over the full
// collection. TotalCount reflects the post-filter, pre-page size.
func (r *repository) Query(ctx context.Context, p QueryParams) (query.PagedResult[Employee], error) {
	empls, err := r.store.Load(ctx)
	if err != nil {
		return query.PagedResult[Employee]{}, err
	}

	filtered := query.Filter(empls, p.Search,
		func(e Employee) string { return e.FirstName },
		func(e Employee) string { return e.LastName },
		func(e Employee) string { return e.Email },
	)
	sorted := query.SortStable(filtered, p.SortBy.Less, p.Descending)

	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size < 1 {
		size = defaultPageSize
	}

	return query.PagedResult[Employee]{
		Items:      query.Page(sorted, page, size),
		TotalCount: len(filtered),
		Page:       page,
		PageSize:   size,
	}, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Employee, error) {
	empls, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range empls {
		if empls[i].ID == id {
			return &empls[i], nil
		}
	}
	return nil, employeeerrors.ErrEmployeeNotFound
}

// Create assigns the next identity (max existing + 1) inside the store's
// exclusive section and appends the record.
func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.store.Update(ctx, func(empls []Employee) ([]Employee, error) {
		empl.ID = nextID(empls)
		return append(empls, *empl), nil
	})
}

// Update overwrites every mutable field of the matched record; identity is
// immutable once assigned.
func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.store.Update(ctx, func(empls []Employee) ([]Employee, error) {
		for i := range empls {
			if empls[i].ID == empl.ID {
				empls[i].FirstName = empl.FirstName
				empls[i].LastName = empl.LastName
				empls[i].Email = empl.Email
				empls[i].HireDate = empl.HireDate
				empls[i].Salary = empl.Salary
				empls[i].DepartmentID = empl.DepartmentID
				return empls, nil
			}
		}
		return nil, employeeerrors.ErrEmployeeNotFound
	})
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.store.Update(ctx, func(empls []Employee) ([]Employee, error) {
		for i := range empls {
			if empls[i].ID == id {
				return append(empls[:i], empls[i+1:]...), nil
			}
		}
		return nil, employeeerrors.ErrEmployeeNotFound
	})
}

// RecentHires returns employees hired within the window, newest first.
func (r *repository) RecentHires(ctx context.Context, windowDays int) ([]Employee, error) {
	empls, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -windowDays)
	recent := make([]Employee, 0, len(empls))
	for _, e := range empls {
		if !e.HireDate.Before(cutoff) {
			recent = append(recent, e)
		}
	}

	return query.SortStable(recent, SortByHireDate.Less, true), nil
}

func (r *repository) CountAll(ctx context.Context) (int, error) {
	empls, err := r.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	return len(empls), nil
}

func (r *repository) CountByDepartment(ctx context.Context, departmentID int) (int, error) {
	empls, err := r.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, e := range empls {
		if e.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func nextID(empls []Employee) int {
	max := 0
	for _, e := range empls {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
