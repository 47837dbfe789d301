package department

import (
	"context"

	departmenterrors "go-ems/internal/department/errors"
	"go-ems/internal/shared/jsonstore"
)

type Repository interface {
	EnsureDefaults(ctx context.Context) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id int) (*Department, error)
	Create(ctx context.Context, dept *Department) error
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	store *jsonstore.Store[Department]
}

func NewRepository(store *jsonstore.Store[Department]) Repository {
	return &repository{store: store}
}

// EnsureDefaults seeds the five fixed departments on first run.
func (r *repository) EnsureDefaults(ctx context.Context) error {
	return r.store.EnsureSeed(ctx, DefaultDepartments())
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	return r.store.Load(ctx)
}

func (r *repository) FindByID(ctx context.Context, id int) (*Department, error) {
	depts, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range depts {
		if depts[i].ID == id {
			return &depts[i], nil
		}
	}
	return nil, departmenterrors.ErrDepartmentNotFound
}

// Create assigns the next identity (max existing + 1) and appends. The
// whole read-assign-append-save cycle runs inside the store's exclusive
// section so concurrent creates cannot hand out the same ID.
func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.store.Update(ctx, func(depts []Department) ([]Department, error) {
		dept.ID = nextID(depts)
		return append(depts, *dept), nil
	})
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.store.Update(ctx, func(depts []Department) ([]Department, error) {
		for i := range depts {
			if depts[i].ID == dept.ID {
				depts[i].Name = dept.Name
				depts[i].Description = dept.Description
				return depts, nil
			}
		}
		return nil, departmenterrors.ErrDepartmentNotFound
	})
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.store.Update(ctx, func(depts []Department) ([]Department, error) {
		for i := range depts {
			if depts[i].ID == id {
				return append(depts[:i], depts[i+1:]...), nil
			}
		}
		return nil, departmenterrors.ErrDepartmentNotFound
	})
}

func nextID(depts []Department) int {
	max := 0
	for _, d := range depts {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1
}
