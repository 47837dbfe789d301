package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	ListFn        func(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error)
	GetByIDFn     func(ctx context.Context, id int) (employee.EmployeeResponse, error)
	CreateFn      func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	UpdateFn      func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn      func(ctx context.Context, id int) error
	RecentHiresFn func(ctx context.Context, windowDays int) ([]employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) List(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error) {
	return f.ListFn(ctx, params)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) RecentHires(ctx context.Context, windowDays int) ([]employee.EmployeeResponse, error) {
	return f.RecentHiresFn(ctx, windowDays)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("success with pagination meta", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error) {
				assert.Equal(t, 2, params.Page)
				assert.Equal(t, 5, params.PageSize)
				assert.Equal(t, employee.SortBySalary, params.SortBy)
				assert.True(t, params.Descending)
				assert.Equal(t, "ada", params.Search)
				return employee.EmployeeListResult{
					Items:      []employee.EmployeeResponse{{ID: 1}},
					TotalCount: 11,
					Page:       2,
					PageSize:   5,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet,
			"/employees?page=2&page_size=5&sort_by=salary&sort_dir=desc&q=ada", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		if assert.NotNil(t, env.Meta) {
			assert.Equal(t, int64(11), env.Meta.Total)
			assert.Equal(t, 3, env.Meta.TotalPages)
		}
	})

	t.Run("unknown sort key falls back to id order", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, params employee.QueryParams) (employee.EmployeeListResult, error) {
				assert.Equal(t, employee.SortByID, params.SortBy)
				return employee.EmployeeListResult{Page: 1, PageSize: 10}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees?sort_by=shoes", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int) (employee.EmployeeResponse, error) {
				assert.Equal(t, 1, id)
				return employee.EmployeeResponse{ID: 1, FirstName: "Ada"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/1", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}

		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.GetById(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/99", nil)
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	body := `{
		"first_name": "Ada",
		"last_name": "Lovelace",
		"email": "ada@x.com",
		"hire_date": "2020-01-01",
		"salary": 50000,
		"department_id": 2
	}`

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "ada@x.com", req.Email)
				return employee.EmployeeResponse{ID: 1}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("binding failure is a 400", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"salary": -5}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("business rejection is a 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrHireDateInFuture
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int) error {
				assert.Equal(t, 3, id)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/3", nil)
		c.Params = gin.Params{{Key: "id", Value: "3"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/9", nil)
		c.Params = gin.Params{{Key: "id", Value: "9"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
