package employeeerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hire date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrHireDateInFuture = apperror.New(
		apperror.CodeInvalidInput,
		"Hire date cannot be in the future",
		http.StatusBadRequest,
	)
	ErrNonPositiveSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrUnknownDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not exist",
		http.StatusBadRequest,
	)
)
