package department

import (
	"errors"
	"net/http"

	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/jsonstore"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, jsonstore.ErrSave) {
		return apperror.Wrap(
			err,
			apperror.CodePersistenceFailure,
			"Failed to persist department records",
			http.StatusInternalServerError,
		)
	}

	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
