package employeeerrors

import (
	"net/http"

	"face-attendance/internal/shared/apperror"
)

// HTTP statuses here follow the published wire contract, which predates the
// usual 409-for-conflict convention.
var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmbeddingExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has a face embedding",
		http.StatusBadRequest,
	)

	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User already exists",
		http.StatusBadRequest,
	)
)
