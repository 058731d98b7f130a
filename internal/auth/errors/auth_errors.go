package autherrors

import (
	"net/http"

	"face-attendance/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid employeeId or password",
		http.StatusUnauthorized,
	)

	// Signup conflicts answer 400, matching the published contract.
	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User already exists",
		http.StatusBadRequest,
	)
)
