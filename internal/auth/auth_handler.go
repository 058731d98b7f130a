package auth

import (
	"net/http"

	autherrors "face-attendance/internal/auth/errors"
	"face-attendance/internal/shared/apperror"
	"face-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed credentials read the same as wrong ones.
		response.Error(c, autherrors.ErrInvalidCredentials.HTTPStatus, autherrors.ErrInvalidCredentials.Message)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.EmployeeID, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
