package employee

import (
	"net/http"

	"face-attendance/internal/shared/apperror"
	"face-attendance/internal/shared/response"
	"face-attendance/internal/shared/upload"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List serves the embedding gallery consumed by the recognition frontend.
func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.ListWithEmbedding(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *Handler) StoreEmbedding(c *gin.Context) {
	var req StoreEmbeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Result(c, httpErr.Status, false, httpErr.Message, nil)
		return
	}

	if err := h.service.StoreEmbedding(c.Request.Context(), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Code == apperror.CodeInternalError {
			httpErr.Message = "Server Error"
		}
		response.Result(c, httpErr.Status, false, httpErr.Message, nil)
		return
	}

	response.Result(c, http.StatusOK, true, "Embedding stored successfully", nil)
}

func (h *Handler) UploadEmbedding(c *gin.Context) {
	employeeID := c.Param("employeeId")

	image, err := upload.ReadImage(c)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Message(c, httpErr.Status, httpErr.Message)
		return
	}

	if err := h.service.UploadEmbedding(c.Request.Context(), employeeID, image); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Message(c, httpErr.Status, httpErr.Message)
		return
	}

	response.Result(c, http.StatusOK, true, "Embedding saved", gin.H{"employeeId": employeeID})
}
