package recognition

import (
	"net/http"

	"face-attendance/internal/shared/apperror"
	"face-attendance/internal/shared/response"
	"face-attendance/internal/shared/upload"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

// Compare relays the uploaded image to the comparison endpoint and forwards
// the service's JSON body untouched.
func (h *Handler) Compare(c *gin.Context) {
	image, err := upload.ReadImage(c)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Result(c, httpErr.Status, false, httpErr.Message, nil)
		return
	}

	body, err := h.client.Compare(c.Request.Context(), image)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Result(c, httpErr.Status, false, httpErr.Message, nil)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
