package attendance

import (
	"net/http"
	"time"

	"face-attendance/internal/shared/apperror"
	"face-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) History(c *gin.Context) {
	q := HistoryQuery{EmployeeID: c.Query("employeeId")}

	// The range filter only engages when both bounds are present; a lone
	// bound is ignored, which callers of the original API rely on.
	startRaw, endRaw := c.Query("startDate"), c.Query("endDate")
	if startRaw != "" && endRaw != "" {
		start, err1 := parseHistoryBound(startRaw)
		end, err2 := parseHistoryBound(endRaw)
		if err1 != nil || err2 != nil {
			response.Error(c, http.StatusBadRequest, "Invalid date range")
			return
		}
		q.Start, q.End = &start, &end
	}

	resp, err := h.service.History(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch attendance history")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseHistoryBound(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
