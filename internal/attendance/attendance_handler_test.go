package attendance_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"face-attendance/internal/attendance"
	employeeerrors "face-attendance/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	markFn    func(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error)
	historyFn func(ctx context.Context, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error)
}

func (f *fakeService) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	return f.markFn(ctx, req)
}
func (f *fakeService) History(ctx context.Context, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error) {
	return f.historyFn(ctx, q)
}

func TestHandler_Mark(t *testing.T) {
	gin.SetMode(gin.TestMode)

	postMark := func(h *attendance.Handler, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/attendance/mark", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Mark(c)
		return w
	}

	t.Run("created", func(t *testing.T) {
		svc := &fakeService{
			markFn: func(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
				assert.Equal(t, "EMP-0001", req.EmployeeID)
				assert.Equal(t, "D1", req.DeviceID)
				assert.Equal(t, "HQ", req.Location)
				return attendance.AttendanceResponse{
					ID:         uuid.New().String(),
					EmployeeID: req.EmployeeID,
					Type:       attendance.TypeCheckIn,
				}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := postMark(h, `{"employeeId":"EMP-0001","deviceId":"D1","location":"HQ"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"employeeId":"EMP-0001"`)
		assert.Contains(t, w.Body.String(), `"type":"check-in"`)
	})

	t.Run("missing deviceId", func(t *testing.T) {
		svc := &fakeService{
			markFn: func(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
				t.Fatal("service must not be called")
				return attendance.AttendanceResponse{}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := postMark(h, `{"employeeId":"EMP-0001","location":"HQ"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := &fakeService{
			markFn: func(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := attendance.NewHandler(svc)

		w := postMark(h, `{"employeeId":"EMP-0404","deviceId":"D1","location":"HQ"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Employee not found"}`, w.Body.String())
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		svc := &fakeService{
			markFn: func(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendance.ErrInvalidTimestamp
			},
		}
		h := attendance.NewHandler(svc)

		w := postMark(h, `{"employeeId":"EMP-0001","deviceId":"D1","location":"HQ","timestamp":"yesterday"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	getHistory := func(h *attendance.Handler, rawQuery string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/attendance/history?"+rawQuery, nil)
		h.History(c)
		return w
	}

	t.Run("both bounds engage the range filter", func(t *testing.T) {
		var got attendance.HistoryQuery
		svc := &fakeService{
			historyFn: func(ctx context.Context, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error) {
				got = q
				return []attendance.AttendanceResponse{}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := getHistory(h, "employeeId=EMP-0001&startDate=2026-08-01&endDate=2026-08-28")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "EMP-0001", got.EmployeeID)
		if assert.NotNil(t, got.Start) && assert.NotNil(t, got.End) {
			assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), got.Start.UTC())
			assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), got.End.UTC())
		}
	})

	t.Run("a single bound is ignored", func(t *testing.T) {
		var got attendance.HistoryQuery
		svc := &fakeService{
			historyFn: func(ctx context.Context, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error) {
				got = q
				return []attendance.AttendanceResponse{}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := getHistory(h, "employeeId=EMP-0001&startDate=2026-08-01")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, got.Start)
		assert.Nil(t, got.End)
	})

	t.Run("unparseable bounds", func(t *testing.T) {
		svc := &fakeService{
			historyFn: func(ctx context.Context, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error) {
				t.Fatal("service must not be called")
				return nil, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := getHistory(h, "startDate=not-a-date&endDate=2026-08-28")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid date range")
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &fakeService{
			historyFn: func(ctx context.Context, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error) {
				return nil, errors.New("history query failed")
			},
		}
		h := attendance.NewHandler(svc)

		w := getHistory(h, "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch attendance history")
	})

	t.Run("records come back as a bare array", func(t *testing.T) {
		at := time.Date(2026, 8, 28, 8, 30, 0, 0, time.UTC)
		svc := &fakeService{
			historyFn: func(ctx context.Context, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error) {
				return []attendance.AttendanceResponse{
					{ID: uuid.New().String(), EmployeeID: "EMP-0001", Timestamp: at, Type: attendance.TypeCheckIn},
				}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := getHistory(h, "employeeId=EMP-0001")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "["))
		assert.Contains(t, w.Body.String(), `"timestamp":"2026-08-28T08:30:00Z"`)
	})
}
