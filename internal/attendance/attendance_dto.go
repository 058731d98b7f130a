package attendance

import "time"

const (
	TypeCheckIn  = "check-in"
	TypeCheckOut = "check-out"
)

type MarkRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,min=4"`
	Timestamp  string `json:"timestamp" binding:"omitempty"`
	DeviceID   string `json:"deviceId" binding:"required"`
	Location   string `json:"location" binding:"required"`
	Type       string `json:"type" binding:"omitempty,oneof=check-in check-out"`
}

// HistoryQuery carries the optional filters of the history endpoint. Start
// and End are either both set or both nil; a single bound is dropped by the
// handler, preserving the documented behavior of the original API.
type HistoryQuery struct {
	EmployeeID string
	Start      *time.Time
	End        *time.Time
}

type AttendanceResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Timestamp  time.Time `json:"timestamp"`
	Type       string    `json:"type"`
	Location   string    `json:"location"`
	DeviceID   string    `json:"deviceId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func mapToResponse(rec AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:         rec.ID.String(),
		EmployeeID: rec.EmployeeID,
		Timestamp:  rec.EventTime,
		Type:       rec.Type,
		Location:   rec.Location,
		DeviceID:   rec.DeviceID,
		CreatedAt:  rec.CreatedAt,
	}
}
