package events

import "time"

const (
	AttendanceMarkedTopic = "attendance.events.v1"
	AttendanceMarkedType  = "attendance.marked"
)

type AttendanceMarkedEvent struct {
	EventType  string    `json:"event_type"`
	RecordID   string    `json:"record_id"`
	EmployeeID string    `json:"employee_id"`
	Type       string    `json:"type"`
	Location   string    `json:"location"`
	DeviceID   string    `json:"device_id"`
	Timestamp  time.Time `json:"timestamp"`
	OccurredAt time.Time `json:"occurred_at"`
}
