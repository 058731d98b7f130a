package attendance

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is one immutable attendance event. Records are only ever
// created and read; there is no update or delete path.
type AttendanceRecord struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(100);not null;index"`
	EventTime  time.Time `gorm:"column:event_time;type:timestamptz;not null;index"`
	Type       string    `gorm:"column:type;type:varchar(20);not null;default:'check-in'"`
	Location   string    `gorm:"column:location;type:varchar(100)"`
	DeviceID   string    `gorm:"column:device_id;type:varchar(100)"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
