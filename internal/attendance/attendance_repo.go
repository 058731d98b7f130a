package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *AttendanceRecord) error
	Find(ctx context.Context, q HistoryQuery) ([]AttendanceRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Find returns records newest first; equal event times keep insertion order.
func (r *repository) Find(ctx context.Context, q HistoryQuery) ([]AttendanceRecord, error) {
	query := r.db.WithContext(ctx).Model(&AttendanceRecord{})

	if q.EmployeeID != "" {
		query = query.Where("employee_id = ?", q.EmployeeID)
	}
	if q.Start != nil && q.End != nil {
		query = query.Where("event_time >= ? AND event_time <= ?", *q.Start, *q.End)
	}

	var rows []AttendanceRecord
	err := query.
		Order("event_time DESC, created_at ASC").
		Find(&rows).Error
	return rows, err
}
