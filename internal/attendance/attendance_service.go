package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"face-attendance/internal/employee"
	employeeerrors "face-attendance/internal/employee/errors"
	"face-attendance/internal/events"
	"face-attendance/internal/messaging/kafka"
	"face-attendance/internal/shared/apperror"
	"face-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidTimestamp = apperror.New(
	apperror.CodeInvalidInput,
	"timestamp must be RFC 3339",
	http.StatusBadRequest,
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkRequest) (AttendanceResponse, error)
	History(ctx context.Context, q HistoryQuery) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository) Service {
	return NewServiceWithOutbox(db, repo, employees, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		logger:    zap.L().Named("attendance.service"),
	}
}

// Mark appends one attendance event. There is deliberately no dedup: two
// identical marks produce two records.
func (s *service) Mark(ctx context.Context, req MarkRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	eventTime := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return AttendanceResponse{}, ErrInvalidTimestamp
		}
		eventTime = parsed.UTC()
	}

	recType := req.Type
	if recType == "" {
		recType = TypeCheckIn
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	if _, err := s.employees.WithTx(tx).FindByEmployeeID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}

	rec := &AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		EventTime:  eventTime,
		Type:       recType,
		Location:   req.Location,
		DeviceID:   req.DeviceID,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("mark persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	if s.outbox != nil {
		if err := s.writeOutboxEvent(ctx, tx, rid, rec); err != nil {
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance marked",
		zap.String("request_id", rid),
		zap.String("employee_id", rec.EmployeeID),
		zap.String("type", rec.Type),
		zap.Time("event_time", rec.EventTime),
	)
	return mapToResponse(*rec), nil
}

func (s *service) writeOutboxEvent(ctx context.Context, tx *sql.Tx, rid string, rec *AttendanceRecord) error {
	payload, err := json.Marshal(events.AttendanceMarkedEvent{
		EventType:  events.AttendanceMarkedType,
		RecordID:   rec.ID.String(),
		EmployeeID: rec.EmployeeID,
		Type:       rec.Type,
		Location:   rec.Location,
		DeviceID:   rec.DeviceID,
		Timestamp:  rec.EventTime,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "attendance",
		AggregateID:   rec.ID.String(),
		EventType:     events.AttendanceMarkedType,
		Topic:         events.AttendanceMarkedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) History(ctx context.Context, q HistoryQuery) ([]AttendanceResponse, error) {
	rows, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}
