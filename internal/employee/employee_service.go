package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	employeeerrors "face-attendance/internal/employee/errors"
	"face-attendance/internal/recognition"
	"face-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	GalleryCacheKey = "employees:gallery"
	galleryCacheTTL = 30 * time.Second
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	ListWithEmbedding(ctx context.Context) ([]GalleryEntry, error)
	StoreEmbedding(ctx context.Context, req StoreEmbeddingRequest) error
	UploadEmbedding(ctx context.Context, employeeID string, image []byte) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	recognizer recognition.Client
	rdb        *redis.Client
	sf         *singleflight.Group
	locks      sync.Map // employeeId -> *sync.Mutex
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, recognizer recognition.Client, rdb *redis.Client) Service {
	return &service{
		db:         db,
		repo:       repo,
		recognizer: recognizer,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		logger:     zap.L().Named("employee.service"),
	}
}

// lockEmployee serializes writers per employeeId so two concurrent
// first-writers cannot both pass the create-or-attach check. Mutexes are
// never evicted; the key space is bounded by the workforce size.
func (s *service) lockEmployee(employeeID string) func() {
	v, _ := s.locks.LoadOrStore(employeeID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *service) ListWithEmbedding(ctx context.Context) ([]GalleryEntry, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, GalleryCacheKey).Bytes(); err == nil {
			var entries []GalleryEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
		}
	}

	// Collapse concurrent rebuilds into one database hit.
	result, err, _ := s.sf.Do(GalleryCacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindAllWithEmbedding(ctx)
		if err != nil {
			return nil, err
		}

		entries := make([]GalleryEntry, len(emps))
		for i, e := range emps {
			entries[i] = GalleryEntry{
				Name:       e.Name,
				Email:      e.Email,
				EmployeeID: e.EmployeeID,
				FaceImg:    []float64(e.FaceEmbedding),
			}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(entries); err == nil {
				_ = s.rdb.Set(ctx, GalleryCacheKey, payload, galleryCacheTTL).Err()
			}
		}

		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]GalleryEntry), nil
}

// StoreEmbedding is the write-once path: it creates the employee when the id
// is unknown, attaches the embedding when none is set, and refuses otherwise.
func (s *service) StoreEmbedding(ctx context.Context, req StoreEmbeddingRequest) error {
	rid := contextutil.GetRequestID(ctx)

	unlock := s.lockEmployee(req.EmployeeID)
	defer unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("store embedding begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		emp := &Employee{
			ID:            uuid.New(),
			EmployeeID:    req.EmployeeID,
			Name:          req.Name,
			Email:         req.Email,
			FaceEmbedding: pq.Float64Array(req.FaceEmbedding),
		}
		if err := qtx.Create(ctx, emp); err != nil {
			s.logger.Error("store embedding create failed",
				zap.String("request_id", rid),
				zap.String("employee_id", req.EmployeeID),
				zap.Error(err),
			)
			return mapRepositoryError(err)
		}

	case existing.HasEmbedding():
		return employeeerrors.ErrEmbeddingExists

	default:
		if err := qtx.UpdateEmbedding(ctx, req.EmployeeID, pq.Float64Array(req.FaceEmbedding)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateGallery(ctx)
	s.logger.Info("embedding stored",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("dimensions", len(req.FaceEmbedding)),
	)
	return nil
}

// UploadEmbedding extracts an embedding from the image through the
// recognition gateway and overwrites whatever was stored before. Unlike the
// store path there is no write-once guard.
func (s *service) UploadEmbedding(ctx context.Context, employeeID string, image []byte) error {
	if _, err := s.repo.FindByEmployeeID(ctx, employeeID); err != nil {
		return mapRepositoryError(err)
	}

	embedding, err := s.recognizer.ExtractEmbedding(ctx, image)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateEmbedding(ctx, employeeID, pq.Float64Array(embedding)); err != nil {
		return err
	}

	s.invalidateGallery(ctx)
	s.logger.Info("embedding uploaded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", employeeID),
		zap.Int("dimensions", len(embedding)),
	)
	return nil
}

func (s *service) invalidateGallery(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, GalleryCacheKey).Err()
	}
}
