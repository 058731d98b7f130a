package employee

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindAllWithEmbedding(ctx context.Context) ([]Employee, error)
	UpdateEmbedding(ctx context.Context, employeeID string, embedding pq.Float64Array) error
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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&emp).Error
	return &emp, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&emp).Error
	return &emp, err
}

// FindAllWithEmbedding filters on existence of the embedding, not on it
// being non-empty. Insertion order.
func (r *repository) FindAllWithEmbedding(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Where("face_embedding IS NOT NULL").
		Order("created_at ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) UpdateEmbedding(ctx context.Context, employeeID string, embedding pq.Float64Array) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", employeeID).
		Update("face_embedding", embedding).Error
}
