package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Employee is one workforce identity. FaceEmbedding is nullable on purpose:
// NULL means no embedding was ever attached, a non-NULL value (including an
// empty array) means one was. The store path treats any non-NULL value as
// already-assigned; only the upload path may overwrite.
type Employee struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    string          `gorm:"column:employee_id;type:varchar(100);uniqueIndex;not null"`
	Name          string          `gorm:"column:name;type:varchar(100)"`
	Email         string          `gorm:"column:email;type:varchar(255);uniqueIndex"`
	Department    string          `gorm:"column:department;type:varchar(100)"`
	Password      string          `gorm:"column:password;type:varchar(255)"`
	FaceEmbedding pq.Float64Array `gorm:"column:face_embedding;type:float8[]"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// HasEmbedding reports whether an embedding is present, using existence
// rather than non-emptiness as the predicate.
func (e *Employee) HasEmbedding() bool {
	return e.FaceEmbedding != nil
}
