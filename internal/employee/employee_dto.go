package employee

import "time"

type StoreEmbeddingRequest struct {
	EmployeeID    string          `json:"employeeId" binding:"required,min=4"`
	FaceEmbedding EmbeddingVector `json:"faceEmbedding" binding:"required"`
	Name          string          `json:"name"`
	Email         string          `json:"email" binding:"omitempty,email"`
}

// GalleryEntry is one row of GET /api/employees. The embedding travels under
// the historical "faceImg" key; downstream consumers depend on it.
type GalleryEntry struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	EmployeeID string    `json:"employeeId"`
	FaceImg    []float64 `json:"faceImg"`
}

type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department,omitempty"`
	EmployeeID string    `json:"employeeId"`
	FaceImg    []float64 `json:"faceImg,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.String(),
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		EmployeeID: e.EmployeeID,
		FaceImg:    []float64(e.FaceEmbedding),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
