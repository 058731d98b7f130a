package employee

import "github.com/gin-gonic/gin"

// Paths are part of the published contract and must not move under a
// versioned prefix.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/api/employees", h.List)
	r.POST("/store-embedding", h.StoreEmbedding)
	r.POST("/upload-embedding/:employeeId", h.UploadEmbedding)
}
