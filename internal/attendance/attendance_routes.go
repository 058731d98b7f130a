package attendance

import (
	"face-attendance/internal/middleware"
	"face-attendance/internal/shared/token"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, h *Handler, tokens *token.Manager) {
	attendance := api.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware(tokens))
	{
		attendance.POST("/mark", middleware.RateLimitByUser(2, 5), h.Mark)
		attendance.GET("/history", h.History)
	}
}
