package auth

import (
	"face-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.POST("/signup", middleware.RateLimitByIP(0.1, 3), handler.Signup)
	}
}
