package app

import (
	"net/http"
	"time"

	"face-attendance/internal/attendance"
	"face-attendance/internal/auth"
	"face-attendance/internal/config"
	"face-attendance/internal/employee"
	"face-attendance/internal/messaging/kafka"
	"face-attendance/internal/middleware"
	"face-attendance/internal/recognition"
	"face-attendance/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())

	// --- Infra clients ---
	recognizer := recognition.NewHTTPClient(cfg.RecognitionURL, cfg.RecognitionTimeout())
	tokens := token.NewManager(cfg.JWTSecret, 24*time.Hour)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, recognizer, rdb)
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, employeeRepo, outboxRepo)
	authService := auth.NewService(employeeRepo, tokens, auth.NewBcryptHasher())

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	recognitionHandler := recognition.NewHandler(recognizer)

	// --- Routes ---
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "api is running!!")
	})

	employee.RegisterRoutes(router, employeeHandler)
	recognition.RegisterRoutes(router, recognitionHandler)

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, tokens)
	}

	return nil
}
