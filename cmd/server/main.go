package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staff-planner/internal/config"
	"staff-planner/internal/handler"
	"staff-planner/internal/repository"
	"staff-planner/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg := config.GetServerConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		logger.WithError(err).Fatal("Failed to enable foreign keys")
	}

	storeRepo, err := repository.NewGormStoreRepository(db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to init store repository")
	}
	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to init employee repository")
	}
	scheduleRepo, err := repository.NewGormWorkScheduleRepository(db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to init schedule repository")
	}
	attendanceRepo, err := repository.NewGormAttendanceRepository(db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to init attendance repository")
	}
	leaveRepo, err := repository.NewGormLeaveRequestRepository(db, employeeRepo)
	if err != nil {
		logger.WithError(err).Fatal("Failed to init leave request repository")
	}
	adjustmentRepo, err := repository.NewGormLeaveAdjustmentRepository(db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to init adjustment repository")
	}

	scheduleService := service.NewScheduleService(scheduleRepo)
	leaveService := service.NewLeaveService(leaveRepo, employeeRepo, scheduleRepo, adjustmentRepo, storeRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo)
	reportService := service.NewReportService(employeeRepo, scheduleRepo, attendanceRepo, leaveRepo, storeRepo)
	calendarService := service.NewCalendarService(employeeRepo, scheduleRepo, attendanceRepo, leaveRepo, storeRepo)
	employeeService := service.NewEmployeeService(employeeRepo, storeRepo, leaveRepo)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders,
		"X-Employee-ID", "X-Employee-Role")
	router.Use(cors.New(corsConfig))

	h := handler.NewHandler(scheduleService, leaveService, attendanceService,
		reportService, calendarService, employeeService)
	h.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	logger.Info("Server stopped")
}
