package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workpoint-ph/attendance-backend-go/internal/config"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/workpoint-ph/attendance-backend-go/internal/handler/http"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/clock"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/database"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/jwt"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/lock"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/sse"
	"github.com/workpoint-ph/attendance-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/workpoint-ph/attendance-backend-go/internal/service/adjustment"
	attendanceService "github.com/workpoint-ph/attendance-backend-go/internal/service/attendance"
	authService "github.com/workpoint-ph/attendance-backend-go/internal/service/auth"
	employeeService "github.com/workpoint-ph/attendance-backend-go/internal/service/employee"
	leaveService "github.com/workpoint-ph/attendance-backend-go/internal/service/leave"
	notificationService "github.com/workpoint-ph/attendance-backend-go/internal/service/notification"
	reportService "github.com/workpoint-ph/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	locker, err := lock.NewRedisLocker(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Error connecting to redis: ", err)
	}
	defer locker.Close()

	businessClock, err := clock.NewBusinessClock()
	if err != nil {
		log.Fatal("Error loading business timezone: ", err)
	}

	hub := sse.NewHub()
	defer hub.Close()

	policy := attendance.Policy{
		MorningBoundaryHour:     cfg.Attendance.MorningBoundaryHour,
		EveningBoundaryHour:     cfg.Attendance.EveningBoundaryHour,
		BreakDelayMinutes:       cfg.Attendance.BreakDelayMinutes,
		BreakCutoffMinutes:      cfg.Attendance.BreakCutoffMinutes,
		MaxBreakMinutes:         cfg.Attendance.MaxBreakMinutes,
		TrainingMaxBreakMinutes: cfg.Attendance.TrainingMaxBreakMinutes,
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveCreditRepo := postgresql.NewLeaveCreditRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	attendanceSvc := attendanceService.NewAttendanceService(businessClock, policy, locker, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, businessClock, leaveRequestRepo, leaveCreditRepo, notificationSvc)
	adjustmentSvc := adjustmentService.NewAdjustmentService(businessClock, adjustmentRepo, notificationSvc)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtService, hub)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.AllowedOrigins,
		cfg.App.Env,
		authHandler,
		attendanceHandler,
		leaveHandler,
		adjustmentHandler,
		employeeHandler,
		notificationHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
