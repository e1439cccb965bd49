package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/staffly/hrms-backend-go/internal/config"
	appHTTP "github.com/staffly/hrms-backend-go/internal/handler/http"
	appCron "github.com/staffly/hrms-backend-go/internal/pkg/cron"
	"github.com/staffly/hrms-backend-go/internal/pkg/database"
	"github.com/staffly/hrms-backend-go/internal/pkg/jwt"
	"github.com/staffly/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffly/hrms-backend-go/internal/service/attendance"
	authService "github.com/staffly/hrms-backend-go/internal/service/auth"
	clientService "github.com/staffly/hrms-backend-go/internal/service/client"
	employeeService "github.com/staffly/hrms-backend-go/internal/service/employee"
	leaveService "github.com/staffly/hrms-backend-go/internal/service/leave"
	reportService "github.com/staffly/hrms-backend-go/internal/service/report"
	scheduleService "github.com/staffly/hrms-backend-go/internal/service/schedule"
	taskService "github.com/staffly/hrms-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	slotRepo := postgresql.NewSlotRepository(db)
	weekStatusRepo := postgresql.NewWeekStatusRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, balanceRepo, cfg.Leave)
	scheduleSvc := scheduleService.NewScheduleService(slotRepo, weekStatusRepo, employeeRepo)
	taskSvc := taskService.NewTaskService(taskRepo, slotRepo)
	leaveSvc := leaveService.NewLeaveService(balanceRepo, requestRepo, txManager)
	reportSvc := reportService.NewReportService(reportRepo, cfg.Report.TaskExemptEmployeeIDs)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	clientSvc := clientService.NewClientService(clientRepo, employeeRepo)

	scheduler := appCron.NewScheduler()
	leaveJobs := appCron.NewLeaveJobs(employeeRepo, balanceRepo, cfg.Leave)
	if err := leaveJobs.RegisterJobs(scheduler); err != nil {
		slog.Error("failed to register cron jobs", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("server starting", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
