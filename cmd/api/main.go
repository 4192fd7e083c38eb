package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/sitemgmt/site-panel-go/internal/config"
	appHTTP "github.com/sitemgmt/site-panel-go/internal/handler/http"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/cookie"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
	"github.com/sitemgmt/site-panel-go/internal/pkg/sse"
	siteRepo "github.com/sitemgmt/site-panel-go/internal/repository/siteapi"
	attendanceService "github.com/sitemgmt/site-panel-go/internal/service/attendance"
	serviceAuth "github.com/sitemgmt/site-panel-go/internal/service/auth"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	dashboardService "github.com/sitemgmt/site-panel-go/internal/service/dashboard"
	notificationService "github.com/sitemgmt/site-panel-go/internal/service/notification"
	paymentService "github.com/sitemgmt/site-panel-go/internal/service/payment"
	projectService "github.com/sitemgmt/site-panel-go/internal/service/project"
	reportService "github.com/sitemgmt/site-panel-go/internal/service/report"
	taskService "github.com/sitemgmt/site-panel-go/internal/service/task"
	workerService "github.com/sitemgmt/site-panel-go/internal/service/worker"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc, _ := cfg.Location()
	clock := calendar.Clock{Location: loc}

	api, err := siteapi.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		slog.Error("Error creating backend client", "error", err)
		os.Exit(1)
	}

	workerRepo := siteRepo.NewWorkerRepository(api)
	projectRepo := siteRepo.NewProjectRepository(api)
	attendanceRepo := siteRepo.NewAttendanceRepository(api)
	taskRepo := siteRepo.NewTaskRepository(api)
	paymentRepo := siteRepo.NewPaymentRepository(api)
	dashboardRepo := siteRepo.NewDashboardRepository(api)
	authRepo := siteRepo.NewAuthRepository(api)

	stores := store.NewBoundedRegistry(cfg.Session.MaxStores)
	hub := sse.NewHub(16)
	notifService := notificationService.NewNotificationService(hub)
	coord := coordinator.New(notifService)

	authSvc := serviceAuth.NewAuthService(authRepo, stores, hub, coord)
	workerSvc := workerService.NewWorkerService(workerRepo, authRepo, stores, coord)
	projectSvc := projectService.NewProjectService(projectRepo, stores, coord)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo, stores, coord, clock)
	taskSvc := taskService.NewTaskService(taskRepo, stores, coord, clock, cfg.Panel.DueSoonDays)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, workerRepo, stores, coord, clock)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, taskRepo, attendanceRepo, paymentRepo, stores, coord, clock)
	reportSvc := reportService.NewReportService(workerRepo, attendanceRepo, paymentRepo, coord)

	cookies := cookie.NewManager(cfg.Session.CookiePath, cfg.Session.CookieSecure)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.App.FrontendOrigins,
		Cookies:        cookies,
	}, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, cookies),
		Worker:       appHTTP.NewWorkerHandler(workerSvc),
		Project:      appHTTP.NewProjectHandler(projectSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Payment:      appHTTP.NewPaymentHandler(paymentSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Notification: appHTTP.NewNotificationHandler(notifService),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// End notice streams on shutdown.
	srv.RegisterOnShutdown(hub.CloseAll)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", srv.Addr, "backend", cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
