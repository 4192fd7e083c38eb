package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/middleware"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
	"github.com/sitemgmt/site-panel-go/internal/pkg/cookie"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Cookies        *cookie.Manager
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth         AuthHandler
	Worker       WorkerHandler
	Project      ProjectHandler
	Attendance   AttendanceHandler
	Task         TaskHandler
	Payment      PaymentHandler
	Dashboard    DashboardHandler
	Report       ReportHandler
	Notification NotificationHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	adminOnly := middleware.AdminRequired(cfg.Cookies)
	workerOnly := middleware.WorkerRequired(cfg.Cookies)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/admin/login", h.Auth.AdminLogin)
			r.Post("/worker/login", h.Auth.WorkerLogin)
			r.Post("/logout", h.Auth.Logout)
			// Reachable while a password reset is pending.
			r.With(middleware.WorkerSession(cfg.Cookies)).Post("/worker/change-password", h.Auth.ChangePassword)
		})

		r.With(middleware.AnySession(cfg.Cookies)).Get("/notifications/stream", h.Notification.Stream)

		// Admin panel
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)
				r.Put("/{id}", h.Worker.Update)
				r.Delete("/{id}", h.Worker.Delete)
				r.Post("/{id}/reset-password", h.Worker.ResetPassword)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Post("/", h.Project.Create)
				r.Put("/{id}", h.Project.Update)
				r.Delete("/{id}", h.Project.Delete)
				r.Patch("/{id}/status", h.Project.UpdateStatus)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.View)
				r.Post("/", h.Attendance.Mark)
				r.Post("/bulk", h.Attendance.MarkBulk)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Post("/", h.Task.Create)
				r.Put("/{id}", h.Task.Update)
				r.Delete("/{id}", h.Task.Delete)
				r.Patch("/{id}/status", h.Task.UpdateStatus)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", h.Payment.List)
				r.Post("/", h.Payment.Create)
				r.Delete("/{id}", h.Payment.Delete)
				r.Post("/auto-salary", h.Payment.AutoSalary)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/payroll", h.Report.GetPayrollReport)
				r.Get("/payroll.xlsx", h.Report.ExportPayrollReport)
			})
		})

		// Worker panel
		r.Route("/me", func(r chi.Router) {
			r.Use(workerOnly)

			r.Get("/", h.Auth.Me)
			r.Get("/dashboard", h.Dashboard.GetMyDashboard)
			r.Get("/attendance", h.Attendance.GetMyAttendance)
			r.Get("/tasks", h.Task.GetMyTasks)
			r.Patch("/tasks/{id}/status", h.Task.UpdateStatus)
			r.Get("/payments", h.Payment.GetMyPayments)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
