package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/cookie"
	"github.com/sitemgmt/site-panel-go/internal/pkg/sse"
	attendanceService "github.com/sitemgmt/site-panel-go/internal/service/attendance"
	authService "github.com/sitemgmt/site-panel-go/internal/service/auth"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	dashboardService "github.com/sitemgmt/site-panel-go/internal/service/dashboard"
	paymentService "github.com/sitemgmt/site-panel-go/internal/service/payment"
	projectService "github.com/sitemgmt/site-panel-go/internal/service/project"
	reportService "github.com/sitemgmt/site-panel-go/internal/service/report"
	"github.com/sitemgmt/site-panel-go/internal/service/servicetest"
	taskService "github.com/sitemgmt/site-panel-go/internal/service/task"
	workerService "github.com/sitemgmt/site-panel-go/internal/service/worker"
	"github.com/sitemgmt/site-panel-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = calendar.MustParse("2024-06-10")

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
	Notice  *notification.Notice  `json:"notice"`
}

type testEnv struct {
	router     http.Handler
	workers    *servicetest.Workers
	attendance *servicetest.Attendance
	tasks      *servicetest.Tasks
	auth       *servicetest.Auth
	notices    *servicetest.Notices
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ravi := worker.Worker{ID: 4, Name: "Ravi", Phone: "9876543210", RatePerDay: decimal.NewFromInt(600)}

	env := &testEnv{
		workers: &servicetest.Workers{Data: []worker.Worker{ravi, {ID: 5, Name: "Suresh", RatePerDay: decimal.NewFromInt(500)}}},
		attendance: &servicetest.Attendance{Data: []attendance.Attendance{
			{ID: 1, Worker: &worker.Ref{ID: 4, Name: "Ravi"}, Date: today, Status: attendance.StatusPresent},
		}},
		tasks: &servicetest.Tasks{Data: []task.Task{
			{ID: 9, TaskName: "Pour slab", Status: task.StatusCompleted, Worker: &worker.Ref{ID: 4}},
		}},
		auth: &servicetest.Auth{
			AdminPassword: "admin123",
			Workers:       map[string]auth.WorkerLoginResult{"9876543210": {Worker: ravi, MustResetPassword: true}},
			Passwords:     map[string]string{"9876543210": "9876543210"},
		},
		notices: &servicetest.Notices{},
	}

	stores := store.NewRegistry()
	coord := coordinator.New(env.notices)
	clock := calendar.FixedClock(today)
	projects := &servicetest.Projects{}
	payments := &servicetest.Payments{Today: today}
	cookies := cookie.NewManager("/", false)

	env.router = NewRouter(RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}, Cookies: cookies}, Handlers{
		Auth:         NewAuthHandler(authService.NewAuthService(env.auth, stores, sse.NewHub(1), coord), cookies),
		Worker:       NewWorkerHandler(workerService.NewWorkerService(env.workers, env.auth, stores, coord)),
		Project:      NewProjectHandler(projectService.NewProjectService(projects, stores, coord)),
		Attendance:   NewAttendanceHandler(attendanceService.NewAttendanceService(env.attendance, env.workers, stores, coord, clock)),
		Task:         NewTaskHandler(taskService.NewTaskService(env.tasks, stores, coord, clock, 3)),
		Payment:      NewPaymentHandler(paymentService.NewPaymentService(payments, env.workers, stores, coord, clock)),
		Dashboard:    NewDashboardHandler(dashboardService.NewDashboardService(&servicetest.Dashboard{}, env.tasks, env.attendance, payments, stores, coord, clock)),
		Report:       NewReportHandler(reportService.NewReportService(env.workers, env.attendance, payments, coord)),
		Notification: NewNotificationHandler(env.notices),
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, target string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func adminCookie() *http.Cookie {
	return &http.Cookie{Name: cookie.AdminName, Value: "true"}
}

func workerCookie(t *testing.T, mustReset bool) *http.Cookie {
	t.Helper()
	value, err := cookie.EncodeWorker(session.NewWorker(session.Profile{ID: 4, Name: "Ravi"}, mustReset))
	require.NoError(t, err)
	return &http.Cookie{Name: cookie.WorkerName, Value: value}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/v1/auth/admin/login", auth.LoginRequest{Phone: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	assert.Nil(t, findCookie(rec, cookie.AdminName))

	rec, body = env.do(t, http.MethodPost, "/api/v1/auth/admin/login", auth.LoginRequest{Phone: "admin", Password: "admin123"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	c := findCookie(rec, cookie.AdminName)
	require.NotNil(t, c)
	assert.Equal(t, "true", c.Value)

	rec, _ = env.do(t, http.MethodPost, "/api/v1/auth/admin/login", map[string]string{"phone": "admin"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdminRoutes_RequireAdminCookie(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{"/api/v1/workers", "/api/v1/dashboard", "/api/v1/tasks", "/api/v1/payments"} {
		rec, body := env.do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.False(t, body.Success, target)

		rec, _ = env.do(t, http.MethodGet, target, nil, workerCookie(t, false))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
	assert.Zero(t, env.workers.Total())
}

func TestWorkers_ListAndCreate(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/workers?q=rav", nil, adminCookie())
	require.Equal(t, http.StatusOK, rec.Code)
	var list worker.ListWorkerResponse
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "Ravi", list.Workers[0].Name)

	rec, body = env.do(t, http.MethodPost, "/api/v1/workers", map[string]any{"name": "", "phone": "123"}, adminCookie())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body.Error.Details, "name")
	assert.Equal(t, 0, env.workers.Count("create"))

	rec, body = env.do(t, http.MethodPost, "/api/v1/workers", map[string]any{
		"name": "Anil", "phone": "9123456780", "ratePerDay": "550",
	}, adminCookie())
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, body.Notice)
	assert.Equal(t, notification.LevelSuccess, body.Notice.Level)
	assert.Equal(t, "Worker added", body.Message)
	assert.Equal(t, 1, env.workers.Count("create"))
}

func TestWorkers_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	rec, body := env.do(t, http.MethodDelete, "/api/v1/workers/abc", nil, adminCookie())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
}

func TestAttendance_DuplicateMarkIsConflict(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodGet, "/api/v1/attendance?from=2024-06-10&to=2024-06-10", nil, adminCookie())
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := env.do(t, http.MethodPost, "/api/v1/attendance", map[string]any{"workerId": 4, "date": "2024-06-10"}, adminCookie())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, 0, env.attendance.Count("create"))

	rec, _ = env.do(t, http.MethodPost, "/api/v1/attendance", map[string]any{"workerId": 5, "date": "2024-06-10"}, adminCookie())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, env.attendance.Count("create"))
}

func TestAttendance_BulkWithEmptyBody(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodGet, "/api/v1/attendance", nil, adminCookie())
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/bulk", nil)
	req.AddCookie(adminCookie())
	out := httptest.NewRecorder()
	env.router.ServeHTTP(out, req)

	require.Equal(t, http.StatusOK, out.Code)
	assert.Equal(t, 1, env.attendance.Count("bulk"))
	require.Len(t, env.attendance.Created, 1)
	assert.Len(t, env.attendance.Created[0], 1, "worker 4 is already marked today")
}

func TestWorkerLogin_ResetFlow(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/v1/auth/worker/login", auth.LoginRequest{Phone: "9876543210", Password: "9876543210"})
	require.Equal(t, http.StatusOK, rec.Code)
	var login auth.LoginResponse
	require.NoError(t, json.Unmarshal(body.Data, &login))
	assert.True(t, login.MustResetPassword)
	first := findCookie(rec, cookie.WorkerName)
	require.NotNil(t, first)

	rec, body = env.do(t, http.MethodGet, "/api/v1/me", nil, first)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "RESET_REQUIRED", body.Error.Code)

	rec, _ = env.do(t, http.MethodPost, "/api/v1/auth/worker/change-password",
		auth.ChangePasswordRequest{NewPassword: "secret1", ConfirmPassword: "secret2"}, first)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = env.do(t, http.MethodPost, "/api/v1/auth/worker/change-password",
		auth.ChangePasswordRequest{NewPassword: "secret1", ConfirmPassword: "secret1"}, first)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.auth.Changed, 1)
	assert.Equal(t, int64(4), env.auth.Changed[0].WorkerID)
	second := findCookie(rec, cookie.WorkerName)
	require.NotNil(t, second)

	rec, body = env.do(t, http.MethodGet, "/api/v1/me", nil, second)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(body.Data, &login))
	assert.False(t, login.MustResetPassword)
	assert.Equal(t, "Ravi", login.Worker.Name)
}

func TestWorkerTasks_CannotMoveBackward(t *testing.T) {
	env := newTestEnv(t)
	c := workerCookie(t, false)

	rec, _ := env.do(t, http.MethodGet, "/api/v1/me/tasks?month=2024-06", nil, c)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := env.do(t, http.MethodPatch, "/api/v1/me/tasks/9/status", map[string]string{"status": "Pending"}, c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
	assert.Equal(t, 0, env.tasks.Count("status"))

	rec, _ = env.do(t, http.MethodGet, "/api/v1/me/tasks?month=June", nil, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportExport(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/payroll.xlsx?month=6&year=2024", nil)
	req.AddCookie(adminCookie())
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payroll-2024-06.xlsx")
	assert.NotZero(t, rec.Body.Len())

	rec, body := env.do(t, http.MethodGet, "/api/v1/reports/payroll?month=13&year=2024", nil, adminCookie())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body.Error.Details, "month")
}

func TestLogout_ClearsBothCookies(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/v1/auth/logout", nil, adminCookie(), workerCookie(t, false))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)

	for _, name := range []string{cookie.AdminName, cookie.WorkerName} {
		c := findCookie(rec, name)
		require.NotNil(t, c, name)
		assert.Equal(t, -1, c.MaxAge, name)
	}
}
