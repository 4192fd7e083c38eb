package siteapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBackend(t *testing.T, r chi.Router) *siteapi.Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	api, err := siteapi.New(srv.URL, time.Second)
	require.NoError(t, err)
	return api
}

func readJSON(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestWorkerRepository_ListNoContent(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/workers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	repo := NewWorkerRepository(setupBackend(t, r))

	workers, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, workers)
	assert.Empty(t, workers)
}

func TestWorkerRepository_DeleteNotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/api/workers/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNotFound)
	})
	repo := NewWorkerRepository(setupBackend(t, r))

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
	assert.ErrorIs(t, err, siteapi.ErrNotFound)
}

func TestProjectRepository_UpdateStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Patch("/api/projects/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, map[string]any{"status": "Completed"}, readJSON(t, r))
		json.NewEncoder(w).Encode(project.Project{ID: 3, Status: project.StatusCompleted})
	})
	repo := NewProjectRepository(setupBackend(t, r))

	p, err := repo.UpdateStatus(context.Background(), 3, project.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, project.StatusCompleted, p.Status)
}

func TestAttendanceRepository_RangeQuery(t *testing.T) {
	var gotQuery []string
	r := chi.NewRouter()
	r.Get("/api/attendance", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = append(gotQuery, r.URL.RawQuery)
		w.Write([]byte(`[{"id":1,"worker":{"id":5,"name":"Ravi"},"date":"2024-05-01","status":"Present","overtimeHours":2,"totalPay":900}]`))
	})
	repo := NewAttendanceRepository(setupBackend(t, r))
	ctx := context.Background()

	from, to := calendar.MustParse("2024-05-01"), calendar.MustParse("2024-05-31")
	records, err := repo.List(ctx, calendar.Range{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(5), records[0].WorkerID())
	assert.Equal(t, "Ravi", records[0].Worker.Name)
	assert.True(t, records[0].TotalPay.Equal(decimal.NewFromInt(900)))

	_, err = repo.List(ctx, calendar.Range{From: &from})
	require.NoError(t, err)

	assert.Equal(t, []string{"from=2024-05-01&to=2024-05-31", ""}, gotQuery)
}

func TestAttendanceRepository_CreateSendsIDOnlyRefs(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/attendance", func(w http.ResponseWriter, r *http.Request) {
		body := readJSON(t, r)
		assert.Equal(t, map[string]any{"id": float64(5)}, body["worker"])
		assert.Equal(t, map[string]any{"id": float64(2)}, body["project"])
		assert.Equal(t, "2024-05-01", body["date"])
		w.Write([]byte(`{"id":10}`))
	})
	repo := NewAttendanceRepository(setupBackend(t, r))

	out, err := repo.Create(context.Background(), attendance.Attendance{
		Worker:  worker.RefTo(5),
		Project: project.RefTo(2),
		Date:    calendar.MustParse("2024-05-01"),
		Status:  attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
}

func TestTaskRepository_CreatePath(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/tasks/{projectId}/{workerId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", chi.URLParam(r, "projectId"))
		assert.Equal(t, "5", chi.URLParam(r, "workerId"))
		assert.Equal(t, "Pour slab", readJSON(t, r)["taskName"])
		w.Write([]byte(`{"id":7,"taskName":"Pour slab","status":"Pending"}`))
	})
	repo := NewTaskRepository(setupBackend(t, r))

	out, err := repo.Create(context.Background(), task.Task{
		TaskName: "Pour slab",
		Status:   task.StatusPending,
		Worker:   worker.RefTo(5),
		Project:  project.RefTo(2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
}

func TestPaymentRepository_AddFlatBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/payments/add", func(w http.ResponseWriter, r *http.Request) {
		body := readJSON(t, r)
		assert.Equal(t, float64(5), body["workerId"])
		assert.Equal(t, "Advance", body["type"])
		assert.Equal(t, "500", body["amount"])
		assert.Equal(t, "festival", body["note"])
		w.Write([]byte(`{"id":1,"type":"Advance","amount":500.0,"date":"2024-05-02"}`))
	})
	repo := NewPaymentRepository(setupBackend(t, r))

	p, err := repo.Add(context.Background(), payment.PaymentRequest{
		WorkerID: 5,
		Type:     payment.TypeAdvance,
		Amount:   decimal.NewFromInt(500),
		Note:     "festival",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", p.Date.String())
}

func TestAuthRepository_AdminLogin(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		body := readJSON(t, r)
		if body["password"] != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid credentials"))
			return
		}
		w.Write([]byte("LOGIN_SUCCESS"))
	})
	repo := NewAuthRepository(setupBackend(t, r))
	ctx := context.Background()

	assert.NoError(t, repo.AdminLogin(ctx, auth.LoginRequest{Phone: "9999999999", Password: "admin123"}))

	err := repo.AdminLogin(ctx, auth.LoginRequest{Phone: "9999999999", Password: "nope"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthRepository_WorkerLogin(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/worker/login", func(w http.ResponseWriter, r *http.Request) {
		body := readJSON(t, r)
		if body["password"] != "9876543210" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status":500,"error":"Internal Server Error","message":"Invalid credentials"}`))
			return
		}
		w.Write([]byte(`{"worker":{"id":5,"name":"Ravi","phone":"9876543210","ratePerDay":800},"mustResetPassword":true}`))
	})
	repo := NewAuthRepository(setupBackend(t, r))
	ctx := context.Background()

	res, err := repo.WorkerLogin(ctx, auth.LoginRequest{Phone: "9876543210", Password: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Worker.ID)
	assert.True(t, res.MustResetPassword)

	_, err = repo.WorkerLogin(ctx, auth.LoginRequest{Phone: "9876543210", Password: "bad"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
