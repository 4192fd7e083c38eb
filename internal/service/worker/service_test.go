package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/servicetest"
	"github.com/sitemgmt/site-panel-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     worker.WorkerService
	workers *servicetest.Workers
	auth    *servicetest.Auth
	notices *servicetest.Notices
	stores  *store.Registry
}

func newFixture(ws ...worker.Worker) fixture {
	f := fixture{
		workers: &servicetest.Workers{Data: ws},
		auth:    &servicetest.Auth{},
		notices: &servicetest.Notices{},
		stores:  store.NewRegistry(),
	}
	f.svc = NewWorkerService(f.workers, f.auth, f.stores, coordinator.New(f.notices))
	return f
}

func TestList_FiltersByName(t *testing.T) {
	f := newFixture(
		worker.Worker{ID: 1, Name: "Ravi Kumar"},
		worker.Worker{ID: 2, Name: "Suresh"},
		worker.Worker{ID: 3, Name: "ravindra"},
	)
	admin := session.NewAdmin()

	resp, err := f.svc.List(context.Background(), admin, "RAVI")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(1), resp.Workers[0].ID)
	assert.Equal(t, int64(3), resp.Workers[1].ID)

	all := f.svc.Cached(admin, "  ")
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 1, f.workers.Count("list"), "Cached must not hit the backend")
}

func TestList_FailureNotifiesAndKeepsStore(t *testing.T) {
	f := newFixture(worker.Worker{ID: 1, Name: "Ravi"})
	admin := session.NewAdmin()
	_, err := f.svc.List(context.Background(), admin, "")
	require.NoError(t, err)

	f.workers.Err = errors.New("connection refused")
	_, err = f.svc.List(context.Background(), admin, "")
	assert.Error(t, err)
	assert.Equal(t, notification.LevelError, f.notices.Last().Level)
	assert.Equal(t, 1, f.svc.Cached(admin, "").Total)
}

func TestCreate_RefreshesList(t *testing.T) {
	f := newFixture()
	admin := session.NewAdmin()

	n, err := f.svc.Create(context.Background(), admin, worker.WorkerRequest{
		Name:       " Ravi ",
		Phone:      "9876543210",
		RatePerDay: decimal.NewFromInt(700),
	})
	require.NoError(t, err)
	assert.Equal(t, notification.LevelSuccess, n.Level)

	cached := f.svc.Cached(admin, "")
	require.Equal(t, 1, cached.Total)
	assert.Equal(t, "Ravi", cached.Workers[0].Name)
}

func TestCreate_InvalidMakesNoCall(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), session.NewAdmin(), worker.WorkerRequest{Name: "Ravi"})
	assert.Error(t, err)
	assert.Equal(t, 0, f.workers.Total())
	assert.Equal(t, []notification.Level{notification.LevelError}, f.notices.Levels())
}

func TestUpdate_RequiresID(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Update(context.Background(), session.NewAdmin(), worker.WorkerRequest{
		Name: "Ravi", Phone: "9876543210", RatePerDay: decimal.NewFromInt(700),
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
	assert.Equal(t, 0, f.workers.Total())
}

func TestDelete_FailureIsNotRetried(t *testing.T) {
	f := newFixture(worker.Worker{ID: 1, Name: "Ravi"})
	f.workers.Err = errors.New("500")

	n, err := f.svc.Delete(context.Background(), session.NewAdmin(), 1)
	assert.Error(t, err)
	assert.Equal(t, "Failed to delete worker", n.Message)
	assert.Equal(t, 1, f.workers.Count("delete"))
	assert.Equal(t, 0, f.workers.Count("list"))
}

func TestResetPassword(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ResetPassword(context.Background(), session.NewAdmin(), 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, f.auth.ResetWorkerIDs)

	_, err = f.svc.ResetPassword(context.Background(), session.NewAdmin(), 0)
	assert.Error(t, err)
	assert.Equal(t, 1, f.auth.Count("resetPassword"))
}
