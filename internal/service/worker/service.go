package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/filter"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
	authRepo   auth.AuthRepository
	stores     *store.Registry
	coord      *coordinator.Coordinator
}

func NewWorkerService(
	workerRepo worker.WorkerRepository,
	authRepo auth.AuthRepository,
	stores *store.Registry,
	coord *coordinator.Coordinator,
) worker.WorkerService {
	return &WorkerServiceImpl{
		workerRepo: workerRepo,
		authRepo:   authRepo,
		stores:     stores,
		coord:      coord,
	}
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, sess *session.Session, search string) (*worker.ListWorkerResponse, error) {
	if err := s.coord.Refresh(ctx, sess, "workers.list", "Failed to load workers", s.fetch(sess)); err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}
	return s.Cached(sess, search), nil
}

// Cached implements worker.WorkerService.
func (s *WorkerServiceImpl) Cached(sess *session.Session, search string) *worker.ListWorkerResponse {
	workers := filter.Apply(s.stores.For(sess.Key()).Workers(), filter.Workers(search))
	return &worker.ListWorkerResponse{Workers: workers, Total: len(workers)}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, sess *session.Session, req worker.WorkerRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name:     "workers.create",
		Validate: req.Validate,
		Call: func(ctx context.Context) error {
			_, err := s.workerRepo.Create(ctx, req.ToWorker())
			return err
		},
		Refresh:        s.fetch(sess),
		Loading:        "Adding worker...",
		Success:        "Worker added",
		Failure:        "Failed to save worker",
		RefreshFailure: "Failed to load workers",
	})
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, sess *session.Session, req worker.WorkerRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "workers.update",
		Validate: func() error {
			if req.ID == 0 {
				return worker.ErrWorkerNotFound
			}
			return req.Validate()
		},
		Call: func(ctx context.Context) error {
			_, err := s.workerRepo.Update(ctx, req.ToWorker())
			return err
		},
		Refresh:        s.fetch(sess),
		Loading:        "Updating worker...",
		Success:        "Worker updated",
		Failure:        "Failed to save worker",
		RefreshFailure: "Failed to load workers",
	})
}

// Delete implements worker.WorkerService.
func (s *WorkerServiceImpl) Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "workers.delete",
		Call: func(ctx context.Context) error {
			return s.workerRepo.Delete(ctx, id)
		},
		Refresh:        s.fetch(sess),
		Loading:        "Deleting worker...",
		Success:        "Worker deleted",
		Failure:        "Failed to delete worker",
		RefreshFailure: "Failed to load workers",
	})
}

// ResetPassword implements worker.WorkerService.
func (s *WorkerServiceImpl) ResetPassword(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "workers.resetPassword",
		Validate: func() error {
			if id <= 0 {
				return errors.New("worker id is required")
			}
			return nil
		},
		Call: func(ctx context.Context) error {
			return s.authRepo.ResetWorkerPassword(ctx, id)
		},
		Loading: "Resetting password...",
		Success: "Password reset to the worker's phone number",
		Failure: "Failed to reset password",
	})
}

func (s *WorkerServiceImpl) fetch(sess *session.Session) func(context.Context) error {
	st := s.stores.For(sess.Key())
	return func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SliceWorkers, s.workerRepo.List, st.CommitWorkers)
	}
}
