package siteapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
)

type workerRepository struct {
	api *siteapi.Client
}

func NewWorkerRepository(api *siteapi.Client) worker.WorkerRepository {
	return &workerRepository{api: api}
}

func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	var out []worker.Worker
	if err := r.api.Get(ctx, "/api/workers", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return nonNil(out), nil
}

func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	var out worker.Worker
	if err := r.api.Post(ctx, "/api/workers", w, &out); err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return out, nil
}

func (r *workerRepository) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	var out worker.Worker
	if err := r.api.Put(ctx, idPath("/api/workers", w.ID), w, &out); err != nil {
		return worker.Worker{}, mapNotFound(fmt.Errorf("failed to update worker: %w", err), worker.ErrWorkerNotFound)
	}
	return out, nil
}

func (r *workerRepository) Delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, idPath("/api/workers", id)); err != nil {
		return mapNotFound(fmt.Errorf("failed to delete worker: %w", err), worker.ErrWorkerNotFound)
	}
	return nil
}

// mapNotFound joins the domain sentinel onto a backend 404 so handlers can match either.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, siteapi.ErrNotFound) {
		return errors.Join(sentinel, err)
	}
	return err
}
