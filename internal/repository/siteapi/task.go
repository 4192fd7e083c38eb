package siteapi

import (
	"context"
	"fmt"

	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
)

type taskRepository struct {
	api *siteapi.Client
}

func NewTaskRepository(api *siteapi.Client) task.TaskRepository {
	return &taskRepository{api: api}
}

func (r *taskRepository) List(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	if err := r.api.Get(ctx, "/api/tasks", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return nonNil(out), nil
}

func (r *taskRepository) ListByWorker(ctx context.Context, workerID int64) ([]task.Task, error) {
	var out []task.Task
	if err := r.api.Get(ctx, idPath("/api/tasks/worker", workerID), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list tasks for worker %d: %w", workerID, err)
	}
	return nonNil(out), nil
}

func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	var out task.Task
	p := fmt.Sprintf("/api/tasks/%d/%d", t.Project.RefID(), t.Worker.RefID())
	if err := r.api.Post(ctx, p, t, &out); err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return out, nil
}

func (r *taskRepository) Update(ctx context.Context, t task.Task) (task.Task, error) {
	var out task.Task
	if err := r.api.Put(ctx, idPath("/api/tasks", t.ID), t, &out); err != nil {
		return task.Task{}, mapNotFound(fmt.Errorf("failed to update task: %w", err), task.ErrTaskNotFound)
	}
	return out, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status task.Status) error {
	body := map[string]task.Status{"status": status}
	if err := r.api.Patch(ctx, idPath("/api/tasks", id)+"/status", body, nil); err != nil {
		return mapNotFound(fmt.Errorf("failed to update task status: %w", err), task.ErrTaskNotFound)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, idPath("/api/tasks", id)); err != nil {
		return mapNotFound(fmt.Errorf("failed to delete task: %w", err), task.ErrTaskNotFound)
	}
	return nil
}
