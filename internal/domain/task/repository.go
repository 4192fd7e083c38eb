package task

import "context"

// TaskRepository is the backend's task resource.
type TaskRepository interface {
	List(ctx context.Context) ([]Task, error)
	ListByWorker(ctx context.Context, workerID int64) ([]Task, error)
	// Create posts under /{projectId}/{workerId}.
	Create(ctx context.Context, t Task) (Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
}
