package worker

import "context"

// WorkerRepository is the backend's worker resource.
type WorkerRepository interface {
	List(ctx context.Context) ([]Worker, error)
	Create(ctx context.Context, w Worker) (Worker, error)
	Update(ctx context.Context, w Worker) (Worker, error)
	Delete(ctx context.Context, id int64) error
}
