package project

import "context"

// ProjectRepository is the backend's project resource.
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (Project, error)
	Delete(ctx context.Context, id int64) error
}
