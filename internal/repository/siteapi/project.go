package siteapi

import (
	"context"
	"fmt"

	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
)

type projectRepository struct {
	api *siteapi.Client
}

func NewProjectRepository(api *siteapi.Client) project.ProjectRepository {
	return &projectRepository{api: api}
}

func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	if err := r.api.Get(ctx, "/api/projects", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return nonNil(out), nil
}

func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	var out project.Project
	if err := r.api.Post(ctx, "/api/projects", p, &out); err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return out, nil
}

func (r *projectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	var out project.Project
	if err := r.api.Put(ctx, idPath("/api/projects", p.ID), p, &out); err != nil {
		return project.Project{}, mapNotFound(fmt.Errorf("failed to update project: %w", err), project.ErrProjectNotFound)
	}
	return out, nil
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id int64, status project.Status) (project.Project, error) {
	var out project.Project
	body := map[string]project.Status{"status": status}
	if err := r.api.Patch(ctx, idPath("/api/projects", id)+"/status", body, &out); err != nil {
		return project.Project{}, mapNotFound(fmt.Errorf("failed to update project status: %w", err), project.ErrProjectNotFound)
	}
	return out, nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, idPath("/api/projects", id)); err != nil {
		return mapNotFound(fmt.Errorf("failed to delete project: %w", err), project.ErrProjectNotFound)
	}
	return nil
}
