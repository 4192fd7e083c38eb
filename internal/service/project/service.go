package project

import (
	"context"
	"fmt"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/filter"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
	stores      *store.Registry
	coord       *coordinator.Coordinator
}

func NewProjectService(projectRepo project.ProjectRepository, stores *store.Registry, coord *coordinator.Coordinator) project.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		stores:      stores,
		coord:       coord,
	}
}

func (s *ProjectServiceImpl) List(ctx context.Context, sess *session.Session, f project.ProjectFilter) (*project.ListProjectResponse, error) {
	if err := s.coord.Refresh(ctx, sess, "projects.list", "Failed to load projects", s.fetch(sess)); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return s.Cached(sess, f), nil
}

// Cached counts statuses over every loaded project, not only the filtered ones.
func (s *ProjectServiceImpl) Cached(sess *session.Session, f project.ProjectFilter) *project.ListProjectResponse {
	all := s.stores.For(sess.Key()).Projects()

	var counts project.StatusCounts
	for _, p := range all {
		switch p.Status {
		case project.StatusActive:
			counts.Active++
		case project.StatusPending:
			counts.Pending++
		case project.StatusCompleted:
			counts.Completed++
		}
	}

	projects := filter.Apply(all, filter.Projects(f))
	return &project.ListProjectResponse{
		Projects: projects,
		Total:    len(projects),
		Counts:   counts,
	}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, sess *session.Session, req project.ProjectRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name:     "projects.create",
		Validate: req.Validate,
		Call: func(ctx context.Context) error {
			_, err := s.projectRepo.Create(ctx, req.ToProject())
			return err
		},
		Refresh:        s.fetch(sess),
		Loading:        "Adding project...",
		Success:        "Project added",
		Failure:        "Failed to save project",
		RefreshFailure: "Failed to load projects",
	})
}

func (s *ProjectServiceImpl) Update(ctx context.Context, sess *session.Session, req project.ProjectRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "projects.update",
		Validate: func() error {
			if req.ID == 0 {
				return project.ErrProjectNotFound
			}
			return req.Validate()
		},
		Call: func(ctx context.Context) error {
			_, err := s.projectRepo.Update(ctx, req.ToProject())
			return err
		},
		Refresh:        s.fetch(sess),
		Loading:        "Updating project...",
		Success:        "Project updated",
		Failure:        "Failed to save project",
		RefreshFailure: "Failed to load projects",
	})
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "projects.delete",
		Call: func(ctx context.Context) error {
			return s.projectRepo.Delete(ctx, id)
		},
		Refresh:        s.fetch(sess),
		Loading:        "Deleting project...",
		Success:        "Project deleted",
		Failure:        "Failed to delete project",
		RefreshFailure: "Failed to load projects",
	})
}

func (s *ProjectServiceImpl) UpdateStatus(ctx context.Context, sess *session.Session, req project.UpdateStatusRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name:     "projects.status",
		Validate: req.Validate,
		Call: func(ctx context.Context) error {
			_, err := s.projectRepo.UpdateStatus(ctx, req.ID, req.Status)
			return err
		},
		Refresh:        s.fetch(sess),
		Loading:        "Updating status...",
		Success:        "Status updated",
		Failure:        "Failed to update status",
		RefreshFailure: "Failed to load projects",
	})
}

func (s *ProjectServiceImpl) fetch(sess *session.Session) func(context.Context) error {
	st := s.stores.For(sess.Key())
	return func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SliceProjects, s.projectRepo.List, st.CommitProjects)
	}
}
