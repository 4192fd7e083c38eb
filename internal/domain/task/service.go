package task

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

// TaskService drives the admin task page and the worker task board.
type TaskService interface {
	List(ctx context.Context, sess *session.Session, filter TaskFilter) (*ListTaskResponse, error)
	Cached(sess *session.Session, filter TaskFilter) *ListTaskResponse

	Create(ctx context.Context, sess *session.Session, req TaskRequest) (notification.Notice, error)
	Update(ctx context.Context, sess *session.Session, req TaskRequest) (notification.Notice, error)
	Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error)

	// UpdateStatus lets an admin set any status. A worker may only move their
	// own task forward.
	UpdateStatus(ctx context.Context, sess *session.Session, req UpdateStatusRequest) (notification.Notice, error)

	Mine(ctx context.Context, sess *session.Session, q WorkerTaskQuery) (*WorkerTaskResponse, error)
	CachedMine(sess *session.Session, q WorkerTaskQuery) *WorkerTaskResponse
}
