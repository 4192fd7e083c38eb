package worker

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

// WorkerService drives the admin workers page.
type WorkerService interface {
	List(ctx context.Context, sess *session.Session, search string) (*ListWorkerResponse, error)
	Cached(sess *session.Session, search string) *ListWorkerResponse

	Create(ctx context.Context, sess *session.Session, req WorkerRequest) (notification.Notice, error)
	Update(ctx context.Context, sess *session.Session, req WorkerRequest) (notification.Notice, error)
	Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error)

	// ResetPassword forces the worker's password back to their phone number.
	ResetPassword(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error)
}
