package project

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

// ProjectService drives the admin projects page.
type ProjectService interface {
	// List fetches projects into the session store and returns the filtered page.
	List(ctx context.Context, sess *session.Session, filter ProjectFilter) (*ListProjectResponse, error)
	// Cached computes the page from what the store already holds.
	Cached(sess *session.Session, filter ProjectFilter) *ListProjectResponse

	Create(ctx context.Context, sess *session.Session, req ProjectRequest) (notification.Notice, error)
	Update(ctx context.Context, sess *session.Session, req ProjectRequest) (notification.Notice, error)
	Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error)
	UpdateStatus(ctx context.Context, sess *session.Session, req UpdateStatusRequest) (notification.Notice, error)
}
