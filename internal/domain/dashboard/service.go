package dashboard

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

// DashboardService builds the two landing pages.
type DashboardService interface {
	// Admin loads the backend summary, tasks and payments in parallel. A failed
	// summary yields zeroed figures and an error notice, not an error.
	Admin(ctx context.Context, sess *session.Session) (*AdminDashboardResponse, error)

	// Worker loads the worker's attendance, tasks and payments in parallel.
	Worker(ctx context.Context, sess *session.Session) (*WorkerDashboardResponse, error)
}
