package attendance

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// AttendanceService drives the admin attendance page and the worker's own view.
type AttendanceService interface {
	// View loads attendance for rng (today when rng is open) along with workers.
	View(ctx context.Context, sess *session.Session, rng calendar.Range) (*ViewResponse, error)
	Cached(sess *session.Session, rng calendar.Range) *ViewResponse

	// MarkIndividual rejects a worker already marked for the day before calling the backend.
	MarkIndividual(ctx context.Context, sess *session.Session, req MarkRequest) (notification.Notice, error)
	// MarkBulk submits only the pending entries. With nothing pending it makes no call.
	MarkBulk(ctx context.Context, sess *session.Session, req BulkRequest) (notification.Notice, error)
	Update(ctx context.Context, sess *session.Session, req UpdateRequest) (notification.Notice, error)
	Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error)

	// Mine is the worker panel view over the worker's own records.
	Mine(ctx context.Context, sess *session.Session, rng calendar.Range) (*WorkerViewResponse, error)
}
