package attendance

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// AttendanceRepository is the backend's attendance resource. The backend
// filters by range only when both bounds are set.
type AttendanceRepository interface {
	List(ctx context.Context, rng calendar.Range) ([]Attendance, error)
	ListByWorker(ctx context.Context, workerID int64, rng calendar.Range) ([]Attendance, error)
	Create(ctx context.Context, a Attendance) (Attendance, error)
	CreateBulk(ctx context.Context, records []Attendance) ([]Attendance, error)
	Update(ctx context.Context, a Attendance) (Attendance, error)
	Delete(ctx context.Context, id int64) error
}
