package filter

import (
	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

type workerDay struct {
	workerID int64
	date     calendar.Date
}

// AttendanceGuard rejects marking a worker twice for the same day, judged
// against the records currently loaded. The backend stays the authority.
type AttendanceGuard struct {
	marked map[workerDay]struct{}
}

func NewAttendanceGuard(loaded []attendance.Attendance) *AttendanceGuard {
	g := &AttendanceGuard{marked: make(map[workerDay]struct{}, len(loaded))}
	for _, a := range loaded {
		if id := a.WorkerID(); id != 0 {
			g.marked[workerDay{id, a.Date}] = struct{}{}
		}
	}
	return g
}

func (g *AttendanceGuard) Marked(workerID int64, date calendar.Date) bool {
	_, ok := g.marked[workerDay{workerID, date}]
	return ok
}

// Check returns ErrAttendanceAlreadyMarked when the pair is already recorded.
func (g *AttendanceGuard) Check(workerID int64, date calendar.Date) error {
	if g.Marked(workerID, date) {
		return attendance.ErrAttendanceAlreadyMarked
	}
	return nil
}

// Pending drops entries already recorded for date and repeats within the batch.
func (g *AttendanceGuard) Pending(date calendar.Date, entries []attendance.BulkEntry) []attendance.BulkEntry {
	seen := make(map[int64]struct{}, len(entries))
	out := make([]attendance.BulkEntry, 0, len(entries))
	for _, e := range entries {
		if g.Marked(e.WorkerID, date) {
			continue
		}
		if _, dup := seen[e.WorkerID]; dup {
			continue
		}
		seen[e.WorkerID] = struct{}{}
		out = append(out, e)
	}
	return out
}
