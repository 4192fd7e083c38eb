package attendance

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/service/aggregate"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/filter"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
	stores         *store.Registry
	coord          *coordinator.Coordinator
	clock          calendar.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	stores *store.Registry,
	coord *coordinator.Coordinator,
	clock calendar.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		stores:         stores,
		coord:          coord,
		clock:          clock,
	}
}

// View loads workers and the range's attendance side by side.
func (s *AttendanceServiceImpl) View(ctx context.Context, sess *session.Session, rng calendar.Range) (*attendance.ViewResponse, error) {
	rng = s.orToday(rng)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.coord.Refresh(gctx, sess, "workers.list", "Failed to fetch workers", s.fetchWorkers(sess))
	})
	g.Go(func() error {
		return s.coord.Refresh(gctx, sess, "attendance.list", "Failed to fetch attendance", s.fetchAttendance(sess, rng))
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	return s.Cached(sess, rng), nil
}

func (s *AttendanceServiceImpl) Cached(sess *session.Session, rng calendar.Range) *attendance.ViewResponse {
	rng = s.orToday(rng)
	st := s.stores.For(sess.Key())
	workers := st.Workers()
	loaded, _ := st.Attendance()

	names := make(map[int64]string, len(workers))
	for _, w := range workers {
		names[w.ID] = w.Name
	}
	records := filter.Apply(loaded, filter.Attendance(rng))
	sortByWorkerName(records, names)

	day := s.clock.Today()
	if rng.Bounded() && *rng.From == *rng.To {
		day = *rng.From
	}
	guard := filter.NewAttendanceGuard(loaded)
	draft := make([]attendance.DraftRow, 0, len(workers))
	for _, w := range workers {
		draft = append(draft, attendance.DraftRow{
			WorkerID:    w.ID,
			WorkerName:  w.Name,
			ProjectName: projectName(w),
			Status:      attendance.StatusPresent,
			Marked:      guard.Marked(w.ID, day),
		})
	}

	return &attendance.ViewResponse{
		Range:   rng,
		Records: records,
		Summary: aggregate.Attendance(records),
		Draft:   draft,
	}
}

func (s *AttendanceServiceImpl) MarkIndividual(ctx context.Context, sess *session.Session, req attendance.MarkRequest) (notification.Notice, error) {
	if req.Date == nil {
		today := s.clock.Today()
		req.Date = &today
	}
	st := s.stores.For(sess.Key())

	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "attendance.mark",
		Validate: func() error {
			if err := req.Validate(); err != nil {
				return err
			}
			loaded, _ := st.Attendance()
			return filter.NewAttendanceGuard(loaded).Check(req.WorkerID, *req.Date)
		},
		Call: func(ctx context.Context) error {
			_, err := s.attendanceRepo.Create(ctx, s.record(st, req.WorkerID, *req.Date, req.Status, req.OvertimeHours))
			return err
		},
		Refresh:        s.refetch(sess, *req.Date),
		Loading:        "Marking attendance...",
		Success:        "Attendance marked",
		Failure:        "Failed to mark attendance",
		RefreshFailure: "Failed to fetch attendance",
	})
}

// MarkBulk submits the entries not yet recorded for the day in one request.
func (s *AttendanceServiceImpl) MarkBulk(ctx context.Context, sess *session.Session, req attendance.BulkRequest) (notification.Notice, error) {
	if req.Date == nil {
		today := s.clock.Today()
		req.Date = &today
	}
	st := s.stores.For(sess.Key())
	if len(req.Entries) == 0 {
		for _, w := range st.Workers() {
			req.Entries = append(req.Entries, attendance.BulkEntry{WorkerID: w.ID, Status: attendance.StatusPresent})
		}
	}
	if err := req.Validate(); err != nil {
		return s.coord.Fail(ctx, sess, err.Error()), err
	}

	loaded, _ := st.Attendance()
	pending := filter.NewAttendanceGuard(loaded).Pending(*req.Date, req.Entries)
	if len(pending) == 0 {
		slog.InfoContext(ctx, "bulk attendance skipped", "date", req.Date.String(), "entries", len(req.Entries))
		return s.coord.Info(ctx, sess, attendance.ErrNothingToMark.Error()), nil
	}

	records := make([]attendance.Attendance, len(pending))
	for i, e := range pending {
		records[i] = s.record(st, e.WorkerID, *req.Date, e.Status, e.OvertimeHours)
	}

	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "attendance.bulk",
		Call: func(ctx context.Context) error {
			_, err := s.attendanceRepo.CreateBulk(ctx, records)
			return err
		},
		Refresh:        s.refetch(sess, *req.Date),
		Loading:        "Marking attendance...",
		Success:        fmt.Sprintf("Attendance marked for %d workers", len(records)),
		Failure:        "Failed to mark attendance",
		RefreshFailure: "Failed to fetch attendance",
	})
}

// Update edits the loaded record; only status and overtime change.
func (s *AttendanceServiceImpl) Update(ctx context.Context, sess *session.Session, req attendance.UpdateRequest) (notification.Notice, error) {
	st := s.stores.For(sess.Key())
	rec, found := st.AttendanceRecord(req.ID)

	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "attendance.update",
		Validate: func() error {
			if !found {
				return attendance.ErrAttendanceNotFound
			}
			return req.Validate()
		},
		Call: func(ctx context.Context) error {
			_, err := s.attendanceRepo.Update(ctx, attendance.Attendance{
				ID:            rec.ID,
				Worker:        worker.RefTo(rec.WorkerID()),
				Project:       project.RefTo(rec.Project.RefID()),
				Date:          rec.Date,
				Status:        req.Status,
				OvertimeHours: req.OvertimeHours,
			})
			return err
		},
		Refresh:        s.refetch(sess, rec.Date),
		Loading:        "Updating...",
		Success:        "Attendance updated",
		Failure:        "Failed to update attendance",
		RefreshFailure: "Failed to fetch attendance",
	})
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error) {
	rec, _ := s.stores.For(sess.Key()).AttendanceRecord(id)
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "attendance.delete",
		Call: func(ctx context.Context) error {
			return s.attendanceRepo.Delete(ctx, id)
		},
		Refresh:        s.refetch(sess, rec.Date),
		Loading:        "Deleting...",
		Success:        "Deleted",
		Failure:        "Failed to delete attendance",
		RefreshFailure: "Failed to fetch attendance",
	})
}

// Mine loads all of the worker's records; the summary covers them all while
// Records honours rng.
func (s *AttendanceServiceImpl) Mine(ctx context.Context, sess *session.Session, rng calendar.Range) (*attendance.WorkerViewResponse, error) {
	if !sess.IsWorker() {
		return nil, session.ErrWorkerRequired
	}
	st := s.stores.For(sess.Key())
	fetch := func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SliceAttendance,
			func(ctx context.Context) ([]attendance.Attendance, error) {
				return s.attendanceRepo.ListByWorker(ctx, sess.WorkerID(), calendar.Range{})
			},
			func(t store.Ticket, as []attendance.Attendance) error {
				return st.CommitAttendance(t, calendar.Range{}, as)
			})
	}
	if err := s.coord.Refresh(ctx, sess, "attendance.mine", "Failed to load attendance", fetch); err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	all, _ := st.Attendance()
	slices.SortStableFunc(all, func(a, b attendance.Attendance) int {
		return b.Date.Compare(a.Date)
	})

	resp := &attendance.WorkerViewResponse{
		Range:   rng,
		Records: filter.Apply(all, filter.Attendance(rng)),
		Summary: aggregate.Attendance(all),
	}
	today := s.clock.Today()
	for i := range all {
		if all[i].Date == today {
			resp.Today = &all[i]
			break
		}
	}
	return resp, nil
}

// record builds an outbound record. The project is taken from the worker's
// current assignment when the worker is loaded.
func (s *AttendanceServiceImpl) record(st *store.Store, workerID int64, date calendar.Date, status attendance.Status, overtime float64) attendance.Attendance {
	var projectID int64
	if w, ok := st.Worker(workerID); ok {
		projectID = w.Project.RefID()
	}
	return attendance.Attendance{
		Worker:        worker.RefTo(workerID),
		Project:       project.RefTo(projectID),
		Date:          date,
		Status:        status,
		OvertimeHours: overtime,
	}
}

// refetch reloads the range currently on screen, or the changed day when
// nothing was loaded yet.
func (s *AttendanceServiceImpl) refetch(sess *session.Session, day calendar.Date) func(context.Context) error {
	st := s.stores.For(sess.Key())
	return func(ctx context.Context) error {
		rng := calendar.Day(day)
		if st.Loaded(store.SliceAttendance) {
			_, rng = st.Attendance()
		}
		return s.fetchAttendance(sess, rng)(ctx)
	}
}

func (s *AttendanceServiceImpl) fetchAttendance(sess *session.Session, rng calendar.Range) func(context.Context) error {
	st := s.stores.For(sess.Key())
	return func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SliceAttendance,
			func(ctx context.Context) ([]attendance.Attendance, error) {
				list, err := s.attendanceRepo.List(ctx, rng)
				if err != nil {
					return nil, err
				}
				return filter.Apply(list, filter.Attendance(rng)), nil
			},
			func(t store.Ticket, as []attendance.Attendance) error {
				return st.CommitAttendance(t, rng, as)
			})
	}
}

func (s *AttendanceServiceImpl) fetchWorkers(sess *session.Session) func(context.Context) error {
	st := s.stores.For(sess.Key())
	return func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SliceWorkers, s.workerRepo.List, st.CommitWorkers)
	}
}

func (s *AttendanceServiceImpl) orToday(rng calendar.Range) calendar.Range {
	if rng.IsOpen() {
		return calendar.Day(s.clock.Today())
	}
	return rng
}

func sortByWorkerName(records []attendance.Attendance, names map[int64]string) {
	name := func(a attendance.Attendance) string {
		if n := a.Worker.RefName(); n != "" {
			return n
		}
		return names[a.WorkerID()]
	}
	slices.SortStableFunc(records, func(a, b attendance.Attendance) int {
		return cmp.Or(cmp.Compare(name(a), name(b)), a.Date.Compare(b.Date))
	})
}

func projectName(w worker.Worker) string {
	if w.Project == nil {
		return ""
	}
	return w.Project.Name
}
