package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/dashboard"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// Slice names one independently fetched part of the store.
type Slice string

const (
	SliceWorkers    Slice = "workers"
	SliceProjects   Slice = "projects"
	SliceAttendance Slice = "attendance"
	SliceTasks      Slice = "tasks"
	SlicePayments   Slice = "payments"
	SliceFinance    Slice = "finance"
	SliceDashboard  Slice = "dashboard"
)

// ErrStale is returned when a newer fetch of the same slice started after this one.
var ErrStale = errors.New("stale response discarded")

// Ticket is handed out by Begin and must be presented to commit a fetch result.
type Ticket struct {
	slice Slice
	gen   uint64
}

func (t Ticket) Slice() Slice { return t.slice }

// Store holds the last successfully fetched data of one session. Reads return
// copies of the slices; the records inside are shared and must not be mutated.
type Store struct {
	mu     sync.RWMutex
	gen    map[Slice]uint64
	loaded map[Slice]bool

	workers         []worker.Worker
	projects        []project.Project
	attendance      []attendance.Attendance
	attendanceRange calendar.Range
	tasks           []task.Task
	payments        []payment.Payment
	finance         payment.FinanceSummary
	dashboard       dashboard.Summary
}

func New() *Store {
	return &Store{
		gen:    make(map[Slice]uint64),
		loaded: make(map[Slice]bool),
	}
}

// Begin starts a fetch of slice. Any ticket issued earlier for the same slice
// becomes stale.
func (s *Store) Begin(slice Slice) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[slice]++
	return Ticket{slice: slice, gen: s.gen[slice]}
}

// Current reports whether t is still the newest ticket of its slice.
func (s *Store) Current(t Ticket) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen[t.slice] == t.gen
}

// Loaded reports whether slice has been committed at least once.
func (s *Store) Loaded(slice Slice) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded[slice]
}

func (s *Store) commit(t Ticket, want Slice, apply func()) error {
	if t.slice != want {
		return fmt.Errorf("ticket for %s cannot commit %s", t.slice, want)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen[t.slice] != t.gen {
		return ErrStale
	}
	apply()
	s.loaded[t.slice] = true
	return nil
}

func (s *Store) CommitWorkers(t Ticket, ws []worker.Worker) error {
	return s.commit(t, SliceWorkers, func() { s.workers = slices.Clone(ws) })
}

func (s *Store) CommitProjects(t Ticket, ps []project.Project) error {
	return s.commit(t, SliceProjects, func() { s.projects = slices.Clone(ps) })
}

// CommitAttendance also records the range the records were fetched for.
func (s *Store) CommitAttendance(t Ticket, rng calendar.Range, as []attendance.Attendance) error {
	return s.commit(t, SliceAttendance, func() {
		s.attendance = slices.Clone(as)
		s.attendanceRange = rng
	})
}

func (s *Store) CommitTasks(t Ticket, ts []task.Task) error {
	return s.commit(t, SliceTasks, func() { s.tasks = slices.Clone(ts) })
}

func (s *Store) CommitPayments(t Ticket, ps []payment.Payment) error {
	return s.commit(t, SlicePayments, func() { s.payments = slices.Clone(ps) })
}

func (s *Store) CommitFinance(t Ticket, f payment.FinanceSummary) error {
	return s.commit(t, SliceFinance, func() { s.finance = f })
}

func (s *Store) CommitDashboard(t Ticket, d dashboard.Summary) error {
	return s.commit(t, SliceDashboard, func() { s.dashboard = d })
}

func (s *Store) Workers() []worker.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.workers)
}

func (s *Store) Projects() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.projects)
}

// Attendance returns the loaded records and the range they were fetched for.
func (s *Store) Attendance() ([]attendance.Attendance, calendar.Range) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.attendance), s.attendanceRange
}

func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.tasks)
}

func (s *Store) Payments() []payment.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.payments)
}

func (s *Store) Finance() payment.FinanceSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finance
}

func (s *Store) Dashboard() dashboard.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard
}

// Worker looks a worker up in the loaded list.
func (s *Store) Worker(id int64) (worker.Worker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workers {
		if w.ID == id {
			return w, true
		}
	}
	return worker.Worker{}, false
}

func (s *Store) AttendanceRecord(id int64) (attendance.Attendance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attendance {
		if a.ID == id {
			return a, true
		}
	}
	return attendance.Attendance{}, false
}

func (s *Store) Task(id int64) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Fetch runs fetch under a fresh ticket for slice and hands the result to
// commit. A cancelled context never commits. A superseded fetch returns ErrStale.
func Fetch[T any](ctx context.Context, s *Store, slice Slice, fetch func(context.Context) (T, error), commit func(Ticket, T) error) error {
	t := s.Begin(slice)
	v, err := fetch(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return commit(t, v)
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
