package dashboard

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/dashboard"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/service/aggregate"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/filter"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

// RecentPayments is how many payments the worker dashboard lists.
const RecentPayments = 5

type DashboardServiceImpl struct {
	dashboardRepo  dashboard.DashboardRepository
	taskRepo       task.TaskRepository
	attendanceRepo attendance.AttendanceRepository
	paymentRepo    payment.PaymentRepository
	stores         *store.Registry
	coord          *coordinator.Coordinator
	clock          calendar.Clock
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	taskRepo task.TaskRepository,
	attendanceRepo attendance.AttendanceRepository,
	paymentRepo payment.PaymentRepository,
	stores *store.Registry,
	coord *coordinator.Coordinator,
	clock calendar.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo:  dashboardRepo,
		taskRepo:       taskRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		stores:         stores,
		coord:          coord,
		clock:          clock,
	}
}

// Admin combines the backend summary with the task summary computed here.
func (s *DashboardServiceImpl) Admin(ctx context.Context, sess *session.Session) (*dashboard.AdminDashboardResponse, error) {
	st := s.stores.For(sess.Key())
	summaryOK := true

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Backend summary; a failure zeroes the figures instead of failing the page
	g.Go(func() error {
		err := s.coord.Refresh(gCtx, sess, "dashboard.summary", "Failed to load dashboard summary", func(ctx context.Context) error {
			return store.Fetch(ctx, st, store.SliceDashboard, s.dashboardRepo.Summary, st.CommitDashboard)
		})
		summaryOK = err == nil
		return nil
	})

	// 2. Tasks for the task summary
	g.Go(func() error {
		return s.coord.Refresh(gCtx, sess, "tasks.list", "Failed to load tasks", func(ctx context.Context) error {
			return store.Fetch(ctx, st, store.SliceTasks, s.taskRepo.List, st.CommitTasks)
		})
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	var sum dashboard.Summary
	if summaryOK {
		sum = st.Dashboard()
	}
	today := s.clock.Today()

	return &dashboard.AdminDashboardResponse{
		TotalWorkers:           sum.TotalWorkers,
		TotalProjects:          sum.TotalProjects,
		ActiveProjects:         sum.ActiveProjects,
		CompletedProjects:      sum.CompletedProjects,
		PendingProjects:        sum.PendingProjects,
		TotalAttendanceRecords: sum.TotalAttendanceRecords,
		TotalOvertimeHours:     sum.TotalOvertimeHours,
		AverageDailyAttendance: sum.AverageDailyAttendance,
		ProjectProgress: []dashboard.Slice{
			{Name: string(project.StatusActive), Value: sum.ActiveProjects},
			{Name: string(project.StatusCompleted), Value: sum.CompletedProjects},
			{Name: string(project.StatusPending), Value: sum.PendingProjects},
		},
		WeeklyAttendance: nonNil(sum.WeeklyAttendance),
		Tasks:            aggregate.Tasks(st.Tasks(), today),
		Finance:          sum.Totals(),
		Series:           aggregate.FinanceSeries(sum.SalaryMonthly, sum.AdvanceMonthly, today),
		TopPaid:          nonNil(sum.TopPaidWorkers),
		Today:            today,
	}, nil
}

// Worker loads the worker's own attendance, tasks and payments.
func (s *DashboardServiceImpl) Worker(ctx context.Context, sess *session.Session) (*dashboard.WorkerDashboardResponse, error) {
	if !sess.IsWorker() {
		return nil, session.ErrWorkerRequired
	}
	st := s.stores.For(sess.Key())
	workerID := sess.WorkerID()

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Attendance, all dates
	g.Go(func() error {
		return s.coord.Refresh(gCtx, sess, "attendance.mine", "Failed to load attendance", func(ctx context.Context) error {
			return store.Fetch(ctx, st, store.SliceAttendance,
				func(ctx context.Context) ([]attendance.Attendance, error) {
					return s.attendanceRepo.ListByWorker(ctx, workerID, calendar.Range{})
				},
				func(t store.Ticket, as []attendance.Attendance) error {
					return st.CommitAttendance(t, calendar.Range{}, as)
				})
		})
	})

	// 2. Tasks
	g.Go(func() error {
		return s.coord.Refresh(gCtx, sess, "tasks.mine", "Failed to load tasks", func(ctx context.Context) error {
			return store.Fetch(ctx, st, store.SliceTasks,
				func(ctx context.Context) ([]task.Task, error) {
					return s.taskRepo.ListByWorker(ctx, workerID)
				},
				st.CommitTasks)
		})
	})

	// 3. Payments
	g.Go(func() error {
		return s.coord.Refresh(gCtx, sess, "payments.mine", "Failed to load payments", func(ctx context.Context) error {
			return store.Fetch(ctx, st, store.SlicePayments,
				func(ctx context.Context) ([]payment.Payment, error) {
					return s.paymentRepo.ListByWorker(ctx, workerID)
				},
				st.CommitPayments)
		})
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	today := s.clock.Today()
	records, _ := st.Attendance()
	tasks := st.Tasks()
	payments := st.Payments()

	resp := &dashboard.WorkerDashboardResponse{
		Profile:     *sess.Worker,
		Today:       today,
		TodayStatus: dashboard.NotMarked,
		Attendance:  aggregate.Attendance(records),
		Tasks:       aggregate.Tasks(tasks, today),
		DueToday:    filter.Apply(tasks, filter.DueOn(today)),
		Payments:    aggregate.Payroll(payments),
	}
	for i := range records {
		if records[i].Date == today {
			resp.TodayAttendance = &records[i]
			resp.TodayStatus = string(records[i].Status)
			break
		}
	}

	slices.SortStableFunc(payments, func(a, b payment.Payment) int {
		switch {
		case a.Date == nil && b.Date == nil:
			return 0
		case a.Date == nil:
			return 1
		case b.Date == nil:
			return -1
		}
		return b.Date.Compare(*a.Date)
	})
	if len(payments) > RecentPayments {
		payments = payments[:RecentPayments]
	}
	resp.RecentPayments = payments
	return resp, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
