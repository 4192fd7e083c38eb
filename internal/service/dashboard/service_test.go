package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/dashboard"
	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/servicetest"
	"github.com/sitemgmt/site-panel-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = calendar.MustParse("2024-06-10")

func day(s string) *calendar.Date {
	d := calendar.MustParse(s)
	return &d
}

type fixture struct {
	svc        dashboard.DashboardService
	summary    *servicetest.Dashboard
	tasks      *servicetest.Tasks
	attendance *servicetest.Attendance
	payments   *servicetest.Payments
	notices    *servicetest.Notices
}

func newFixture() fixture {
	f := fixture{
		summary:    &servicetest.Dashboard{},
		tasks:      &servicetest.Tasks{},
		attendance: &servicetest.Attendance{},
		payments:   &servicetest.Payments{},
		notices:    &servicetest.Notices{},
	}
	f.svc = NewDashboardService(f.summary, f.tasks, f.attendance, f.payments, store.NewRegistry(), coordinator.New(f.notices), calendar.FixedClock(today))
	return f
}

func TestAdmin(t *testing.T) {
	f := newFixture()
	f.summary.Data = dashboard.Summary{
		TotalWorkers:      12,
		ActiveProjects:    2,
		CompletedProjects: 1,
		WeeklyAttendance:  []dashboard.WeeklyPoint{{Day: "Mon", Attendance: 10}},
		FinanceSummary: payment.FinanceSummary{
			TotalSalary:   decimal.NewFromInt(9000),
			Balance:       decimal.NewFromInt(9000),
			SalaryMonthly: []payment.MonthAmount{{Month: 6, Amount: decimal.NewFromInt(9000)}},
		},
	}
	f.tasks.Data = []task.Task{
		{ID: 1, Status: task.StatusPending, Deadline: day("2024-06-01")},
		{ID: 2, Status: task.StatusCompleted, Deadline: day("2024-06-01")},
	}

	resp, err := f.svc.Admin(context.Background(), session.NewAdmin())
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalWorkers)
	assert.Equal(t, []dashboard.Slice{{Name: "Active", Value: 2}, {Name: "Completed", Value: 1}, {Name: "Pending", Value: 0}}, resp.ProjectProgress)
	assert.Equal(t, task.Summary{Total: 2, Pending: 1, Completed: 1, Overdue: 1}, resp.Tasks)
	assert.True(t, resp.Finance.TotalSalary.Equal(decimal.NewFromInt(9000)))
	require.Len(t, resp.Series, 6)
	assert.True(t, resp.Series[5].Salary.Equal(decimal.NewFromInt(9000)))
	assert.Len(t, resp.WeeklyAttendance, 1)
	assert.NotNil(t, resp.TopPaid)
	assert.Empty(t, f.notices.Sent())
}

func TestAdmin_SummaryFailureZeroes(t *testing.T) {
	f := newFixture()
	f.summary.Err = errors.New("summary down")
	f.tasks.Data = []task.Task{{ID: 1, Status: task.StatusPending}}

	resp, err := f.svc.Admin(context.Background(), session.NewAdmin())
	require.NoError(t, err)
	assert.Zero(t, resp.TotalWorkers)
	assert.True(t, resp.Finance.Balance.IsZero())
	assert.Equal(t, 1, resp.Tasks.Total)
	assert.Equal(t, []notification.Level{notification.LevelError}, f.notices.Levels())
	assert.Equal(t, "Failed to load dashboard summary", f.notices.Last().Message)
}

func TestAdmin_TasksFailure(t *testing.T) {
	f := newFixture()
	f.tasks.Err = errors.New("down")

	_, err := f.svc.Admin(context.Background(), session.NewAdmin())
	assert.Error(t, err)
}

func TestWorker(t *testing.T) {
	f := newFixture()
	me := &worker.Ref{ID: 1, Name: "Ravi"}
	other := &worker.Ref{ID: 2, Name: "Anil"}
	f.attendance.Data = []attendance.Attendance{
		{ID: 1, Worker: me, Date: calendar.MustParse("2024-06-09"), Status: attendance.StatusPresent},
		{ID: 2, Worker: other, Date: today, Status: attendance.StatusPresent},
	}
	f.tasks.Data = []task.Task{
		{ID: 1, Worker: me, Status: task.StatusPending, Deadline: day("2024-06-10")},
		{ID: 2, Worker: me, Status: task.StatusInProgress, Deadline: day("2024-06-12")},
		{ID: 3, Worker: other, Status: task.StatusPending, Deadline: day("2024-06-10")},
	}
	for i := 1; i <= 7; i++ {
		f.payments.Data = append(f.payments.Data, payment.Payment{
			ID: int64(i), Worker: me, Type: payment.TypeSalary, Amount: decimal.NewFromInt(100),
			Date: day(calendar.MustParse("2024-06-01").AddDays(i).String()),
		})
	}
	sess := session.NewWorker(session.Profile{ID: 1, Name: "Ravi"}, false)

	resp, err := f.svc.Worker(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", resp.Profile.Name)
	assert.Nil(t, resp.TodayAttendance)
	assert.Equal(t, dashboard.NotMarked, resp.TodayStatus)
	assert.Equal(t, 1, resp.Attendance.Present)
	assert.Equal(t, 2, resp.Tasks.Total)
	require.Len(t, resp.DueToday, 1)
	assert.Equal(t, int64(1), resp.DueToday[0].ID)
	assert.True(t, resp.Payments.TotalSalary.Equal(decimal.NewFromInt(700)))
	require.Len(t, resp.RecentPayments, RecentPayments)
	assert.Equal(t, int64(7), resp.RecentPayments[0].ID)

	f.attendance.Data = append(f.attendance.Data, attendance.Attendance{ID: 3, Worker: me, Date: today, Status: attendance.StatusAbsent})
	resp, err = f.svc.Worker(context.Background(), sess)
	require.NoError(t, err)
	require.NotNil(t, resp.TodayAttendance)
	assert.Equal(t, "Absent", resp.TodayStatus)

	_, err = f.svc.Worker(context.Background(), session.NewAdmin())
	assert.ErrorIs(t, err, session.ErrWorkerRequired)
}
